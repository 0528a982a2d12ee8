package engine

import "errors"

var (
	// ErrFinalLength Длина финальной последовательности не совпадает с количеством видимых ячеек
	ErrFinalLength = errors.New("final kinds length does not match visible count")
	// ErrFinalKind В финальной последовательности есть неизвестный символ
	ErrFinalKind = errors.New("final kinds contain unknown symbol")
	// ErrReelSpinning Операция запрещена во время вращения
	ErrReelSpinning = errors.New("reel is spinning")
	// ErrInvalidSize Некорректные размеры барабана или поля
	ErrInvalidSize = errors.New("invalid size")
	// ErrLoopStopped Цикл тиков остановлен
	ErrLoopStopped = errors.New("engine loop stopped")
)
