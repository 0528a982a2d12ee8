package slot

import "errors"

var (
	// ErrInsufficientBalance Списание больше баланса
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNegativeAmount Отрицательная сумма
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInvalidBetSteps Пустой или неупорядоченный список ставок
	ErrInvalidBetSteps = errors.New("bet steps must be positive and strictly increasing")
)
