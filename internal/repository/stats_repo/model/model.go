package model

import "github.com/shopspring/decimal"

// Накопленные значения сессии
type SessionState struct {
	TotalSpins   int             // Сколько всего спинов сделано
	WinningSpins int             // Сколько спинов дали выигрыш
	TotalBet     decimal.Decimal // Сумма всех ставок
	TotalPayout  decimal.Decimal // Сумма всех выплат
	BiggestWin   int64

	SpinWindow []SpinRecord // Окно последних спинов для анализа
	WindowSize int          // Размер окна
}

// Спин в окне
type SpinRecord struct {
	Bet    int64
	Payout int64
}
