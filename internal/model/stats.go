package model

import "github.com/shopspring/decimal"

// SessionStats Статистика сессии
type SessionStats struct {
	TotalSpins   int
	WinningSpins int
	TotalBet     decimal.Decimal
	TotalPayout  decimal.Decimal
	BiggestWin   int64

	RTP       decimal.Decimal // TotalPayout/TotalBet*100
	WindowRTP decimal.Decimal // RTP по последним WindowSize спинам
	HitRate   decimal.Decimal // WinningSpins/TotalSpins*100

	WindowSize  int
	WindowSpins int
}
