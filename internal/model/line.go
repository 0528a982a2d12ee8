package model

import "time"

// Grid Результат остановки барабанов: grid[reel][row]
type Grid [][]Kind

// Clone Глубокая копия поля
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, col := range g {
		out[i] = append([]Kind(nil), col...)
	}
	return out
}

// Rows Количество строк, которые есть у всех барабанов
func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}
	rows := len(g[0])
	for _, col := range g[1:] {
		if len(col) < rows {
			rows = len(col)
		}
	}
	return rows
}

// LineWin Выигрышная строка
type LineWin struct {
	Row        int
	Symbol     Kind
	Multiplier int
	Payout     int64
}

// SpinResult Итог одного спина
type SpinResult struct {
	RoundID     string
	Grid        Grid
	Bet         int64
	LineWins    []LineWin
	TotalPayout int64
	Balance     int64
	SettledAt   time.Time
}

// Phase Фаза раунда
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// State Состояние кошелька и раунда, которое видит клиент
type State struct {
	Balance        int64
	Bet            int64
	MinBet         int64
	MaxBet         int64
	Spinning       bool
	Phase          Phase
	CanSpin        bool
	CanIncreaseBet bool
	CanDecreaseBet bool
}

// BetDirection Направление изменения ставки
type BetDirection int

const (
	BetDown BetDirection = -1
	BetUp   BetDirection = 1
)
