package stats_repo

import (
	"slot_machine/internal/model"
	repoModel "slot_machine/internal/repository/stats_repo/model"
	"sync"

	"github.com/shopspring/decimal"
)

const defaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// StatsRepo Хранит статистику сессии в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.SessionState
}

// NewStatsRepository Конструктор репозитория. windowSize <= 0 заменяется значением по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state: repoModel.SessionState{
			TotalBet:    decimal.Zero,
			TotalPayout: decimal.Zero,
			SpinWindow:  make([]repoModel.SpinRecord, 0, windowSize),
			WindowSize:  windowSize,
		},
	}
}

// Record Учесть завершённый спин
func (r *StatsRepo) Record(bet, payout int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet = r.state.TotalBet.Add(decimal.NewFromInt(bet))
	r.state.TotalPayout = r.state.TotalPayout.Add(decimal.NewFromInt(payout))
	if payout > 0 {
		r.state.WinningSpins++
	}
	if payout > r.state.BiggestWin {
		r.state.BiggestWin = payout
	}

	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinRecord{Bet: bet, Payout: payout})
	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[len(r.state.SpinWindow)-r.state.WindowSize:]
	}
}

// Stats Снимок статистики
func (r *StatsRepo) Stats() model.SessionStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var windowBet, windowPayout int64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	return model.SessionStats{
		TotalSpins:   r.state.TotalSpins,
		WinningSpins: r.state.WinningSpins,
		TotalBet:     r.state.TotalBet,
		TotalPayout:  r.state.TotalPayout,
		BiggestWin:   r.state.BiggestWin,
		RTP:          percent(r.state.TotalPayout, r.state.TotalBet),
		WindowRTP:    percent(decimal.NewFromInt(windowPayout), decimal.NewFromInt(windowBet)),
		HitRate:      percent(decimal.NewFromInt(int64(r.state.WinningSpins)), decimal.NewFromInt(int64(r.state.TotalSpins))),
		WindowSize:   r.state.WindowSize,
		WindowSpins:  len(r.state.SpinWindow),
	}
}

// Reset Сбросить статистику
func (r *StatsRepo) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	size := r.state.WindowSize
	r.state = repoModel.SessionState{
		TotalBet:    decimal.Zero,
		TotalPayout: decimal.Zero,
		SpinWindow:  make([]repoModel.SpinRecord, 0, size),
		WindowSize:  size,
	}
}

func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}
