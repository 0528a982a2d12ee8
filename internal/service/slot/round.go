package slot

import (
	"slot_machine/internal/engine"
	"slot_machine/internal/metrics"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Spinner Источник результата спина. *engine.Grid удовлетворяет интерфейсу.
type Spinner interface {
	Spin() *engine.Handle[model.Grid]
}

// Publisher Получатель событий раунда
type Publisher interface {
	Publish(model.Event)
}

// Round Контроллер раунда: Idle -> Spinning -> Settling -> Idle.
// Все методы вызываются из цикла движка.
type Round struct {
	ledger *Ledger
	grid   Spinner
	events Publisher
	stats  repository.StatsRepository
	log    *zap.Logger

	phase model.Phase
	last  *model.SpinResult
	now   func() time.Time
}

// NewRound Собрать контроллер раунда
func NewRound(
	ledger *Ledger,
	grid Spinner,
	events Publisher,
	stats repository.StatsRepository,
	logger *zap.Logger,
) *Round {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.BetChanged(ledger.CurrentBet(), ledger.Balance())
	return &Round{
		ledger: ledger,
		grid:   grid,
		events: events,
		stats:  stats,
		log:    logger,
		phase:  model.PhaseIdle,
		now:    time.Now,
	}
}

// RequestSpin Запустить спин. false без изменений и событий, если спин сейчас невозможен.
func (r *Round) RequestSpin() bool {
	if r.phase != model.PhaseIdle || r.ledger.Spinning() {
		metrics.SpinDeclined(metrics.ReasonBusy)
		return false
	}
	if !r.ledger.StartSpin() {
		metrics.SpinDeclined(metrics.ReasonInsufficient)
		r.log.Debug("spin declined",
			zap.Int64("balance", r.ledger.Balance()),
			zap.Int64("bet", r.ledger.CurrentBet()))
		return false
	}

	roundID := uuid.NewString()
	bet := r.ledger.CurrentBet()
	started := r.now()
	r.phase = model.PhaseSpinning
	metrics.SpinStarted(bet, r.ledger.Balance())
	r.log.Info("spin started",
		zap.String("round", roundID),
		zap.Int64("bet", bet),
		zap.Int64("balance", r.ledger.Balance()))
	r.publishState()

	r.grid.Spin().Then(func(grid model.Grid, err error) {
		if err != nil {
			r.fail(roundID, err)
			return
		}
		r.settle(roundID, bet, started, grid)
	})
	return true
}

func (r *Round) settle(roundID string, bet int64, started time.Time, grid model.Grid) {
	r.phase = model.PhaseSettling

	lines := EvaluateLines(grid, bet)
	var win int64
	for _, l := range lines {
		win += l.Payout
	}
	if err := r.ledger.Credit(win); err != nil {
		r.log.Error("credit win", zap.String("round", roundID), zap.Error(err))
	}
	r.stats.Record(bet, win)
	r.ledger.EndSpin()
	r.phase = model.PhaseIdle

	settledAt := r.now()
	res := &model.SpinResult{
		RoundID:     roundID,
		Grid:        grid,
		Bet:         bet,
		LineWins:    lines,
		TotalPayout: win,
		Balance:     r.ledger.Balance(),
		SettledAt:   settledAt,
	}
	r.last = res

	metrics.SpinSettled(win, r.ledger.Balance(), settledAt.Sub(started))
	metrics.BetChanged(r.ledger.CurrentBet(), r.ledger.Balance())
	r.log.Info("spin settled",
		zap.String("round", roundID),
		zap.Int64("bet", bet),
		zap.Int64("win", win),
		zap.Int("lines", len(lines)),
		zap.Int64("balance", r.ledger.Balance()))

	state := r.State()
	r.events.Publish(model.Event{Type: model.EventSpinSettled, State: state, Result: res})
	r.events.Publish(model.Event{Type: model.EventState, State: state})
}

// Ставка не возвращается
func (r *Round) fail(roundID string, err error) {
	r.log.Error("spin failed", zap.String("round", roundID), zap.Error(err))
	metrics.SpinFailed()
	r.ledger.EndSpin()
	r.phase = model.PhaseIdle
	metrics.BetChanged(r.ledger.CurrentBet(), r.ledger.Balance())
	r.publishState()
}

// AdjustBet Сдвинуть ставку. Событие отправляется только при изменении.
func (r *Round) AdjustBet(dir model.BetDirection) bool {
	if r.phase != model.PhaseIdle || !r.ledger.AdjustBet(dir) {
		return false
	}
	metrics.BetChanged(r.ledger.CurrentBet(), r.ledger.Balance())
	r.log.Debug("bet changed", zap.Int64("bet", r.ledger.CurrentBet()))
	r.publishState()
	return true
}

// State Снимок для клиента
func (r *Round) State() model.State {
	idle := r.phase == model.PhaseIdle
	return model.State{
		Balance:        r.ledger.Balance(),
		Bet:            r.ledger.CurrentBet(),
		MinBet:         r.ledger.MinBet(),
		MaxBet:         r.ledger.MaxBet(),
		Spinning:       r.ledger.Spinning(),
		Phase:          r.phase,
		CanSpin:        idle && r.ledger.CanSpin(),
		CanIncreaseBet: idle && r.ledger.CanIncreaseBet(),
		CanDecreaseBet: idle && r.ledger.CanDecreaseBet(),
	}
}

func (r *Round) Phase() model.Phase { return r.phase }

// LastResult Итог последнего завершённого спина
func (r *Round) LastResult() (model.SpinResult, bool) {
	if r.last == nil {
		return model.SpinResult{}, false
	}
	return *r.last, true
}

func (r *Round) publishState() {
	r.events.Publish(model.Event{Type: model.EventState, State: r.State()})
}
