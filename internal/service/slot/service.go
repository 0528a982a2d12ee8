package slot

import (
	"context"
	"fmt"
	"slot_machine/internal/engine"
	"slot_machine/internal/metrics"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/service"
	"slot_machine/pkg/realtime"
)

type serv struct {
	loop   *engine.Loop
	round  *Round
	grid   *engine.Grid
	stats  repository.StatsRepository
	events *realtime.Broadcaster[model.Event]
}

// NewSlotService Доступ к раунду из любых горутин. Все обращения к
// движку выполняются внутри loop.
func NewSlotService(
	loop *engine.Loop,
	round *Round,
	grid *engine.Grid,
	stats repository.StatsRepository,
	events *realtime.Broadcaster[model.Event],
) service.SlotService {
	return &serv{
		loop:   loop,
		round:  round,
		grid:   grid,
		stats:  stats,
		events: events,
	}
}

func (s *serv) Spin(ctx context.Context) (bool, model.State, error) {
	var (
		accepted bool
		state    model.State
	)
	err := s.loop.Call(ctx, func() {
		accepted = s.round.RequestSpin()
		state = s.round.State()
	})
	if err != nil {
		return false, model.State{}, fmt.Errorf("spin: %w", err)
	}
	return accepted, state, nil
}

func (s *serv) AdjustBet(ctx context.Context, dir model.BetDirection) (bool, model.State, error) {
	var (
		changed bool
		state   model.State
	)
	err := s.loop.Call(ctx, func() {
		changed = s.round.AdjustBet(dir)
		state = s.round.State()
	})
	if err != nil {
		return false, model.State{}, fmt.Errorf("adjust bet: %w", err)
	}
	return changed, state, nil
}

func (s *serv) State(ctx context.Context) (model.State, error) {
	var state model.State
	if err := s.loop.Call(ctx, func() { state = s.round.State() }); err != nil {
		return model.State{}, fmt.Errorf("state: %w", err)
	}
	return state, nil
}

// LastResult nil, если ещё не было ни одного завершённого спина
func (s *serv) LastResult(ctx context.Context) (*model.SpinResult, error) {
	var res *model.SpinResult
	err := s.loop.Call(ctx, func() {
		if r, ok := s.round.LastResult(); ok {
			res = &r
		}
	})
	if err != nil {
		return nil, fmt.Errorf("last result: %w", err)
	}
	return res, nil
}

func (s *serv) Reels(ctx context.Context) (*model.ReelsView, error) {
	view := &model.ReelsView{}
	err := s.loop.Call(ctx, func() {
		reels := s.grid.Reels()
		view.Reels = make([][]model.Kind, len(reels))
		view.Positions = make([][]float64, len(reels))
		for i, r := range reels {
			view.Reels[i] = r.CurrentKinds()
			view.Positions[i] = r.Positions()
		}
		if len(reels) > 0 {
			view.SlotHeight = reels[0].SlotHeight()
		}
		view.Spinning = s.grid.Spinning()
	})
	if err != nil {
		return nil, fmt.Errorf("reels: %w", err)
	}
	return view, nil
}

func (s *serv) SetSlotHeight(ctx context.Context, h float64) error {
	var setErr error
	if err := s.loop.Call(ctx, func() { setErr = s.grid.SetSlotHeight(h) }); err != nil {
		return fmt.Errorf("set slot height: %w", err)
	}
	return setErr
}

// ResizeReels Меняет длину лент. Во время спина вернёт engine.ErrReelSpinning.
func (s *serv) ResizeReels(ctx context.Context, buffer int) error {
	var resizeErr error
	if err := s.loop.Call(ctx, func() { resizeErr = s.grid.Resize(buffer) }); err != nil {
		return fmt.Errorf("resize reels: %w", err)
	}
	return resizeErr
}

// Stats Репозиторий статистики потокобезопасен, loop не нужен
func (s *serv) Stats() model.SessionStats {
	return s.stats.Stats()
}

func (s *serv) ResetStats() {
	s.stats.Reset()
}

func (s *serv) Subscribe() (<-chan model.Event, func()) {
	ch := s.events.Subscribe()
	metrics.StreamSubscribers(s.events.Subscribers())
	return ch, func() {
		s.events.Unsubscribe(ch)
		metrics.StreamSubscribers(s.events.Subscribers())
	}
}
