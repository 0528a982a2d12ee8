package engine

import (
	"fmt"
	"slot_machine/internal/model"
	"time"
)

const (
	defaultMinDuration   = 1500 * time.Millisecond
	defaultMaxDuration   = 2500 * time.Millisecond
	defaultLaps          = 3
	defaultLateThreshold = 0.8
	defaultSlotHeight    = 100
)

// ReelOptions Параметры анимации барабана
type ReelOptions struct {
	MinDuration   time.Duration
	MaxDuration   time.Duration
	Laps          float64 // сколько длин ленты прокручивается за спин
	LateThreshold float64 // после этой доли времени переносимые ячейки получают финальные символы
	SlotHeight    float64 // высота ячейки в единицах отрисовки
}

// DefaultReelOptions Значения по умолчанию
func DefaultReelOptions() ReelOptions {
	return ReelOptions{
		MinDuration:   defaultMinDuration,
		MaxDuration:   defaultMaxDuration,
		Laps:          defaultLaps,
		LateThreshold: defaultLateThreshold,
		SlotHeight:    defaultSlotHeight,
	}
}

func (o ReelOptions) withDefaults() ReelOptions {
	d := DefaultReelOptions()
	if o.MinDuration <= 0 {
		o.MinDuration = d.MinDuration
	}
	if o.MaxDuration < o.MinDuration {
		o.MaxDuration = o.MinDuration
	}
	if o.Laps <= 0 {
		o.Laps = d.Laps
	}
	if o.LateThreshold <= 0 || o.LateThreshold >= 1 {
		o.LateThreshold = d.LateThreshold
	}
	if o.SlotHeight <= 0 {
		o.SlotHeight = d.SlotHeight
	}
	return o
}

// Reel Барабан: кольцевая лента из visible+buffer ячеек.
// Методы не потокобезопасны, барабаном владеет цикл тиков.
type Reel struct {
	state   ReelState
	opts    ReelOptions
	rng     Random
	pending *Handle[[]model.Kind]
}

// NewReel Создать барабан со случайными символами
func NewReel(visible, buffer int, rng Random, opts ReelOptions) (*Reel, error) {
	if visible <= 0 || buffer < 0 {
		return nil, fmt.Errorf("reel %dx%d: %w", visible, buffer, ErrInvalidSize)
	}
	r := &Reel{
		opts: opts.withDefaults(),
		rng:  rng,
		state: ReelState{
			Visible: visible,
		},
	}
	r.fill(visible + buffer)
	return r, nil
}

func (r *Reel) fill(total int) {
	r.state.Kinds = randomKinds(r.rng, total)
	r.state.Positions = make([]float64, total)
	for i := range r.state.Positions {
		r.state.Positions[i] = float64(i)
	}
	r.state.Offset = 0
}

// Spin Запускает вращение с остановкой на final.
// Повторный вызов во время вращения ничего не запускает и сразу
// возвращает текущие видимые символы.
func (r *Reel) Spin(final []model.Kind) *Handle[[]model.Kind] {
	if r.state.Spinning {
		return Resolved(r.CurrentKinds())
	}
	if len(final) != r.state.Visible {
		return Rejected[[]model.Kind](fmt.Errorf("got %d, want %d: %w", len(final), r.state.Visible, ErrFinalLength))
	}
	for _, k := range final {
		if !k.Valid() {
			return Rejected[[]model.Kind](fmt.Errorf("kind %d: %w", k, ErrFinalKind))
		}
	}

	span := r.opts.MaxDuration - r.opts.MinDuration
	duration := r.opts.MinDuration + time.Duration(r.rng.Float64()*float64(span))

	r.state.Target = append([]model.Kind(nil), final...)
	r.state.Duration = duration
	r.state.Elapsed = 0
	r.state.Offset = 0
	r.state.Distance = float64(r.state.Total()) * r.opts.Laps
	r.state.LateThreshold = r.opts.LateThreshold
	r.state.Spinning = true

	r.pending = newHandle[[]model.Kind]()
	return r.pending
}

// Tick Продвигает вращение на dt
func (r *Reel) Tick(dt time.Duration) {
	if !r.state.Spinning {
		return
	}
	r.state = StepReel(r.state, dt, r.rng)
	if r.state.Spinning {
		return
	}
	h := r.pending
	r.pending = nil
	if h != nil {
		h.resolve(append([]model.Kind(nil), r.state.Target...))
	}
}

// CurrentKinds Символы видимых ячеек сверху вниз
func (r *Reel) CurrentKinds() []model.Kind {
	return r.state.VisibleKinds()
}

// Spinning Признак вращения
func (r *Reel) Spinning() bool {
	return r.state.Spinning
}

// VisibleCount Количество видимых ячеек
func (r *Reel) VisibleCount() int {
	return r.state.Visible
}

// Len Общее количество ячеек
func (r *Reel) Len() int {
	return r.state.Total()
}

// SlotHeight Высота ячейки в единицах отрисовки
func (r *Reel) SlotHeight() float64 {
	return r.opts.SlotHeight
}

// SetSlotHeight Меняет высоту ячейки при изменении размера экрана.
// Логика вращения считается в ячейках, поэтому меняется только отрисовка.
func (r *Reel) SetSlotHeight(h float64) error {
	if h <= 0 {
		return fmt.Errorf("slot height %v: %w", h, ErrInvalidSize)
	}
	r.opts.SlotHeight = h
	return nil
}

// Positions Вертикальные позиции ячеек в единицах отрисовки
func (r *Reel) Positions() []float64 {
	out := make([]float64, len(r.state.Positions))
	for i, p := range r.state.Positions {
		out[i] = p * r.opts.SlotHeight
	}
	return out
}

// Resize Меняет длину ленты. Количество видимых ячеек остается прежним.
func (r *Reel) Resize(buffer int) error {
	if buffer < 0 {
		return fmt.Errorf("buffer %d: %w", buffer, ErrInvalidSize)
	}
	if r.state.Spinning {
		return ErrReelSpinning
	}
	visible := r.CurrentKinds()
	r.fill(r.state.Visible + buffer)
	copy(r.state.Kinds, visible)
	return nil
}

// State Копия состояния анимации
func (r *Reel) State() ReelState {
	return r.state.clone()
}
