package engine

import (
	"fmt"
	"slot_machine/internal/model"
	"time"
)

const (
	defaultReels   = 3
	defaultVisible = 3
	defaultBuffer  = 10
	defaultStagger = 200 * time.Millisecond
)

// GridOptions Размеры поля и задержка старта соседних барабанов
type GridOptions struct {
	Reels   int
	Visible int
	Buffer  int
	Stagger time.Duration
	Reel    ReelOptions
}

// DefaultGridOptions Поле 3x3 с запасом 10 ячеек на барабан
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Reels:   defaultReels,
		Visible: defaultVisible,
		Buffer:  defaultBuffer,
		Stagger: defaultStagger,
		Reel:    DefaultReelOptions(),
	}
}

// Grid Набор барабанов, которые запускаются со сдвигом слева направо
type Grid struct {
	reels   []*Reel
	sched   *Scheduler
	rng     Random
	stagger time.Duration
	pending *Handle[model.Grid]
}

// NewGrid Создать поле. Таймеры старта барабанов ставятся в sched.
func NewGrid(opts GridOptions, sched *Scheduler, rng Random) (*Grid, error) {
	if opts.Reels <= 0 {
		return nil, fmt.Errorf("grid with %d reels: %w", opts.Reels, ErrInvalidSize)
	}
	if opts.Stagger < 0 {
		opts.Stagger = 0
	}
	g := &Grid{
		reels:   make([]*Reel, opts.Reels),
		sched:   sched,
		rng:     rng,
		stagger: opts.Stagger,
	}
	for i := range g.reels {
		r, err := NewReel(opts.Visible, opts.Buffer, rng, opts.Reel)
		if err != nil {
			return nil, fmt.Errorf("reel %d: %w", i, err)
		}
		g.reels[i] = r
	}
	return g, nil
}

// reelOutcome Итог одного барабана. Ошибка не отклоняет handle барабана,
// чтобы поле дождалось остановки всех остальных.
type reelOutcome struct {
	kinds []model.Kind
	err   error
}

// Spin Запускает все барабаны, i-й через i*Stagger. Каждый барабан
// получает свои случайные финальные символы. Handle разрешается, когда
// остановились все барабаны; индекс колонки равен индексу барабана.
// Ошибка барабана отклоняет handle только после остановки остальных,
// до этого повторный вызов возвращает тот же handle.
func (g *Grid) Spin() *Handle[model.Grid] {
	if g.pending != nil {
		return g.pending
	}
	out := newHandle[model.Grid]()
	g.pending = out

	hs := make([]*Handle[reelOutcome], len(g.reels))
	for i, reel := range g.reels {
		h := newHandle[reelOutcome]()
		hs[i] = h
		g.sched.After(time.Duration(i)*g.stagger, func() {
			final := randomKinds(g.rng, reel.VisibleCount())
			reel.Spin(final).Then(func(kinds []model.Kind, err error) {
				if err != nil {
					err = fmt.Errorf("reel %d: %w", i, err)
				}
				h.resolve(reelOutcome{kinds: kinds, err: err})
			})
		})
	}

	All(hs).Then(func(outcomes []reelOutcome, _ error) {
		g.pending = nil
		cols := make(model.Grid, len(outcomes))
		for i, o := range outcomes {
			if o.err != nil {
				out.reject(o.err)
				return
			}
			cols[i] = o.kinds
		}
		out.resolve(cols)
	})
	return out
}

// Tick Продвигает все барабаны
func (g *Grid) Tick(dt time.Duration) {
	for _, r := range g.reels {
		r.Tick(dt)
	}
}

// Spinning Признак незавершенного спина поля
func (g *Grid) Spinning() bool {
	return g.pending != nil
}

// Reels Барабаны для отрисовки
func (g *Grid) Reels() []*Reel {
	return append([]*Reel(nil), g.reels...)
}

// CurrentKinds Видимые символы всех барабанов
func (g *Grid) CurrentKinds() model.Grid {
	out := make(model.Grid, len(g.reels))
	for i, r := range g.reels {
		out[i] = r.CurrentKinds()
	}
	return out
}

// SetSlotHeight Меняет высоту ячейки у всех барабанов
func (g *Grid) SetSlotHeight(h float64) error {
	for _, r := range g.reels {
		if err := r.SetSlotHeight(h); err != nil {
			return err
		}
	}
	return nil
}

// Resize Меняет длину лент. Только между спинами.
func (g *Grid) Resize(buffer int) error {
	if g.Spinning() {
		return ErrReelSpinning
	}
	for i, r := range g.reels {
		if err := r.Resize(buffer); err != nil {
			return fmt.Errorf("reel %d: %w", i, err)
		}
	}
	return nil
}
