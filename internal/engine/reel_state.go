package engine

import (
	"math"
	"slot_machine/internal/model"
	"time"
)

// ReelState Состояние анимации барабана. Позиции ячеек и смещение в единицах высоты ячейки.
type ReelState struct {
	Visible       int
	Kinds         []model.Kind
	Positions     []float64
	Offset        float64
	Distance      float64
	Duration      time.Duration
	Elapsed       time.Duration
	Target        []model.Kind
	LateThreshold float64
	Spinning      bool
}

// Total Общее количество ячеек на ленте
func (s ReelState) Total() int {
	return len(s.Kinds)
}

// Progress Доля пройденного времени вращения в [0, 1]
func (s ReelState) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	p := float64(s.Elapsed) / float64(s.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// VisibleKinds Символы видимых ячеек
func (s ReelState) VisibleKinds() []model.Kind {
	n := s.Visible
	if n > len(s.Kinds) {
		n = len(s.Kinds)
	}
	return append([]model.Kind(nil), s.Kinds[:n]...)
}

func (s ReelState) clone() ReelState {
	s.Kinds = append([]model.Kind(nil), s.Kinds...)
	s.Positions = append([]float64(nil), s.Positions...)
	s.Target = append([]model.Kind(nil), s.Target...)
	return s
}

// StepReel Продвигает вращение на dt и возвращает новое состояние, входное не меняется.
// Ячейка, ушедшая за нижний край, переносится наверх и получает случайный символ,
// а после порога LateThreshold получает финальный символ той видимой строки, куда попала.
// Когда время вышло, барабан выравнивается по финальным символам.
func StepReel(s ReelState, dt time.Duration, rng Random) ReelState {
	if !s.Spinning {
		return s
	}
	next := s.clone()
	if dt > 0 {
		next.Elapsed += dt
	}
	if next.Elapsed >= next.Duration {
		return settleReel(next)
	}

	progress := next.Progress()
	offset := next.Distance * progress
	delta := offset - next.Offset
	next.Offset = offset

	total := float64(next.Total())
	for i := range next.Positions {
		pos := next.Positions[i] + delta
		wrapped := false
		for pos >= total {
			pos -= total
			wrapped = true
		}
		next.Positions[i] = pos
		if !wrapped {
			continue
		}
		if progress > next.LateThreshold {
			row := int(math.Floor(pos))
			if row < next.Visible && row < len(next.Target) {
				next.Kinds[i] = next.Target[row]
			}
		} else {
			next.Kinds[i] = randomKind(rng)
		}
	}
	return next
}

// settleReel Сброс смещения и точная установка финальных символов
func settleReel(s ReelState) ReelState {
	s.Elapsed = s.Duration
	s.Offset = 0
	for i := range s.Positions {
		s.Positions[i] = float64(i)
	}
	for i := 0; i < s.Visible && i < len(s.Target) && i < len(s.Kinds); i++ {
		s.Kinds[i] = s.Target[i]
	}
	s.Spinning = false
	return s
}
