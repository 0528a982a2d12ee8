package engine

import (
	"slot_machine/internal/model"
	"testing"
	"time"
)

func newSpinningState(target []model.Kind) ReelState {
	total := 13
	s := ReelState{
		Visible:       3,
		Kinds:         make([]model.Kind, total),
		Positions:     make([]float64, total),
		Distance:      float64(total * 3),
		Duration:      time.Second,
		Target:        target,
		LateThreshold: 0.8,
		Spinning:      true,
	}
	for i := range s.Positions {
		s.Positions[i] = float64(i)
	}
	return s
}

func TestStepReel_DoesNotMutateInput(t *testing.T) {
	in := newSpinningState([]model.Kind{model.Star, model.Star, model.Star})
	out := StepReel(in, 500*time.Millisecond, fixedRandom{n: int(model.Lemon)})

	for i, k := range in.Kinds {
		if k != model.Cherry {
			t.Fatalf("input kind %d changed to %v", i, k)
		}
	}
	if in.Positions[1] != 1 || in.Elapsed != 0 || in.Offset != 0 {
		t.Error("input state changed")
	}
	if out.Elapsed != 500*time.Millisecond {
		t.Errorf("Elapsed = %v, want 500ms", out.Elapsed)
	}
}

func TestStepReel_EarlyWrapUsesRandomKinds(t *testing.T) {
	in := newSpinningState([]model.Kind{model.Star, model.Star, model.Star})
	// половина времени: смещение 19.5 ячеек, каждая ячейка переносится
	out := StepReel(in, 500*time.Millisecond, fixedRandom{n: int(model.Lemon)})
	for i, k := range out.Kinds {
		if k != model.Lemon {
			t.Errorf("slot %d kind %v, want Lemon", i, k)
		}
	}
	for i, p := range out.Positions {
		if p < 0 || p >= float64(out.Total()) {
			t.Errorf("slot %d position %v out of strip", i, p)
		}
	}
}

func TestStepReel_LateWrapUsesFinalKindsByRow(t *testing.T) {
	target := []model.Kind{model.Star, model.Grape, model.Orange}
	in := newSpinningState(target)
	out := StepReel(in, 900*time.Millisecond, fixedRandom{n: int(model.Lemon)})

	// смещение 35.1: ячейки 4, 5, 6 попадают в строки 0, 1, 2
	for row, slot := range []int{4, 5, 6} {
		if out.Kinds[slot] != target[row] {
			t.Errorf("slot %d kind %v, want %v", slot, out.Kinds[slot], target[row])
		}
	}
	if out.Kinds[0] != model.Cherry {
		t.Errorf("slot 0 landed outside the window and should keep its kind, got %v", out.Kinds[0])
	}
	if !out.Spinning {
		t.Error("reel should still be spinning at 90%")
	}
}

func TestStepReel_Settles(t *testing.T) {
	target := []model.Kind{model.Grape, model.Orange, model.Lemon}
	s := newSpinningState(target)
	for i := 0; i < 7; i++ {
		s = StepReel(s, 170*time.Millisecond, fixedRandom{n: int(model.Star)})
	}
	if s.Spinning {
		t.Fatal("reel should be settled after its duration")
	}
	if s.Offset != 0 {
		t.Errorf("Offset = %v, want 0", s.Offset)
	}
	for i, p := range s.Positions {
		if p != float64(i) {
			t.Errorf("slot %d position %v, want %d", i, p, i)
		}
	}
	got := s.VisibleKinds()
	for i := range target {
		if got[i] != target[i] {
			t.Errorf("row %d kind %v, want %v", i, got[i], target[i])
		}
	}
	if s.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", s.Progress())
	}
}

func TestStepReel_IdleIsNoop(t *testing.T) {
	s := newSpinningState(nil)
	s.Spinning = false
	out := StepReel(s, time.Second, fixedRandom{})
	if out.Elapsed != 0 {
		t.Error("idle reel should not advance")
	}
}
