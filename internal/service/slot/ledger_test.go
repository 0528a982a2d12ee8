package slot

import (
	"errors"
	"slot_machine/internal/model"
	"testing"

	"pgregory.net/rapid"
)

var testSteps = []int64{10, 20, 30, 50, 100}

func newTestLedger(t *testing.T, balance int64) *Ledger {
	t.Helper()
	l, err := NewLedger(balance, testSteps)
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}
	return l
}

func TestNewLedger_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		steps   []int64
		want    error
	}{
		{"negative balance", -1, testSteps, ErrNegativeAmount},
		{"no steps", 100, nil, ErrInvalidBetSteps},
		{"zero step", 100, []int64{0, 10}, ErrInvalidBetSteps},
		{"not increasing", 100, []int64{10, 10}, ErrInvalidBetSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLedger(tt.balance, tt.steps); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLedger_Defaults(t *testing.T) {
	l := newTestLedger(t, 1000)
	if l.Balance() != 1000 || l.CurrentBet() != 10 || l.MinBet() != 10 || l.MaxBet() != 100 {
		t.Fatalf("balance=%d bet=%d min=%d max=%d", l.Balance(), l.CurrentBet(), l.MinBet(), l.MaxBet())
	}
	steps := l.BetSteps()
	steps[0] = 999
	if l.MinBet() != 10 {
		t.Error("BetSteps must return a copy")
	}
}

func TestLedger_AdjustBet(t *testing.T) {
	l := newTestLedger(t, 25)
	if l.AdjustBet(model.BetDown) {
		t.Error("decrease at min bet must fail")
	}
	if !l.AdjustBet(model.BetUp) || l.CurrentBet() != 20 {
		t.Fatalf("increase to 20 failed, bet = %d", l.CurrentBet())
	}
	if l.CanIncreaseBet() || l.AdjustBet(model.BetUp) {
		t.Error("increase above balance must fail")
	}
	if l.CurrentBet() != 20 {
		t.Errorf("bet = %d, want 20", l.CurrentBet())
	}
	if !l.AdjustBet(model.BetDown) || l.CurrentBet() != 10 {
		t.Errorf("decrease failed, bet = %d", l.CurrentBet())
	}
}

func TestLedger_AdjustBetStopsAtMax(t *testing.T) {
	l := newTestLedger(t, 1000)
	for l.AdjustBet(model.BetUp) {
	}
	if l.CurrentBet() != 100 {
		t.Errorf("bet = %d, want 100", l.CurrentBet())
	}
}

func TestLedger_CanSpin(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		spinning bool
		want     bool
	}{
		{"enough", 10, false, true},
		{"short", 9, false, false},
		{"spinning", 100, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t, tt.balance)
			l.spinning = tt.spinning
			if got := l.CanSpin(); got != tt.want {
				t.Errorf("CanSpin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLedger_BalanceBelowMinBet(t *testing.T) {
	l, err := NewLedger(15, []int64{20, 40})
	if err != nil {
		t.Fatal(err)
	}
	if l.CanSpin() {
		t.Error("CanSpin with balance 15 and bet 20")
	}
	if l.StartSpin() {
		t.Error("StartSpin must fail")
	}
	if l.Balance() != 15 || l.Spinning() {
		t.Errorf("state changed: balance=%d spinning=%v", l.Balance(), l.Spinning())
	}
}

func TestLedger_DebitCredit(t *testing.T) {
	l := newTestLedger(t, 100)
	if err := l.Debit(30); err != nil {
		t.Fatal(err)
	}
	if err := l.Credit(30); err != nil {
		t.Fatal(err)
	}
	if l.Balance() != 100 {
		t.Errorf("balance = %d, want 100", l.Balance())
	}
	if err := l.Debit(101); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("err = %v, want ErrInsufficientBalance", err)
	}
	if err := l.Credit(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("err = %v, want ErrNegativeAmount", err)
	}
	if err := l.Debit(-1); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("err = %v, want ErrNegativeAmount", err)
	}
	if l.Balance() != 100 {
		t.Errorf("balance = %d after failed ops, want 100", l.Balance())
	}
}

func TestLedger_StartEndSpin(t *testing.T) {
	l := newTestLedger(t, 100)
	if !l.StartSpin() {
		t.Fatal("StartSpin failed")
	}
	if l.Balance() != 90 || !l.Spinning() {
		t.Fatalf("balance=%d spinning=%v", l.Balance(), l.Spinning())
	}
	if l.StartSpin() || l.CanIncreaseBet() || l.CanDecreaseBet() {
		t.Error("ledger must be locked while spinning")
	}
	l.EndSpin()
	if l.Spinning() || !l.CanSpin() {
		t.Error("EndSpin must unlock")
	}
}

func TestLedger_EndSpinLowersBet(t *testing.T) {
	l := newTestLedger(t, 100)
	for l.AdjustBet(model.BetUp) {
	}
	if !l.StartSpin() {
		t.Fatal("StartSpin failed")
	}
	l.EndSpin()
	if l.Balance() != 0 || l.CurrentBet() != 10 {
		t.Errorf("balance=%d bet=%d, want 0/10", l.Balance(), l.CurrentBet())
	}
}

func TestLedger_DebitCreditRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.Int64Range(0, 1_000_000).Draw(t, "balance")
		l, err := NewLedger(balance, testSteps)
		if err != nil {
			t.Fatal(err)
		}
		amount := rapid.Int64Range(0, balance).Draw(t, "amount")
		if err := l.Debit(amount); err != nil {
			t.Fatal(err)
		}
		if err := l.Credit(amount); err != nil {
			t.Fatal(err)
		}
		if l.Balance() != balance {
			t.Fatalf("balance = %d, want %d", l.Balance(), balance)
		}
	})
}

func TestLedger_BetStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.Int64Range(10, 500).Draw(t, "balance")
		l, err := NewLedger(balance, testSteps)
		if err != nil {
			t.Fatal(err)
		}
		dirs := rapid.SliceOf(rapid.SampledFrom([]model.BetDirection{model.BetUp, model.BetDown})).Draw(t, "dirs")
		for _, d := range dirs {
			l.AdjustBet(d)
			bet := l.CurrentBet()
			if bet < l.MinBet() || bet > l.MaxBet() || bet > l.Balance() {
				t.Fatalf("bet %d out of [%d, min(%d, %d)]", bet, l.MinBet(), l.MaxBet(), l.Balance())
			}
		}
	})
}

func TestLedger_CanSpinIff(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.Int64Range(0, 300).Draw(t, "balance")
		l, err := NewLedger(balance, testSteps)
		if err != nil {
			t.Fatal(err)
		}
		l.betIndex = rapid.IntRange(0, len(testSteps)-1).Draw(t, "bet")
		l.spinning = rapid.Bool().Draw(t, "spinning")
		want := !l.spinning && l.balance >= l.CurrentBet()
		if l.CanSpin() != want {
			t.Fatalf("CanSpin() = %v, want %v", l.CanSpin(), want)
		}
	})
}
