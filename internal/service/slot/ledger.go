package slot

import (
	"fmt"
	"slices"
	"slot_machine/internal/model"
)

// Ledger Баланс и ставка игрока. Не потокобезопасен: им владеет цикл движка.
type Ledger struct {
	balance  int64
	steps    []int64
	betIndex int
	spinning bool
}

// NewLedger Кошелёк с начальным балансом и лестницей ставок. Ставка начинается с минимальной.
func NewLedger(balance int64, steps []int64) (*Ledger, error) {
	if balance < 0 {
		return nil, fmt.Errorf("initial balance %d: %w", balance, ErrNegativeAmount)
	}
	if len(steps) == 0 {
		return nil, ErrInvalidBetSteps
	}
	for i, s := range steps {
		if s <= 0 || (i > 0 && s <= steps[i-1]) {
			return nil, fmt.Errorf("step %d = %d: %w", i, s, ErrInvalidBetSteps)
		}
	}
	return &Ledger{balance: balance, steps: slices.Clone(steps)}, nil
}

func (l *Ledger) Balance() int64    { return l.balance }
func (l *Ledger) CurrentBet() int64 { return l.steps[l.betIndex] }
func (l *Ledger) MinBet() int64     { return l.steps[0] }
func (l *Ledger) MaxBet() int64     { return l.steps[len(l.steps)-1] }
func (l *Ledger) Spinning() bool    { return l.spinning }

// BetSteps Копия лестницы ставок
func (l *Ledger) BetSteps() []int64 { return slices.Clone(l.steps) }

// CanSpin Спин возможен, если барабаны стоят и баланса хватает на ставку
func (l *Ledger) CanSpin() bool {
	return !l.spinning && l.balance >= l.CurrentBet()
}

// CanIncreaseBet Есть следующая ступень и она не больше баланса
func (l *Ledger) CanIncreaseBet() bool {
	return !l.spinning && l.betIndex+1 < len(l.steps) && l.steps[l.betIndex+1] <= l.balance
}

func (l *Ledger) CanDecreaseBet() bool {
	return !l.spinning && l.betIndex > 0
}

// AdjustBet Сдвинуть ставку на одну ступень. false, если сдвиг невозможен.
func (l *Ledger) AdjustBet(dir model.BetDirection) bool {
	switch {
	case dir == model.BetUp && l.CanIncreaseBet():
		l.betIndex++
	case dir == model.BetDown && l.CanDecreaseBet():
		l.betIndex--
	default:
		return false
	}
	return true
}

// Debit Списать сумму. Баланс не уходит в минус.
func (l *Ledger) Debit(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("debit %d: %w", amount, ErrNegativeAmount)
	}
	if amount > l.balance {
		return fmt.Errorf("debit %d from %d: %w", amount, l.balance, ErrInsufficientBalance)
	}
	l.balance -= amount
	return nil
}

// Credit Начислить сумму
func (l *Ledger) Credit(amount int64) error {
	if amount < 0 {
		return fmt.Errorf("credit %d: %w", amount, ErrNegativeAmount)
	}
	l.balance += amount
	return nil
}

// StartSpin Проверка, списание ставки и флаг вращения одним шагом
func (l *Ledger) StartSpin() bool {
	if !l.CanSpin() {
		return false
	}
	if err := l.Debit(l.CurrentBet()); err != nil {
		return false
	}
	l.spinning = true
	return true
}

// EndSpin Снять флаг вращения. Если баланс стал меньше ставки,
// ставка опускается до ближайшей доступной ступени.
func (l *Ledger) EndSpin() {
	l.spinning = false
	for l.betIndex > 0 && l.steps[l.betIndex] > l.balance {
		l.betIndex--
	}
}
