package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slot_machine/internal/config"
	"time"

	"gopkg.in/yaml.v3"
)

type gameFile struct {
	Game   gameSection   `yaml:"game"`
	Ledger ledgerSection `yaml:"ledger"`
}

type gameSection struct {
	Reels           int           `yaml:"reels"`
	VisibleRows     int           `yaml:"visible_rows"`
	BufferSlots     int           `yaml:"buffer_slots"`
	Stagger         time.Duration `yaml:"stagger"`
	MinSpinDuration time.Duration `yaml:"min_spin_duration"`
	MaxSpinDuration time.Duration `yaml:"max_spin_duration"`
	ScrollLaps      float64       `yaml:"scroll_laps"`
	LateThreshold   float64       `yaml:"late_threshold"`
	SlotHeight      float64       `yaml:"slot_height"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	Seed            uint64        `yaml:"seed"`
}

type ledgerSection struct {
	InitialBalance int64   `yaml:"initial_balance"`
	BetSteps       []int64 `yaml:"bet_steps"`
	StatsWindow    int     `yaml:"stats_window"`
}

// Значения по умолчанию, если файла нет или поле не задано
func defaultGameFile() gameFile {
	return gameFile{
		Game: gameSection{
			Reels:           3,
			VisibleRows:     3,
			BufferSlots:     10,
			Stagger:         200 * time.Millisecond,
			MinSpinDuration: 1500 * time.Millisecond,
			MaxSpinDuration: 2500 * time.Millisecond,
			ScrollLaps:      3,
			LateThreshold:   0.8,
			SlotHeight:      100,
			TickInterval:    16 * time.Millisecond,
		},
		Ledger: ledgerSection{
			InitialBalance: 1000,
			BetSteps:       []int64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			StatsWindow:    500,
		},
	}
}

func readGameFile(path string) (gameFile, error) {
	cfg := defaultGameFile()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

type gameConfig struct {
	s gameSection
}

// NewGameConfigFromYAML Читает секцию game. Если файла нет, берутся значения по умолчанию.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	f, err := readGameFile(path)
	if err != nil {
		return nil, err
	}
	g := f.Game
	switch {
	case g.Reels <= 0:
		return nil, fmt.Errorf("game.reels must be positive, got %d", g.Reels)
	case g.VisibleRows <= 0:
		return nil, fmt.Errorf("game.visible_rows must be positive, got %d", g.VisibleRows)
	case g.BufferSlots < 0:
		return nil, fmt.Errorf("game.buffer_slots must not be negative, got %d", g.BufferSlots)
	case g.Stagger < 0:
		return nil, fmt.Errorf("game.stagger must not be negative, got %v", g.Stagger)
	case g.MinSpinDuration <= 0 || g.MaxSpinDuration < g.MinSpinDuration:
		return nil, fmt.Errorf("game spin duration range [%v, %v] is invalid", g.MinSpinDuration, g.MaxSpinDuration)
	case g.ScrollLaps <= 0:
		return nil, fmt.Errorf("game.scroll_laps must be positive, got %v", g.ScrollLaps)
	case g.LateThreshold <= 0 || g.LateThreshold >= 1:
		return nil, fmt.Errorf("game.late_threshold must be in (0, 1), got %v", g.LateThreshold)
	case g.SlotHeight <= 0:
		return nil, fmt.Errorf("game.slot_height must be positive, got %v", g.SlotHeight)
	case g.TickInterval <= 0:
		return nil, fmt.Errorf("game.tick_interval must be positive, got %v", g.TickInterval)
	}
	return &gameConfig{s: g}, nil
}

func (c *gameConfig) Reels() int                     { return c.s.Reels }
func (c *gameConfig) VisibleRows() int               { return c.s.VisibleRows }
func (c *gameConfig) BufferSlots() int               { return c.s.BufferSlots }
func (c *gameConfig) Stagger() time.Duration         { return c.s.Stagger }
func (c *gameConfig) MinSpinDuration() time.Duration { return c.s.MinSpinDuration }
func (c *gameConfig) MaxSpinDuration() time.Duration { return c.s.MaxSpinDuration }
func (c *gameConfig) ScrollLaps() float64            { return c.s.ScrollLaps }
func (c *gameConfig) LateThreshold() float64         { return c.s.LateThreshold }
func (c *gameConfig) SlotHeight() float64            { return c.s.SlotHeight }
func (c *gameConfig) TickInterval() time.Duration    { return c.s.TickInterval }
func (c *gameConfig) Seed() uint64                   { return c.s.Seed }

type ledgerConfig struct {
	s ledgerSection
}

// NewLedgerConfigFromYAML Читает секцию ledger
func NewLedgerConfigFromYAML(path string) (config.LedgerConfig, error) {
	f, err := readGameFile(path)
	if err != nil {
		return nil, err
	}
	l := f.Ledger
	if l.InitialBalance < 0 {
		return nil, fmt.Errorf("ledger.initial_balance must not be negative, got %d", l.InitialBalance)
	}
	if len(l.BetSteps) == 0 {
		return nil, errors.New("ledger.bet_steps is empty")
	}
	for i, step := range l.BetSteps {
		if step <= 0 {
			return nil, fmt.Errorf("ledger.bet_steps[%d] must be positive, got %d", i, step)
		}
		if i > 0 && step <= l.BetSteps[i-1] {
			return nil, fmt.Errorf("ledger.bet_steps must be strictly increasing at index %d", i)
		}
	}
	if l.StatsWindow <= 0 {
		return nil, fmt.Errorf("ledger.stats_window must be positive, got %d", l.StatsWindow)
	}
	return &ledgerConfig{s: l}, nil
}

func (c *ledgerConfig) InitialBalance() int64 { return c.s.InitialBalance }

func (c *ledgerConfig) BetSteps() []int64 {
	return append([]int64(nil), c.s.BetSteps...)
}

func (c *ledgerConfig) StatsWindow() int { return c.s.StatsWindow }
