package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig Размеры поля и параметры анимации
type GameConfig interface {
	Reels() int
	VisibleRows() int
	BufferSlots() int
	Stagger() time.Duration
	MinSpinDuration() time.Duration
	MaxSpinDuration() time.Duration
	ScrollLaps() float64
	LateThreshold() float64
	SlotHeight() float64
	TickInterval() time.Duration
	Seed() uint64
}

// LedgerConfig Стартовый баланс и шаги ставки
type LedgerConfig interface {
	InitialBalance() int64
	BetSteps() []int64
	StatsWindow() int
}

type HTTPConfig interface {
	Address() string
}

// LogConfig Настройки логирования
type LogConfig interface {
	Mode() string
	Level() string
	App() string
	Dir() string
	File() bool
}
