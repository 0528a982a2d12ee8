package repository

import "slot_machine/internal/model"

type StatsRepository interface {
	Record(bet, payout int64)
	Stats() model.SessionStats
	Reset()
}
