package service

import (
	"context"
	"slot_machine/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context) (accepted bool, state model.State, err error)
	AdjustBet(ctx context.Context, dir model.BetDirection) (changed bool, state model.State, err error)
	State(ctx context.Context) (model.State, error)
	LastResult(ctx context.Context) (*model.SpinResult, error)
	Reels(ctx context.Context) (*model.ReelsView, error)
	SetSlotHeight(ctx context.Context, h float64) error
	ResizeReels(ctx context.Context, buffer int) error
	Stats() model.SessionStats
	ResetStats()
	Subscribe() (events <-chan model.Event, cancel func())
}
