package converter

import (
	"errors"
	"fmt"
	dto "slot_machine/internal/api/dto/slot"
	"slot_machine/internal/model"
	"time"
)

// ErrUnknownDirection Направление ставки не "up" и не "down"
var ErrUnknownDirection = errors.New("unknown bet direction")

func ToBetDirection(req dto.BetRequest) (model.BetDirection, error) {
	switch req.Direction {
	case "up":
		return model.BetUp, nil
	case "down":
		return model.BetDown, nil
	default:
		return 0, fmt.Errorf("%q: %w", req.Direction, ErrUnknownDirection)
	}
}

func ToStateResponse(s model.State) dto.State {
	return dto.State{
		Balance:        s.Balance,
		Bet:            s.Bet,
		MinBet:         s.MinBet,
		MaxBet:         s.MaxBet,
		Spinning:       s.Spinning,
		Phase:          s.Phase.String(),
		CanSpin:        s.CanSpin,
		CanIncreaseBet: s.CanIncreaseBet,
		CanDecreaseBet: s.CanDecreaseBet,
	}
}

func ToReelsResponse(v model.ReelsView) dto.ReelsResponse {
	return dto.ReelsResponse{
		Reels:      toIDs(v.Reels),
		Positions:  v.Positions,
		SlotHeight: v.SlotHeight,
		Spinning:   v.Spinning,
	}
}

func ToSymbolsResponse(infos []model.SymbolInfo) []dto.Symbol {
	out := make([]dto.Symbol, len(infos))
	for i, s := range infos {
		out[i] = dto.Symbol{
			ID:         int(s.Kind),
			Name:       s.Name,
			Glyph:      s.Glyph,
			Color:      fmt.Sprintf("#%06X", s.Color),
			Multiplier: s.Multiplier,
		}
	}
	return out
}

func ToSpinResultResponse(r model.SpinResult) dto.SpinResult {
	return dto.SpinResult{
		RoundID:     r.RoundID,
		Grid:        toIDs(r.Grid),
		Bet:         r.Bet,
		LineWins:    toLineWins(r.LineWins),
		TotalPayout: r.TotalPayout,
		Balance:     r.Balance,
		SettledAt:   r.SettledAt.UTC().Format(time.RFC3339Nano),
	}
}

func ToStatsResponse(s model.SessionStats) dto.Stats {
	return dto.Stats{
		TotalSpins:   s.TotalSpins,
		WinningSpins: s.WinningSpins,
		TotalBet:     s.TotalBet.String(),
		TotalPayout:  s.TotalPayout.String(),
		BiggestWin:   s.BiggestWin,
		RTP:          s.RTP.StringFixed(2),
		WindowRTP:    s.WindowRTP.StringFixed(2),
		HitRate:      s.HitRate.StringFixed(2),
		WindowSize:   s.WindowSize,
		WindowSpins:  s.WindowSpins,
	}
}

// ToEventPayload Имя SSE события и его тело
func ToEventPayload(e model.Event) (string, any) {
	if e.Type == model.EventSpinSettled && e.Result != nil {
		return string(e.Type), dto.SpinSettled{
			Result: ToSpinResultResponse(*e.Result),
			State:  ToStateResponse(e.State),
		}
	}
	return string(model.EventState), ToStateResponse(e.State)
}

func toLineWins(wins []model.LineWin) []dto.LineWin {
	out := make([]dto.LineWin, len(wins))
	for i, w := range wins {
		out[i] = dto.LineWin{
			Row:        w.Row,
			Symbol:     int(w.Symbol),
			Multiplier: w.Multiplier,
			Payout:     w.Payout,
		}
	}
	return out
}

func toIDs[G ~[][]model.Kind](g G) [][]int {
	out := make([][]int, len(g))
	for i, col := range g {
		out[i] = make([]int, len(col))
		for j, k := range col {
			out[i][j] = int(k)
		}
	}
	return out
}
