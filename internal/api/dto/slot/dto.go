package slot

type State struct {
	Balance        int64  `json:"balance"`
	Bet            int64  `json:"bet"`
	MinBet         int64  `json:"min_bet"`
	MaxBet         int64  `json:"max_bet"`
	Spinning       bool   `json:"spinning"`
	Phase          string `json:"phase"`
	CanSpin        bool   `json:"can_spin"`
	CanIncreaseBet bool   `json:"can_increase_bet"`
	CanDecreaseBet bool   `json:"can_decrease_bet"`
}

type SpinResponse struct {
	Accepted bool  `json:"accepted"`
	State    State `json:"state"`
}

type BetRequest struct {
	Direction string `json:"direction"` // "up" или "down"
}

type BetResponse struct {
	Changed bool  `json:"changed"`
	State   State `json:"state"`
}

type LayoutRequest struct {
	SlotHeight  *float64 `json:"slot_height,omitempty"`  // Высота ячейки, > 0
	BufferSlots *int     `json:"buffer_slots,omitempty"` // Запас ячеек над видимыми, >= 0, только между спинами
}

type ReelsResponse struct {
	Reels      [][]int     `json:"reels"`     // reels[reel][row], ID символов
	Positions  [][]float64 `json:"positions"` // Позиции всех ячеек ленты
	SlotHeight float64     `json:"slot_height"`
	Spinning   bool        `json:"spinning"`
}

type Symbol struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Glyph      string `json:"glyph"`
	Color      string `json:"color"` // #RRGGBB
	Multiplier int    `json:"multiplier"`
}

type LineWin struct {
	Row        int   `json:"row"`
	Symbol     int   `json:"symbol"`
	Multiplier int   `json:"multiplier"`
	Payout     int64 `json:"payout"`
}

type SpinResult struct {
	RoundID     string    `json:"round_id"`
	Grid        [][]int   `json:"grid"`
	Bet         int64     `json:"bet"`
	LineWins    []LineWin `json:"line_wins"`
	TotalPayout int64     `json:"total_payout"`
	Balance     int64     `json:"balance"`
	SettledAt   string    `json:"settled_at"` // RFC3339
}

type SpinSettled struct {
	Result SpinResult `json:"result"`
	State  State      `json:"state"`
}

type Stats struct {
	TotalSpins   int    `json:"total_spins"`
	WinningSpins int    `json:"winning_spins"`
	TotalBet     string `json:"total_bet"`
	TotalPayout  string `json:"total_payout"`
	BiggestWin   int64  `json:"biggest_win"`
	RTP          string `json:"rtp"`
	WindowRTP    string `json:"window_rtp"`
	HitRate      string `json:"hit_rate"`
	WindowSize   int    `json:"window_size"`
	WindowSpins  int    `json:"window_spins"`
}
