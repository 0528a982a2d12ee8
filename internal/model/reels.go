package model

// ReelsView Текущие символы и позиции ячеек для отрисовки
type ReelsView struct {
	Reels      [][]Kind
	Positions  [][]float64
	SlotHeight float64
	Spinning   bool
}
