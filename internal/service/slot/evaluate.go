package slot

import "slot_machine/internal/model"

// EvaluateLines Выигрышные строки: строка r выигрывает, если на всех барабанах
// в ней один и тот же символ. Выплата строки bet * множитель символа.
func EvaluateLines(grid model.Grid, bet int64) []model.LineWin {
	if bet <= 0 || len(grid) == 0 {
		return nil
	}
	var wins []model.LineWin
	for row := range grid.Rows() {
		first := grid[0][row]
		matched := true
		for _, col := range grid[1:] {
			if col[row] != first {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		mult := model.MultiplierOf(first)
		wins = append(wins, model.LineWin{
			Row:        row,
			Symbol:     first,
			Multiplier: mult,
			Payout:     bet * int64(mult),
		})
	}
	return wins
}

// Evaluate Суммарный выигрыш по всем строкам
func Evaluate(grid model.Grid, bet int64) int64 {
	var total int64
	for _, w := range EvaluateLines(grid, bet) {
		total += w.Payout
	}
	return total
}
