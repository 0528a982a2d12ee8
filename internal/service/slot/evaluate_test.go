package slot

import (
	"slot_machine/internal/model"
	"testing"
)

const (
	cherry = model.Cherry
	lemon  = model.Lemon
	orange = model.Orange
	grape  = model.Grape
	star   = model.Star
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		grid model.Grid
		bet  int64
		want int64
	}{
		{
			name: "cherry and orange rows",
			grid: model.Grid{{cherry, lemon, orange}, {cherry, star, orange}, {cherry, grape, orange}},
			bet:  10,
			want: 130,
		},
		{
			name: "no match",
			grid: model.Grid{{cherry, lemon, orange}, {lemon, orange, cherry}, {orange, cherry, lemon}},
			bet:  10,
			want: 0,
		},
		{
			name: "all stars",
			grid: model.Grid{{star, star, star}, {star, star, star}, {star, star, star}},
			bet:  20,
			want: 60,
		},
		{
			name: "ragged grid uses common rows",
			grid: model.Grid{{cherry, lemon}, {cherry}, {cherry, lemon, grape}},
			bet:  10,
			want: 100,
		},
		{
			name: "unknown kind pays lowest multiplier",
			grid: model.Grid{{model.Kind(99), lemon}, {model.Kind(99), star}, {model.Kind(99), grape}},
			bet:  10,
			want: 10,
		},
		{name: "empty grid", grid: nil, bet: 10, want: 0},
		{
			name: "zero bet",
			grid: model.Grid{{cherry}, {cherry}, {cherry}},
			bet:  0,
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.grid, tt.bet); got != tt.want {
				t.Errorf("Evaluate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateLines(t *testing.T) {
	grid := model.Grid{{cherry, lemon, orange}, {cherry, star, orange}, {cherry, grape, orange}}
	wins := EvaluateLines(grid, 10)
	if len(wins) != 2 {
		t.Fatalf("wins = %d, want 2", len(wins))
	}
	want := []model.LineWin{
		{Row: 0, Symbol: cherry, Multiplier: 10, Payout: 100},
		{Row: 2, Symbol: orange, Multiplier: 3, Payout: 30},
	}
	for i := range want {
		if wins[i] != want[i] {
			t.Errorf("wins[%d] = %+v, want %+v", i, wins[i], want[i])
		}
	}
}

func TestEvaluateLines_UnknownKind(t *testing.T) {
	unknown := model.Kind(model.KindCount)
	grid := model.Grid{{lemon, unknown}, {star, unknown}, {grape, unknown}}
	wins := EvaluateLines(grid, 20)
	want := model.LineWin{Row: 1, Symbol: unknown, Multiplier: 1, Payout: 20}
	if len(wins) != 1 || wins[0] != want {
		t.Fatalf("wins = %+v, want [%+v]", wins, want)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	grid := model.Grid{{cherry, lemon, orange}, {cherry, star, orange}, {cherry, grape, orange}}
	before := grid.Clone()
	first := Evaluate(grid, 10)
	second := Evaluate(grid, 10)
	if first != second {
		t.Errorf("Evaluate not deterministic: %d != %d", first, second)
	}
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != before[i][j] {
				t.Fatalf("grid mutated at [%d][%d]", i, j)
			}
		}
	}
}
