package model

// Kind Тип символа на барабане. Индекс 0 соответствует самому дорогому символу.
type Kind int

const (
	Cherry Kind = iota
	Lemon
	Orange
	Grape
	Star
)

// KindCount Количество типов символов
const KindCount = 5

// SymbolInfo Описание символа для отрисовки и выплат
type SymbolInfo struct {
	Kind       Kind
	Name       string
	Glyph      string
	Color      uint32
	Multiplier int
}

// Таблица символов. Порядок совпадает со значениями Kind.
var catalog = [KindCount]SymbolInfo{
	{Kind: Cherry, Name: "Cherry", Glyph: "🍒", Color: 0xFF6B6B, Multiplier: 10},
	{Kind: Lemon, Name: "Lemon", Glyph: "🍋", Color: 0xFFD93D, Multiplier: 5},
	{Kind: Orange, Name: "Orange", Glyph: "🍊", Color: 0xFF8C42, Multiplier: 3},
	{Kind: Grape, Name: "Grape", Glyph: "🍇", Color: 0x9B59B6, Multiplier: 2},
	{Kind: Star, Name: "Star", Glyph: "⭐", Color: 0xFFD700, Multiplier: 1},
}

// Valid Проверяет, что тип символа есть в таблице
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) String() string {
	return InfoOf(k).Name
}

// MultiplierOf Множитель выплаты для символа.
// Для неизвестного символа возвращается множитель самого дешевого символа.
func MultiplierOf(k Kind) int {
	if !k.Valid() {
		return catalog[KindCount-1].Multiplier
	}
	return catalog[k].Multiplier
}

// InfoOf Описание символа. Неизвестный символ отображается как первый в таблице.
func InfoOf(k Kind) SymbolInfo {
	if !k.Valid() {
		return catalog[0]
	}
	return catalog[k]
}

// Catalog Копия всей таблицы символов
func Catalog() []SymbolInfo {
	out := make([]SymbolInfo, KindCount)
	copy(out, catalog[:])
	return out
}
