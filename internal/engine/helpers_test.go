package engine

// fixedRandom Источник, который всегда возвращает одно и то же
type fixedRandom struct {
	n int
	f float64
}

func (r fixedRandom) IntN(n int) int {
	return r.n % n
}

func (r fixedRandom) Float64() float64 {
	return r.f
}

// switchRandom Отдает неизвестный символ из IntN, пока bad выставлен
type switchRandom struct {
	Random
	bad bool
}

func (r *switchRandom) IntN(n int) int {
	if r.bad {
		return n + 7
	}
	return r.Random.IntN(n)
}
