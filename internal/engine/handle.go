package engine

import "sync"

// Handle Отложенный результат асинхронной операции (спин барабана, спин поля).
// Разрешается ровно один раз. Если цикл тиков остановлен до разрешения,
// Done никогда не закроется.
type Handle[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	settled  bool
	value    T
	err      error
	handlers []func(T, error)
}

func newHandle[T any]() *Handle[T] {
	return &Handle[T]{done: make(chan struct{})}
}

// Resolved Уже разрешенный handle
func Resolved[T any](v T) *Handle[T] {
	h := newHandle[T]()
	h.resolve(v)
	return h
}

// Rejected Уже отклоненный handle
func Rejected[T any](err error) *Handle[T] {
	h := newHandle[T]()
	h.reject(err)
	return h
}

func (h *Handle[T]) resolve(v T) {
	h.settle(v, nil)
}

func (h *Handle[T]) reject(err error) {
	var zero T
	h.settle(zero, err)
}

func (h *Handle[T]) settle(v T, err error) {
	h.mu.Lock()
	if h.settled {
		h.mu.Unlock()
		return
	}
	h.settled = true
	h.value = v
	h.err = err
	handlers := h.handlers
	h.handlers = nil
	close(h.done)
	h.mu.Unlock()

	for _, fn := range handlers {
		fn(v, err)
	}
}

// Then Регистрирует обработчик результата. Для уже разрешенного handle
// обработчик вызывается сразу.
func (h *Handle[T]) Then(fn func(T, error)) {
	h.mu.Lock()
	if !h.settled {
		h.handlers = append(h.handlers, fn)
		h.mu.Unlock()
		return
	}
	v, err := h.value, h.err
	h.mu.Unlock()
	fn(v, err)
}

// Done Канал закрывается после разрешения
func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Result Значение, признак того, что handle разрешен, и ошибка
func (h *Handle[T]) Result() (T, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.value, h.settled, h.err
}

// All Объединяет handle'ы. Порядок значений совпадает с порядком входа
// независимо от порядка разрешения. Первая ошибка отклоняет результат.
func All[T any](hs []*Handle[T]) *Handle[[]T] {
	out := newHandle[[]T]()
	if len(hs) == 0 {
		out.resolve([]T{})
		return out
	}
	var mu sync.Mutex
	values := make([]T, len(hs))
	left := len(hs)
	for i, h := range hs {
		h.Then(func(v T, err error) {
			if err != nil {
				out.reject(err)
				return
			}
			mu.Lock()
			values[i] = v
			left--
			last := left == 0
			mu.Unlock()
			if last {
				out.resolve(values)
			}
		})
	}
	return out
}
