package engine

import "time"

// TimerID Идентификатор таймера планировщика
type TimerID uint64

type timer struct {
	id        TimerID
	elapsed   time.Duration
	duration  time.Duration
	callback  func()
	repeat    bool
	cancelled bool
}

// Scheduler Таймеры на тиках цикла. Время идет только через Tick,
// поэтому отложенные вызовы детерминированы в тестах.
type Scheduler struct {
	timers    []*timer
	next      TimerID
	destroyed bool
}

// NewScheduler Создать пустой планировщик
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After Вызвать callback один раз, когда накопится delay
func (s *Scheduler) After(delay time.Duration, callback func()) TimerID {
	return s.add(delay, callback, false)
}

// Every Вызывать callback каждые interval
func (s *Scheduler) Every(interval time.Duration, callback func()) TimerID {
	return s.add(interval, callback, true)
}

func (s *Scheduler) add(d time.Duration, callback func(), repeat bool) TimerID {
	if s.destroyed {
		return 0
	}
	s.next++
	s.timers = append(s.timers, &timer{
		id:       s.next,
		duration: d,
		callback: callback,
		repeat:   repeat,
	})
	return s.next
}

// Cancel Снять таймер. Неизвестный id игнорируется.
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			t.cancelled = true
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// CancelAll Снять все таймеры
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
	s.timers = nil
}

// Destroy Снять все таймеры и больше не принимать новые
func (s *Scheduler) Destroy() {
	s.CancelAll()
	s.destroyed = true
}

// Pending Количество активных таймеров
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Tick Продвигает все таймеры на dt. Таймеры, добавленные из callback,
// начинают отсчет со следующего тика.
func (s *Scheduler) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	current := append([]*timer(nil), s.timers...)
	for _, t := range current {
		if t.cancelled {
			continue
		}
		t.elapsed += dt
		if t.elapsed < t.duration {
			continue
		}
		if t.repeat {
			t.elapsed = 0
		} else {
			s.Cancel(t.id)
		}
		t.callback()
	}
}
