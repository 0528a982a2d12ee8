package model

// EventType Тип события для клиента
type EventType string

const (
	EventState       EventType = "state"
	EventSpinSettled EventType = "spin_settled"
)

// Event Событие, которое получает презентационный слой.
// Для EventSpinSettled заполнен Result.
type Event struct {
	Type   EventType
	State  State
	Result *SpinResult
}
