package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelReason = "reason"

// Причины отказа в спине
const (
	ReasonBusy         = "busy"
	ReasonInsufficient = "insufficient_balance"
)

var (
	spinsStarted = promauto.NewCounter(prometheus.CounterOpts{Name: "slot_spins_started_total", Help: "Запущенные спины"})
	spinsSettled = promauto.NewCounter(prometheus.CounterOpts{Name: "slot_spins_settled_total", Help: "Завершённые спины"})
	spinsFailed  = promauto.NewCounter(prometheus.CounterOpts{Name: "slot_spins_failed_total", Help: "Спины, завершившиеся ошибкой барабана"})
	spinsDenied  = promauto.NewCounterVec(prometheus.CounterOpts{Name: "slot_spins_declined_total", Help: "Отклонённые запросы спина"}, []string{labelReason})

	betAmount    = promauto.NewCounter(prometheus.CounterOpts{Name: "slot_bet_amount_total", Help: "Сумма ставок"})
	payoutAmount = promauto.NewCounter(prometheus.CounterOpts{Name: "slot_payout_amount_total", Help: "Сумма выплат"})

	balance     = promauto.NewGauge(prometheus.GaugeOpts{Name: "slot_balance", Help: "Текущий баланс"})
	currentBet  = promauto.NewGauge(prometheus.GaugeOpts{Name: "slot_current_bet", Help: "Текущая ставка"})
	subscribers = promauto.NewGauge(prometheus.GaugeOpts{Name: "slot_stream_subscribers", Help: "Открытые SSE подписки"})

	spinDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slot_spin_duration_seconds",
		Help:    "Время от запуска до остановки всех барабанов",
		Buckets: []float64{0.5, 1, 1.5, 2, 2.5, 3, 4, 5},
	})
)

// SpinStarted Ставка списана, барабаны запущены
func SpinStarted(bet, bal int64) {
	spinsStarted.Inc()
	betAmount.Add(float64(bet))
	balance.Set(float64(bal))
}

// SpinSettled Барабаны остановились, выигрыш начислен
func SpinSettled(payout, bal int64, took time.Duration) {
	spinsSettled.Inc()
	if payout > 0 {
		payoutAmount.Add(float64(payout))
	}
	balance.Set(float64(bal))
	spinDuration.Observe(took.Seconds())
}

func SpinFailed() { spinsFailed.Inc() }

func SpinDeclined(reason string) { spinsDenied.With(prometheus.Labels{labelReason: reason}).Inc() }

// BetChanged Обновить ставку и баланс
func BetChanged(bet, bal int64) {
	currentBet.Set(float64(bet))
	balance.Set(float64(bal))
}

func StreamSubscribers(n int) { subscribers.Set(float64(n)) }
