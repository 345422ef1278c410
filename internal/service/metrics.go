package service

import "github.com/prometheus/client_golang/prometheus"

// Результаты сохранения для метки result.
const (
	resultOK      = "ok"
	resultInvalid = "invalid"
	resultError   = "error"
)

var ornamentSaves = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ornament_saves_total",
		Help: "Total number of ornament collection saves by scope kind and result",
	},
	[]string{"scope", "result"},
)

// RegisterMetrics регистрирует метрики сервиса. Вызывается из main.go.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(ornamentSaves)
}
