// Package metrics содержит Prometheus-метрики операций над списками участников.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"activities-service/internal/model"
)

const namespace = "activities_service"

// OutcomeOK — значение метки outcome для успешной операции.
const OutcomeOK = "ok"

// ActivityLister отдаёт текущие снимки кружков; его читает gauge участников.
type ActivityLister interface {
	ListActivities(ctx context.Context) ([]model.Activity, error)
}

// Roster собирает метрики операций записи и отписки.
type Roster struct {
	operations     *prometheus.CounterVec
	publishFailure prometheus.Counter
}

// NewRoster создаёт коллекторы и регистрирует их в reg.
// Размеры списков читаются из lister в момент сбора метрик.
func NewRoster(reg prometheus.Registerer, lister ActivityLister) *Roster {
	m := &Roster{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "operations_total",
			Help:      "Roster operations by operation and outcome code.",
		}, []string{"operation", "outcome"}),
		publishFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Roster events that could not be published.",
		}),
	}
	reg.MustRegister(m.operations, m.publishFailure, newParticipantsCollector(lister))
	return m
}

// ObserveOperation увеличивает счётчик операции с указанным результатом.
func (m *Roster) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// PublishFailed отмечает неотправленное событие.
func (m *Roster) PublishFailed() {
	m.publishFailure.Inc()
}

// participantsCollector отдаёт размер каждого списка на момент сбора,
// поэтому gauge не зависит от порядка завершения конкурентных операций.
type participantsCollector struct {
	lister ActivityLister
	desc   *prometheus.Desc
}

func newParticipantsCollector(lister ActivityLister) *participantsCollector {
	return &participantsCollector{
		lister: lister,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "roster", "participants"),
			"Current number of participants per activity.",
			[]string{"activity"}, nil,
		),
	}
}

func (c *participantsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *participantsCollector) Collect(ch chan<- prometheus.Metric) {
	activities, err := c.lister.ListActivities(context.Background())
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.desc, err)
		return
	}
	for _, a := range activities {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(len(a.Participants)), a.Name)
	}
}
