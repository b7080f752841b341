package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/metrics"
)

// Job é um processo agendado que também pode ser disparado manualmente
type Job interface {
	Start(ctx context.Context) error
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// runState impede execuções sobrepostas de um mesmo job e guarda os
// horários da última execução
type runState struct {
	name string

	mutex       sync.Mutex
	running     bool
	startedAt   time.Time
	completedAt time.Time
}

// begin marca o job como em execução; devolve false se já houver uma rodando
func (r *runState) begin(now time.Time) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.running {
		logrus.WithField("job", r.name).Info("Execução já em andamento, ignorando")
		return false
	}

	r.running = true
	r.startedAt = now
	return true
}

func (r *runState) end(now time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	metrics.JobDuration.WithLabelValues(r.name).Observe(now.Sub(r.startedAt).Seconds())

	r.running = false
	r.completedAt = now
}

func (r *runState) isRunning() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.running
}

func (r *runState) snapshot() (bool, time.Time, time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.running, r.startedAt, r.completedAt
}
