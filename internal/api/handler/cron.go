package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/scheduler"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
)

const CronJobTypeAll = "all"

// CronJobServices liga o tipo informado na URL ao job agendado
type CronJobServices map[string]scheduler.Job

// RunCronJob dispara manualmente um job agendado
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		if cronType == CronJobTypeAll {
			started := make(map[string]bool, len(services))
			for name, job := range services {
				started[name] = job.TriggerManualSync()
			}

			writeJSON(w, http.StatusAccepted, map[string]any{
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, ok := services[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido: "+cronType, nil)
			return
		}

		started := job.TriggerManualSync()
		message := "Execução iniciada"
		if !started {
			message = "Execução já em andamento"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"type":    cronType,
			"started": started,
			"message": message,
		})
	}
}

// GetCronStatus retorna o status de todos os jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
