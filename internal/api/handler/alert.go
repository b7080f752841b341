package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/alerting"
)

// CheckAlerts avalia o saldo das contas ativas do tenant e cria os alertas devidos
func CheckAlerts(service alerting.AlertingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckAlerts")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		result, err := service.CheckBalanceAlerts(r.Context(), tenant)
		if err != nil {
			writeServiceError(w, err, "Erro ao verificar alertas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListAlerts(service alerting.AlertingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.AlertFilter{
			TenantID:   tenant,
			UnreadOnly: queryBool(query.Get("unread")),
			Limit:      queryLimit(query.Get("limit")),
		}

		if accountID := query.Get("account_id"); accountID != "" {
			filter.AccountID = &accountID
		}

		if kind := query.Get("kind"); kind != "" {
			alertKind := domain.AlertKind(kind)
			filter.Kind = &alertKind
		}

		alerts, err := service.ListAlerts(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar alertas")
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}

func MarkAlertAsRead(service alerting.AlertingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.MarkAsRead(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao marcar alerta como lido")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteAlert(service alerting.AlertingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteAlert(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao remover alerta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteAllAlerts(service alerting.AlertingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		deleted, err := service.DeleteAllAlerts(r.Context(), tenant)
		if err != nil {
			writeServiceError(w, err, "Erro ao remover alertas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
	}
}

func queryBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}

func queryLimit(value string) uint64 {
	limit, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return limit
}
