package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/reporting"
)

func GenerateReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateReport")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var req domain.GenerateReportRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.GenerateReport(r.Context(), tenant, req)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar relatórios")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ListReports(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.ReportFilter{
			TenantID:   tenant,
			UnreadOnly: queryBool(query.Get("unread")),
			Limit:      queryLimit(query.Get("limit")),
		}

		if accountID := query.Get("account_id"); accountID != "" {
			filter.AccountID = &accountID
		}

		reports, err := service.ListReports(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}

func MarkReportAsRead(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.MarkAsRead(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao marcar relatório como lido")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteReport(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao remover relatório")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteAllReports(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		deleted, err := service.DeleteAllReports(r.Context(), tenant)
		if err != nil {
			writeServiceError(w, err, "Erro ao remover relatórios")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
	}
}
