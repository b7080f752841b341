package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/balancing"
)

type SyncBalancesRequest struct {
	AccountID *string `json:"account_id,omitempty"`
}

// SyncBalances sincroniza uma conta específica ou todas as contas ativas do tenant
func SyncBalances(service balancing.BalancingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncBalances")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var req SyncBalancesRequest
		if !decodeOptionalBody(w, r, &req) {
			return
		}

		if req.AccountID != nil && *req.AccountID == "" {
			req.AccountID = nil
		}

		result, err := service.SyncBalances(r.Context(), tenant, req.AccountID)
		if err != nil {
			writeServiceError(w, err, "Erro ao sincronizar saldos")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
