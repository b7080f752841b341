package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/account"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
)

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.AccountFilter{
			TenantID:        tenant,
			IncludeManagers: queryBool(query.Get("include_managers")),
		}

		if platform := query.Get("platform"); platform != "" {
			p := domain.Platform(platform)
			if !p.Valid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida: "+platform, nil)
				return
			}
			filter.Platform = &p
		}

		if filterStatus := query.Get("status"); filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				filter.Status = append(filter.Status, domain.AdAccountStatus(strings.TrimSpace(status)))
			}
		}

		adAccounts, err := service.ListAccounts(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, adAccounts)
	})
}

func UpdateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAdAccount")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var updateRequest domain.UpdateAdAccountRequest
		if !decodeBody(w, r, &updateRequest) {
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")
		updateRequest.TenantID = tenant

		resp, err := service.UpdateAccount(r.Context(), &updateRequest)
		if err != nil {
			writeServiceError(w, err, "Erro interno ao atualizar conta")
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func DeleteAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAdAccount")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteAccount(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao remover conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
