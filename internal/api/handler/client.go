package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/account"
)

func ListClients(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		clients, err := service.ListClients(r.Context(), tenant)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

func CreateClient(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var client domain.Client
		if !decodeBody(w, r, &client) {
			return
		}
		client.TenantID = tenant

		created, err := service.CreateClient(r.Context(), &client)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateClient(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateClientRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")
		req.TenantID = tenant

		client, err := service.UpdateClient(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, http.StatusOK, client)
	}
}

func DeleteClient(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteClient(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao remover cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
