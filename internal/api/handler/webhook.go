package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/webhooking"
)

func ListWebhooks(service webhooking.WebhookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		webhooks, err := service.ListWebhooks(r.Context(), tenant)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar webhooks")
			return
		}

		writeJSON(w, http.StatusOK, webhooks)
	}
}

func CreateWebhook(service webhooking.WebhookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		webhook := domain.WebhookIntegration{IsActive: true}
		if !decodeBody(w, r, &webhook) {
			return
		}
		webhook.TenantID = tenant

		created, err := service.CreateWebhook(r.Context(), &webhook)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar webhook")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateWebhook(service webhooking.WebhookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateWebhookRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")
		req.TenantID = tenant

		webhook, err := service.UpdateWebhook(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar webhook")
			return
		}

		writeJSON(w, http.StatusOK, webhook)
	}
}

func DeleteWebhook(service webhooking.WebhookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteWebhook(r.Context(), tenant, id); err != nil {
			writeServiceError(w, err, "Erro ao remover webhook")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
