package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/usecases/discovering"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
)

type ConnectMetaRequest struct {
	AccessToken string `json:"access_token"`
}

type ConnectGoogleRequest struct {
	RefreshToken string `json:"refresh_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func ConnectMeta(service discovering.DiscoveringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConnectMeta")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var req ConnectMetaRequest
		if !decodeBody(w, r, &req) {
			return
		}

		accessToken := strings.TrimSpace(req.AccessToken)
		if accessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "access_token é obrigatório", nil)
			return
		}

		result, err := service.ConnectMeta(r.Context(), tenant, accessToken)
		if err != nil {
			writeServiceError(w, err, "Erro ao conectar contas do Meta")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func ConnectGoogle(service discovering.DiscoveringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ConnectGoogle")

		tenant, ok := tenantID(w, r)
		if !ok {
			return
		}

		var req ConnectGoogleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		credential := &domain.Credential{
			RefreshToken: strings.TrimSpace(req.RefreshToken),
			ClientID:     strings.TrimSpace(req.ClientID),
			ClientSecret: strings.TrimSpace(req.ClientSecret),
		}
		if !credential.IsComplete() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "refresh_token, client_id e client_secret são obrigatórios", nil)
			return
		}

		result, err := service.ConnectGoogle(r.Context(), tenant, credential)
		if err != nil {
			writeServiceError(w, err, "Erro ao conectar contas do Google Ads")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
