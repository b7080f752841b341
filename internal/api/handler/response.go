package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/pkg/apiErrors"
	"github.com/vfg2006/traffic-balance-monitor/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// codedError é implementado pelos erros tipados dos casos de uso
type codedError interface {
	error
	APICode() string
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz o erro de um caso de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var coded codedError
	if errors.As(err, &coded) {
		apiErrors.WriteError(w, coded.APICode(), coded.Error(), nil)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

// decodeOptionalBody aceita corpo ausente, inclusive em requisições chunked
// sem Content-Length
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return true
	}

	err := json.NewDecoder(r.Body).Decode(out)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
	return false
}

// tenantID extrai o tenant do usuário autenticado; escreve 401 quando ausente
func tenantID(w http.ResponseWriter, r *http.Request) (int, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}
	return claims.TenantID(), true
}
