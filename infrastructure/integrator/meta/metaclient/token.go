package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

// DefaultLongLivedTTL é a validade usual de um token de longa duração do Meta
const DefaultLongLivedTTL = 60 * 24 * time.Hour

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeToken troca um token de curta duração por um de longa duração
func (c *MetaClient) ExchangeToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, errors.New("token de acesso não pode ser vazio")
	}

	if !c.cfg.HasAppCredentials() {
		return nil, errors.Wrap(domain.ErrPlatformNotConfigured, "META_APP_ID e META_APP_SECRET são obrigatórios")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.cfg.AppID)
	params.Add("client_secret", c.cfg.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	var tokenResp TokenResponse
	if err := c.getJSON(ctx, c.endpoint("oauth/access_token", params), &tokenResp); err != nil {
		return nil, errors.Wrap(err, "erro ao obter token de longa duração")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token retornado pela API é vazio")
	}

	logrus.Infof("Token de longa duração obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// CalculateTokenExpiration calcula a expiração a partir do expires_in retornado.
// Sem expires_in, assume a validade padrão de um token de longa duração.
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return now.Add(DefaultLongLivedTTL)
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}
