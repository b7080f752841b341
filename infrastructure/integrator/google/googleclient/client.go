package googleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	googledomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/google/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks
type Client interface {
	RefreshAccessToken(ctx context.Context, credential *domain.Credential) (*oauth2.Token, error)
	ListAccessibleCustomers(ctx context.Context, accessToken string) ([]string, error)
	Search(ctx context.Context, accessToken, customerID, loginCustomerID, query string) ([]googledomain.Row, error)
}

type GoogleClient struct {
	cfg        config.Google
	httpClient *http.Client
}

func NewClient(cfg config.Google) *GoogleClient {
	return &GoogleClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// RefreshAccessToken troca o refresh token da credencial por um novo access token
func (c *GoogleClient) RefreshAccessToken(ctx context.Context, credential *domain.Credential) (*oauth2.Token, error) {
	if !credential.IsComplete() {
		return nil, errors.New("credencial incompleta: refresh_token, client_id e client_secret são obrigatórios")
	}

	conf := &oauth2.Config{
		ClientID:     credential.ClientID,
		ClientSecret: credential.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: credential.RefreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
			return nil, errors.Wrap(domain.ErrTokenExpired, "refresh token revogado ou expirado")
		}
		return nil, errors.Wrap(err, "erro ao renovar access token do Google")
	}

	return token, nil
}

func (c *GoogleClient) ListAccessibleCustomers(ctx context.Context, accessToken string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.AdsURL+"/customers:listAccessibleCustomers", nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	c.setHeaders(req, accessToken, "")

	var resp googledomain.ListAccessibleCustomersResponse
	if err := c.do(req, &resp); err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes acessíveis")
	}

	ids := make([]string, 0, len(resp.ResourceNames))
	for _, name := range resp.ResourceNames {
		ids = append(ids, strings.TrimPrefix(name, "customers/"))
	}

	return ids, nil
}

// Search executa uma consulta GAQL seguindo nextPageToken até a última página
func (c *GoogleClient) Search(ctx context.Context, accessToken, customerID, loginCustomerID, query string) ([]googledomain.Row, error) {
	maxPages := c.cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 200
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.AdsURL, NormalizeCustomerID(customerID))
	rows := make([]googledomain.Row, 0)
	pageToken := ""

	for page := 0; ; page++ {
		if page >= maxPages {
			return nil, errors.Errorf("paginação interrompida após %d páginas", maxPages)
		}

		body, err := json.Marshal(googledomain.SearchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar consulta")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "erro ao criar a requisição")
		}
		c.setHeaders(req, accessToken, loginCustomerID)
		req.Header.Set("Content-Type", "application/json")

		var resp googledomain.SearchResponse
		if err := c.do(req, &resp); err != nil {
			return nil, errors.Wrapf(err, "erro na consulta do cliente %s (página %d)", customerID, page+1)
		}

		rows = append(rows, resp.Results...)
		if resp.NextPageToken == "" {
			return rows, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *GoogleClient) setHeaders(req *http.Request, accessToken, loginCustomerID string) {
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if loginCustomerID != "" {
		req.Header.Set("login-customer-id", NormalizeCustomerID(loginCustomerID))
	}
}

func (c *GoogleClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errorResp googledomain.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Code != 0 {
			if errorResp.IsUnauthenticated() {
				logrus.WithField("status", errorResp.Error.Status).Warn("Token expirado detectado pela API do Google Ads")
				return errors.Wrap(domain.ErrTokenExpired, errorResp.Error.Message)
			}
			return errors.Errorf("erro na API do Google Ads. Status: %d, Erro: %s (%s)", resp.StatusCode, errorResp.Error.Message, errorResp.Error.Status)
		}
		return errors.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

// NormalizeCustomerID remove os hífens de ids no formato 123-456-7890
func NormalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimPrefix(id, "customers/"), "-", "")
}
