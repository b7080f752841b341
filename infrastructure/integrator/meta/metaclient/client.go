package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-balance-monitor/internal/config"
	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks
type Client interface {
	ListAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	ListBusinesses(ctx context.Context, accessToken string) ([]metadomain.Business, error)
	ListOwnedAdAccounts(ctx context.Context, accessToken, businessID string) ([]metadomain.AdAccount, error)
	GetFunding(ctx context.Context, accessToken, accountID string) (*metadomain.AdAccountFunding, error)
	GetSpendLimits(ctx context.Context, accessToken, accountID string) (*metadomain.AdAccountSpendLimits, error)
	GetSpend(ctx context.Context, accessToken, accountID, datePreset string) (float64, error)
	ExchangeToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
}

type MetaClient struct {
	cfg        config.Meta
	httpClient *http.Client
}

func NewClient(cfg config.Meta) *MetaClient {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// endpoint monta a URL versionada da Graph API para o caminho informado
func (c *MetaClient) endpoint(path string, params url.Values) string {
	return fmt.Sprintf("%s/%s?%s", c.cfg.URL, path, params.Encode())
}

func (c *MetaClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(redactURLError(err), "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(redactURLError(err), "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar JSON")
	}

	return nil
}

// redactURLError remove a query string das URLs carregadas por *url.Error.
// A Graph API recebe access_token e client_secret na query, e esses erros
// acabam em logs e nas respostas da API.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "[url omitida]"
	}

	parsed.RawQuery = ""
	parsed.Fragment = ""
	parsed.User = nil
	return parsed.String()
}

// HandleResponse devolve o corpo das respostas 2xx. Erros de sessão da Graph API
// são convertidos em domain.ErrTokenExpired.
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Code != 0 {
		if errorResp.IsTokenExpired() {
			logrus.WithFields(logrus.Fields{
				"code":    errorResp.Error.Code,
				"subcode": errorResp.Error.ErrorSubcode,
			}).Warn("Token expirado detectado pela API Meta")
			return nil, errors.Wrap(domain.ErrTokenExpired, errorResp.String())
		}

		return nil, errors.Errorf("erro na API do Meta. Status: %d, Erro: %s", resp.StatusCode, errorResp.String())
	}

	return nil, errors.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

// fetchAll percorre paging.next até o fim, acumulando todas as páginas.
// Qualquer falha no meio descarta o resultado parcial.
func fetchAll[T any](ctx context.Context, c *MetaClient, firstURL string) ([]T, error) {
	maxPages := c.cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 200
	}

	items := make([]T, 0)
	next := firstURL
	for page := 0; next != ""; page++ {
		if page >= maxPages {
			return nil, errors.Errorf("paginação interrompida após %d páginas", maxPages)
		}

		var resp metadomain.Page[T]
		if err := c.getJSON(ctx, next, &resp); err != nil {
			return nil, errors.Wrapf(err, "erro ao buscar página %d", page+1)
		}

		items = append(items, resp.Data...)
		next = resp.Paging.Next
	}

	return items, nil
}

func (c *MetaClient) listParams(accessToken, fields string) url.Values {
	params := url.Values{}
	params.Add("fields", fields)
	params.Add("access_token", accessToken)
	if c.cfg.PageLimit > 0 {
		params.Add("limit", fmt.Sprint(c.cfg.PageLimit))
	}
	return params
}
