package notification

import (
	"time"

	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

// Event é o que o dispatcher entrega aos webhooks: o tipo decide quais
// integrações recebem e o payload é serializado como corpo do POST
type Event struct {
	Type    domain.EventType
	Payload any
}

type AlertBody struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

type LowBalanceAccount struct {
	Name       string          `json:"name"`
	Platform   domain.Platform `json:"platform"`
	Balance    string          `json:"balance"`
	MinBalance float64         `json:"min_balance"`
}

type LowBalancePayload struct {
	Type    domain.EventType  `json:"type"`
	Alert   AlertBody         `json:"alert"`
	Account LowBalanceAccount `json:"account"`
}

type TokenExpiryAccount struct {
	Name           string          `json:"name"`
	Platform       domain.Platform `json:"platform"`
	TokenExpiresAt *time.Time      `json:"token_expires_at"`
}

type TokenExpiryPayload struct {
	Type    domain.EventType   `json:"type"`
	Alert   AlertBody          `json:"alert"`
	Account TokenExpiryAccount `json:"account"`
}

type ReportBody struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	ProductName     string    `json:"product_name"`
	TotalInvestment float64   `json:"total_investment"`
	MessagesCount   int64     `json:"messages_count"`
	CostPerMessage  float64   `json:"cost_per_message"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReportPayload struct {
	Type   domain.EventType `json:"type"`
	Report ReportBody       `json:"report"`
}

func alertBody(alert *domain.Alert) AlertBody {
	return AlertBody{
		Title:   alert.Title,
		Message: alert.Message,
		SentAt:  alert.SentAt,
	}
}

func NewLowBalanceEvent(alert *domain.Alert, account *domain.AdAccount) Event {
	return Event{
		Type: domain.EventLowBalance,
		Payload: LowBalancePayload{
			Type:  domain.EventLowBalance,
			Alert: alertBody(alert),
			Account: LowBalanceAccount{
				Name:       account.Name,
				Platform:   account.Platform,
				Balance:    account.FormattedBalance(),
				MinBalance: account.Threshold(),
			},
		},
	}
}

func NewTokenExpiryEvent(alert *domain.Alert, account *domain.AdAccount) Event {
	return Event{
		Type: domain.EventTokenExpiry,
		Payload: TokenExpiryPayload{
			Type:  domain.EventTokenExpiry,
			Alert: alertBody(alert),
			Account: TokenExpiryAccount{
				Name:           account.Name,
				Platform:       account.Platform,
				TokenExpiresAt: account.TokenExpiresAt,
			},
		},
	}
}

func NewReportEvent(report *domain.Report) Event {
	return Event{
		Type: domain.EventAccountReport,
		Payload: ReportPayload{
			Type: domain.EventAccountReport,
			Report: ReportBody{
				ID:              report.ID,
				Title:           report.Title,
				Message:         report.Message,
				ProductName:     report.ProductName,
				TotalInvestment: report.TotalInvestment.InexactFloat64(),
				MessagesCount:   report.MessagesCount,
				CostPerMessage:  report.CostPerMessage.InexactFloat64(),
				PeriodStart:     report.PeriodStart,
				PeriodEnd:       report.PeriodEnd,
				CreatedAt:       report.CreatedAt,
			},
		},
	}
}
