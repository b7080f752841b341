package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultReportProductName = "Campanha"

type Report struct {
	ID              string          `json:"id"`
	TenantID        int             `json:"tenant_id"`
	AccountID       string          `json:"account_id"`
	Title           string          `json:"title"`
	Message         string          `json:"message"`
	ProductName     string          `json:"product_name"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	MessagesCount   int64           `json:"messages_count"`
	CostPerMessage  decimal.Decimal `json:"cost_per_message"`
	IsRead          bool            `json:"is_read"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ReportFilter struct {
	TenantID   int
	AccountID  *string
	UnreadOnly bool
	Limit      uint64
}

type GenerateReportRequest struct {
	ProductName string   `json:"productName"`
	PeriodDays  int      `json:"periodDays"`
	AccountIDs  []string `json:"accountIds,omitempty"`
}

type ReportResult struct {
	AccountID   string  `json:"accountId"`
	AccountName string  `json:"accountName"`
	Success     bool    `json:"success"`
	ReportID    *string `json:"reportId,omitempty"`
	Error       *string `json:"error,omitempty"`
}

type ReportSummary struct {
	TotalAccounts int `json:"totalAccounts"`
	SuccessCount  int `json:"successCount"`
	ErrorCount    int `json:"errorCount"`
}

type GenerateReportResult struct {
	Summary ReportSummary  `json:"summary"`
	Results []ReportResult `json:"results"`
}
