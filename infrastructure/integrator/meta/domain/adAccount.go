package metadomain

// Estados de conta retornados pela Graph API em account_status
const (
	AccountStatusActive        = 1
	AccountStatusDisabled      = 2
	AccountStatusUnsettled     = 3
	AccountStatusPendingReview = 7
	AccountStatusInGracePeriod = 9
	AccountStatusClosed        = 101
)

type AdAccount struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	Name          string    `json:"name"`
	AccountStatus int       `json:"account_status"`
	Currency      string    `json:"currency"`
	Business      *Business `json:"business,omitempty"`
}

// IsActive considera ativas as contas que ainda podem veicular anúncios
func (a *AdAccount) IsActive() bool {
	return IsActiveStatus(a.AccountStatus)
}

func IsActiveStatus(status int) bool {
	return status == AccountStatusActive || status == AccountStatusInGracePeriod
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FundingSourceDetails descreve a forma de pagamento; contas pré-pagas trazem o
// saldo disponível em display_string, por exemplo "Saldo disponível (R$3.890,75 BRL)"
type FundingSourceDetails struct {
	ID            string `json:"id"`
	DisplayString string `json:"display_string"`
	Type          int    `json:"type"`
}

type AdAccountFunding struct {
	ID                   string                `json:"id"`
	AccountStatus        int                   `json:"account_status"`
	Currency             string                `json:"currency"`
	FundingSourceDetails *FundingSourceDetails `json:"funding_source_details,omitempty"`
}

// AdAccountSpendLimits traz os valores em centavos, como strings
type AdAccountSpendLimits struct {
	ID            string `json:"id"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	SpendCap      string `json:"spend_cap"`
	AmountSpent   string `json:"amount_spent"`
	Balance       string `json:"balance"`
}

type Insight struct {
	Spend     string `json:"spend"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}
