package googledomain

// Os campos int64 da API REST do Google Ads chegam como strings no JSON

const (
	StatusEnabled  = "ENABLED"
	StatusApproved = "APPROVED"
)

type Customer struct {
	ResourceName    string `json:"resourceName"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	Manager         bool   `json:"manager"`
	CurrencyCode    string `json:"currencyCode"`
	Status          string `json:"status"`
}

type CustomerClient struct {
	ResourceName    string `json:"resourceName"`
	ClientCustomer  string `json:"clientCustomer"`
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	Manager         bool   `json:"manager"`
	CurrencyCode    string `json:"currencyCode"`
	Status          string `json:"status"`
	Level           string `json:"level"`
}

type AccountBudget struct {
	ResourceName                string `json:"resourceName"`
	ID                          string `json:"id"`
	Status                      string `json:"status"`
	ApprovedSpendingLimitMicros string `json:"approvedSpendingLimitMicros"`
	AmountServedMicros          string `json:"amountServedMicros"`
	ApprovedStartDateTime       string `json:"approvedStartDateTime"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName"`
	AmountMicros string `json:"amountMicros"`
	Status       string `json:"status"`
}

type Metrics struct {
	CostMicros string `json:"costMicros"`
}

// Row é uma linha de resultado do googleAds:search; só os recursos
// selecionados na consulta vêm preenchidos
type Row struct {
	Customer       *Customer       `json:"customer,omitempty"`
	CustomerClient *CustomerClient `json:"customerClient,omitempty"`
	AccountBudget  *AccountBudget  `json:"accountBudget,omitempty"`
	CampaignBudget *CampaignBudget `json:"campaignBudget,omitempty"`
	Metrics        *Metrics        `json:"metrics,omitempty"`
}

type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type SearchResponse struct {
	Results       []Row  `json:"results"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

// ErrorResponse segue o formato google.rpc.Status devolvido pela API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == 401
}
