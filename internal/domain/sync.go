package domain

type SyncAccountResult struct {
	AccountID   string   `json:"accountId"`
	AccountName string   `json:"accountName"`
	Success     bool     `json:"success"`
	Balance     *string  `json:"balance,omitempty"`
	DailySpend  *float64 `json:"dailySpend,omitempty"`
	Error       *string  `json:"error,omitempty"`
}

type SyncResult struct {
	Results []SyncAccountResult `json:"results"`
}

// Succeeded conta quantas contas foram sincronizadas com sucesso
func (r *SyncResult) Succeeded() int {
	total := 0
	for _, result := range r.Results {
		if result.Success {
			total++
		}
	}
	return total
}

type ConnectResult struct {
	Accounts []*AdAccountResponse `json:"accounts"`
	Message  string               `json:"message"`
	Errors   []DiscoveryError     `json:"errors,omitempty"`
}
