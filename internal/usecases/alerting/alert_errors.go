package alerting

import (
	"errors"
	"fmt"
)

var (
	ErrFetchAccounts = errors.New("erro ao buscar contas para verificação de alertas")
	ErrAlertNotFound = errors.New("alerta não encontrado")
	ErrDatabase      = errors.New("erro de banco de dados ao processar alertas")
)

type AlertError struct {
	Err     error
	Code    string
	AlertID string
	Details string
}

func (e *AlertError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AlertError) Unwrap() error {
	return e.Err
}

func (e *AlertError) APICode() string {
	return e.Code
}

func NewAlertError(err error, code string, alertID string, details string) *AlertError {
	return &AlertError{
		Err:     err,
		Code:    code,
		AlertID: alertID,
		Details: details,
	}
}
