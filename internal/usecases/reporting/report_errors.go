package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod   = errors.New("o período do relatório deve ser maior que zero")
	ErrFetchAccounts   = errors.New("erro ao buscar contas para o relatório")
	ErrAccountNotFound = errors.New("conta não encontrada")
	ErrReportNotFound  = errors.New("relatório não encontrado")
	ErrDatabase        = errors.New("erro de banco de dados ao processar relatórios")
)

type ReportError struct {
	Err      error
	Code     string
	ReportID string
	Details  string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func (e *ReportError) APICode() string {
	return e.Code
}

func NewReportError(err error, code string, reportID string, details string) *ReportError {
	return &ReportError{
		Err:      err,
		Code:     code,
		ReportID: reportID,
		Details:  details,
	}
}
