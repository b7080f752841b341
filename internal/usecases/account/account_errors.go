package account

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de contas e clientes
var (
	// Erros de validação
	ErrAccountIDRequired  = errors.New("account ID is required")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidThreshold   = errors.New("o limite de alerta não pode ser negativo")
	ErrInvalidStatus      = errors.New("status de conta inválido")
	ErrClientNotFound     = errors.New("client not found")
	ErrClientNameRequired = errors.New("o nome do cliente é obrigatório")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrUpdateAccount     = errors.New("error updating account")
	ErrFetchAccounts     = errors.New("error fetching accounts from database")

	ErrGenerateID = errors.New("error generating ID")
)

// AccountError é um erro com contexto adicional para contas
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

func (e *AccountError) APICode() string {
	return e.Code
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAccountErrorWithID cria um novo AccountError com o ID da conta ou do cliente
func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
