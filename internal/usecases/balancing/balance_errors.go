package balancing

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound   = errors.New("conta não encontrada")
	ErrFetchAccounts     = errors.New("erro ao buscar contas no banco de dados")
	ErrUnsupported       = errors.New("plataforma não suportada")
	ErrMissingToken      = errors.New("conta sem token de acesso")
	ErrMissingCredential = errors.New("conta sem credenciais para renovar o token")
	ErrManagerAccount    = errors.New("conta gerenciadora não possui saldo próprio")
	ErrTokenRefresh      = errors.New("falha ao renovar token de acesso")
	ErrFetchBalance      = errors.New("falha ao buscar saldo na plataforma")
	ErrUpdateBalance     = errors.New("falha ao salvar saldo")
)

// SyncError é devolvido quando a sincronização nem chega a começar
type SyncError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func (e *SyncError) APICode() string {
	return e.Code
}

func NewSyncError(err error, code string, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSyncErrorWithID(err error, code string, accountID string, details string) *SyncError {
	return &SyncError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
