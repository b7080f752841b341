package discovering

import (
	"errors"
	"fmt"

	"github.com/vfg2006/traffic-balance-monitor/internal/domain"
)

var (
	ErrMissingCredential     = errors.New("credenciais da plataforma ausentes")
	ErrPlatformNotConfigured = domain.ErrPlatformNotConfigured
	ErrNoAccountsFound       = errors.New("nenhuma conta de anúncio encontrada")
	ErrPlatformRequest       = errors.New("erro ao consultar a plataforma de anúncios")
	ErrPlatformToken         = domain.ErrTokenExpired
	ErrSaveAccounts          = errors.New("erro ao salvar contas descobertas")
	ErrGenerateID            = errors.New("erro ao gerar id da conta")
)

// ConnectError carrega o código de API da falha de conexão
type ConnectError struct {
	Err      error
	Code     string
	Platform domain.Platform
	Details  string
}

func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func (e *ConnectError) APICode() string {
	return e.Code
}

func NewConnectError(err error, code string, platform domain.Platform, details string) *ConnectError {
	return &ConnectError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
