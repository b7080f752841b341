package webhooking

import (
	"errors"
	"fmt"
)

var (
	ErrNameRequired    = errors.New("o nome do webhook é obrigatório")
	ErrInvalidURL      = errors.New("URL do webhook inválida")
	ErrNoTrigger       = errors.New("o webhook deve ter ao menos um evento habilitado")
	ErrWebhookNotFound = errors.New("webhook não encontrado")
	ErrDatabase        = errors.New("erro de banco de dados ao processar webhooks")
)

type WebhookError struct {
	Err       error
	Code      string
	WebhookID string
	Details   string
}

func (e *WebhookError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *WebhookError) Unwrap() error {
	return e.Err
}

func (e *WebhookError) APICode() string {
	return e.Code
}

func NewWebhookError(err error, code string, webhookID string, details string) *WebhookError {
	return &WebhookError{
		Err:       err,
		Code:      code,
		WebhookID: webhookID,
		Details:   details,
	}
}
