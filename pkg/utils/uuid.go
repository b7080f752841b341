package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os ids curtos usados em contas e clientes
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// NewUUID gera os ids de alertas, relatórios e webhooks
func NewUUID() string {
	return uuid.NewString()
}
