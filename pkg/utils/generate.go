package utils

import (
	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}
