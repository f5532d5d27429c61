package utils

import (
	"schedboard-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateDraftID() string {
	return uuid.NewString()
}
