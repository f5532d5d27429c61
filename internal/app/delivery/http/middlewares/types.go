package middlewares

import (
	"go.uber.org/zap"

	"schedboard-service/internal/app/config"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{Log: log, InternalConfig: internalConfig}
}
