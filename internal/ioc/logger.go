package ioc

import (
	"go-email-template/internal/pkg/logger"
	"go.uber.org/zap"
)

func InitLogger() logger.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger.NewZapLogger(l)
}
