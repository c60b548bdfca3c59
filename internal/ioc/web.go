package ioc

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go-email-template/internal/pkg/ginx"
	"go-email-template/internal/web/jwt"
)

func InitJwtBuilder() *jwt.Builder {
	type Config struct {
		Key string `yaml:"key"`
	}
	var cfg Config
	if err := viper.UnmarshalKey("jwt", &cfg); err != nil {
		panic(err)
	}
	if cfg.Key == "" {
		panic("jwt.key 未配置")
	}
	return jwt.NewBuilder(cfg.Key)
}

func InitWebServer(handlers []ginx.Handler) *gin.Engine {
	server := gin.Default()
	for _, h := range handlers {
		h.PublicRoutes(server)
		h.PrivateRoutes(server)
	}
	return server
}
