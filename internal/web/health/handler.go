package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-email-template/internal/pkg/database/monitor"
)

// Handler 就绪探针，数据库持续探活失败时返回 503
type Handler struct {
	dbMonitor monitor.DBMonitor
}

func NewHandler(dbMonitor monitor.DBMonitor) *Handler {
	return &Handler{dbMonitor: dbMonitor}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/healthz", func(ctx *gin.Context) {
		if !h.dbMonitor.Health() {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}
