package ioc

import (
	"github.com/gin-gonic/gin"
	"go-email-template/internal/pkg/database/monitor"
	"go-email-template/internal/pkg/ginx"
	"go-email-template/internal/pkg/logger"
	"go-email-template/internal/repository"
	"go-email-template/internal/repository/dao"
	"go-email-template/internal/service/template/manage"
	"go-email-template/internal/service/template/resolve"
	healthweb "go-email-template/internal/web/health"
	templateweb "go-email-template/internal/web/template"
	"gorm.io/gorm"
)

type App struct {
	WebServer *gin.Engine
}

// InitApp 组装整个服务
func InitApp() *App {
	l := InitLogger()
	// tracer provider 要先于 DB 初始化，gorm 的 tracing 插件取的是全局 provider
	InitZipkinTracer()
	db := InitDB()
	idGen := InitIDGenerator()

	templateRepo := initTemplateRepository(db)
	businessRepo := repository.NewBusinessRepository(dao.NewBusinessDAO(db))

	manageSvc := manage.NewEmailTemplateService(templateRepo, businessRepo, InitAssetStore(), idGen.NextID, l)
	resolveSvc := resolve.NewService(templateRepo, businessRepo)

	handler := templateweb.NewHandler(manageSvc, resolveSvc, InitJwtBuilder().Middleware())
	healthHandler := healthweb.NewHandler(initDBMonitor(db, l))
	server := InitWebServer([]ginx.Handler{handler, healthHandler})

	return &App{WebServer: server}
}

func initDBMonitor(db *gorm.DB, l logger.Logger) monitor.DBMonitor {
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	return monitor.NewHeartbeatDBMonitor(sqlDB, l)
}

func initTemplateRepository(db *gorm.DB) repository.EmailTemplateRepository {
	return repository.NewEmailTemplateRepository(
		dao.NewGlobalTemplateDAO(db),
		dao.NewGroupTemplateDAO(db),
		dao.NewBusinessTemplateDAO(db),
	)
}
