package ioc

import (
	"github.com/spf13/viper"
	"go-email-template/internal/pkg/database/metrics"
	"go-email-template/internal/pkg/database/tracing"
	"go-email-template/internal/repository/dao"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	type Config struct {
		DSN string `yaml:"dsn"`
	}
	cfg := Config{
		// 本地开发默认值
		DSN: "root:root@tcp(localhost:3306)/email_template?charset=utf8mb4&parseTime=True&loc=Local",
	}
	err := viper.UnmarshalKey("db.mysql", &cfg)
	if err != nil {
		panic(err)
	}
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
		panic(err)
	}
	if err := db.Use(metrics.NewGormMetricsPlugin()); err != nil {
		panic(err)
	}

	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
