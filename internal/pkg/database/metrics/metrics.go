package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const (
	summaryMaxAgeMinutes  = 5
	summaryP50ErrorMargin = 0.05
	summaryP90ErrorMargin = 0.01
	summaryP99ErrorMargin = 0.001
)

// GormMetricsPlugin 按操作和表维度上报数据库请求量、耗时与错误数
type GormMetricsPlugin struct {
	requestCount *prometheus.CounterVec
	responseTime *prometheus.SummaryVec
	errorCount   *prometheus.CounterVec
}

func NewGormMetricsPlugin() *GormMetricsPlugin {
	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gorm",
			Name:      "requests_total",
			Help:      "Total number of GORM database operations.",
		},
		[]string{"operation", "table"},
	)

	responseTime := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "gorm",
			Name:      "response_time_seconds",
			Help:      "Response time of GORM database operations in seconds.",
			Objectives: map[float64]float64{
				0.5:  summaryP50ErrorMargin,
				0.9:  summaryP90ErrorMargin,
				0.99: summaryP99ErrorMargin,
			},
			MaxAge: time.Minute * summaryMaxAgeMinutes,
		},
		[]string{"operation", "table", "status"},
	)

	errorCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gorm",
			Name:      "errors_total",
			Help:      "Total number of GORM database operation errors.",
		},
		[]string{"operation", "table"},
	)

	prometheus.DefaultRegisterer.MustRegister(requestCount, responseTime, errorCount)

	return &GormMetricsPlugin{
		requestCount: requestCount,
		responseTime: responseTime,
		errorCount:   errorCount,
	}
}

func (g *GormMetricsPlugin) Name() string {
	return "GormMetricsPlugin"
}

// Initialize 注册GORM回调
func (g *GormMetricsPlugin) Initialize(db *gorm.DB) error {
	// 查询操作
	if err := db.Callback().Query().Before("gorm:query").Register("metrics:before_query", g.beforeFn("select")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:after_query", g.after); err != nil {
		return err
	}

	// 创建操作
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:before_create", g.beforeFn("insert")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("metrics:after_create", g.after); err != nil {
		return err
	}

	// 更新操作
	if err := db.Callback().Update().Before("gorm:update").Register("metrics:before_update", g.beforeFn("update")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("metrics:after_update", g.after); err != nil {
		return err
	}

	// 删除操作
	if err := db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", g.beforeFn("delete")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", g.after); err != nil {
		return err
	}

	// 原始SQL操作
	if err := db.Callback().Raw().Before("gorm:raw").Register("metrics:before_raw", g.beforeFn("raw")); err != nil {
		return err
	}
	if err := db.Callback().Raw().After("gorm:raw").Register("metrics:after_raw", g.after); err != nil {
		return err
	}
	return nil
}

func (g *GormMetricsPlugin) beforeFn(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		g.before(db, operation)
	}
}

func (g *GormMetricsPlugin) before(db *gorm.DB, operation string) {
	table := db.Statement.Table
	if table == "" {
		table = "unknown"
	}
	g.requestCount.WithLabelValues(operation, table).Inc()
	db.Set("metrics:start_time", time.Now())
	db.Set("metrics:operation", operation)
	db.Set("metrics:table", table)
}

func (g *GormMetricsPlugin) after(db *gorm.DB) {
	start, ok := db.Get("metrics:start_time")
	if !ok {
		return
	}
	startTime, ok := start.(time.Time)
	if !ok {
		return
	}
	operation, _ := db.Get("metrics:operation")
	table, _ := db.Get("metrics:table")
	op, _ := operation.(string)
	tbl, _ := table.(string)

	status := "success"
	if db.Error != nil {
		status = "error"
		g.errorCount.WithLabelValues(op, tbl).Inc()
	}
	g.responseTime.WithLabelValues(op, tbl, status).Observe(time.Since(startTime).Seconds())
}
