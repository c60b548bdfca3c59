package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const spanKey = "tracing:span"

// GormTracingPlugin 为每次数据库操作开一个span，挂在请求的trace下
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.Tracer("gorm"),
	}
}

func (g *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (g *GormTracingPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("tracing:before_query", g.beforeFn("select")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("tracing:after_query", g.after); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("tracing:before_create", g.beforeFn("insert")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("tracing:after_create", g.after); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("tracing:before_update", g.beforeFn("update")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("tracing:after_update", g.after); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("tracing:before_delete", g.beforeFn("delete")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("tracing:after_delete", g.after); err != nil {
		return err
	}
	return nil
}

func (g *GormTracingPlugin) beforeFn(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx, span := g.tracer.Start(db.Statement.Context, "gorm."+operation,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.operation", operation),
				attribute.String("db.table", db.Statement.Table),
			),
		)
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (g *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.Get(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	if db.Error != nil {
		span.SetStatus(codes.Error, db.Error.Error())
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.RowsAffected))
	span.End()
}
