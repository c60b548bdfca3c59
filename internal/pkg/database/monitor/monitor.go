package monitor

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"

	"go-email-template/internal/pkg/logger"
)

const (
	pingTimeout         = 5 * time.Second
	checkInterval       = 1 * time.Second
	defaultFailCount    = 3
	defaultSuccessCount = 3
)

// DBMonitor 数据库存活状态，供就绪探针使用
type DBMonitor interface {
	Health() bool
}

// Heartbeat 周期性 Ping 数据库，连续失败若干次判定不健康，
// 连续成功若干次再恢复，避免状态抖动。
type Heartbeat struct {
	db             *sql.DB
	log            logger.Logger
	health         *atomic.Bool
	failCounter    *atomic.Int32
	successCounter *atomic.Int32
}

func NewHeartbeatDBMonitor(db *sql.DB, log logger.Logger) *Heartbeat {
	he := &atomic.Bool{}
	he.Store(true)

	h := &Heartbeat{
		db:             db,
		log:            log,
		health:         he,
		failCounter:    &atomic.Int32{},
		successCounter: &atomic.Int32{},
	}
	go h.healthCheck(context.Background())
	return h
}

func (h *Heartbeat) Health() bool {
	return h.health.Load()
}

func (h *Heartbeat) healthCheck(ctx context.Context) {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			timeoutCtx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := h.healthOneLoop(timeoutCtx)
			cancel()
			if err != nil {
				h.log.Error("数据库健康检查失败", logger.Error(err))
			}
		}
	}
}

func (h *Heartbeat) healthOneLoop(ctx context.Context) error {
	err := h.db.PingContext(ctx)
	if err != nil {
		// 失败时重置成功计数，连续失败达到阈值才翻转状态
		h.successCounter.Store(0)
		if h.failCounter.Add(1) >= defaultFailCount {
			h.health.Store(false)
			h.failCounter.Store(0)
		}
		return err
	}
	h.failCounter.Store(0)
	if h.successCounter.Add(1) >= defaultSuccessCount {
		h.health.Store(true)
		h.successCounter.Store(0)
	}
	return nil
}
