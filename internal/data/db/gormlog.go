package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/ctxutil"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

// gormZap routes gorm's statement log through the service logger.
type gormZap struct {
	log   *logger.Logger
	level gormLogger.LogLevel
	slow  time.Duration
}

func NewGormLogger(log *logger.Logger, slow time.Duration) gormLogger.Interface {
	if slow <= 0 {
		slow = time.Second
	}
	return &gormZap{log: log.With("component", "gorm"), level: gormLogger.Warn, slow: slow}
}

func (g *gormZap) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *g
	cp.level = level
	return &cp
}

func (g *gormZap) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Info {
		g.log.Info(fmt.Sprintf(msg, args...), ctxutil.LogFields(ctx)...)
	}
}

func (g *gormZap) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Warn {
		g.log.Warn(fmt.Sprintf(msg, args...), ctxutil.LogFields(ctx)...)
	}
}

func (g *gormZap) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Error {
		g.log.Error(fmt.Sprintf(msg, args...), ctxutil.LogFields(ctx)...)
	}
}

func (g *gormZap) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.Error("sql error", append(ctxutil.LogFields(ctx), "error", err, "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())...)
	case elapsed > g.slow && g.level >= gormLogger.Warn:
		sql, rows := fc()
		g.log.Warn("slow sql", append(ctxutil.LogFields(ctx), "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())...)
	case g.level >= gormLogger.Info:
		sql, rows := fc()
		g.log.Debug("sql", append(ctxutil.LogFields(ctx), "sql", sql, "rows", rows, "elapsed_ms", elapsed.Milliseconds())...)
	}
}
