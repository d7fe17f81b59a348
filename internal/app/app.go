package app

import (
	"context"
	"database/sql"
	"errors"

	"salary-bench/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
	writer *kafka.Writer
}

// connect opens the database and, when withStores is set, redis and the
// kafka writer for whichever of them is configured. There is exactly one
// attempt at each.
func connect(ctx context.Context, cfg Config, withStores bool) (*infrastructure, error) {
	gormDB, err := connection.ConnectGORM(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	infra := &infrastructure{gormDB: gormDB, sqlDB: sqlDB}
	if !withStores {
		return infra, nil
	}

	rdb, err := connection.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	infra.rdb = rdb
	infra.writer = connection.NewKafkaWriter(cfg.KafkaBroker)

	return infra, nil
}

func (i *infrastructure) Close() error {
	var errs []error
	if i.writer != nil {
		errs = append(errs, i.writer.Close())
	}
	if i.rdb != nil {
		errs = append(errs, i.rdb.Close())
	}
	errs = append(errs, i.sqlDB.Close())
	return errors.Join(errs...)
}

// BuildApp connects the infrastructure and registers every route on router.
// The returned cleanup releases the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")

	infra, err := connect(ctx, cfg, true)
	if err != nil {
		return nil, err
	}
	if infra.rdb == nil {
		logger.Warn("REDIS_ADDR is empty, benchmark history disabled")
	}
	if infra.writer == nil {
		logger.Info("KAFKA_BROKER is empty, benchmark events disabled")
	}

	registerModules(router, infra, cfg)

	cleanup := func() {
		if err := infra.Close(); err != nil {
			logger.Error("close connections failed", zap.Error(err))
		}
	}
	return cleanup, nil
}
