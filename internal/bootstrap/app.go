package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jasonren05/learning-agent/internal/config"
	"github.com/jasonren05/learning-agent/internal/model"
	mysqlClient "github.com/jasonren05/learning-agent/internal/platform/mysql"
	rabbitmqClient "github.com/jasonren05/learning-agent/internal/platform/rabbitmq"
	redisClient "github.com/jasonren05/learning-agent/internal/platform/redis"
	"github.com/jasonren05/learning-agent/internal/repository"
	"github.com/jasonren05/learning-agent/internal/worker"
)

type App struct {
	Config       *config.Config
	MySQL        *gorm.DB
	Redis        *redis.Client
	MQConn       *amqp.Connection
	AccessWorker *worker.NoteAccessWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	if err := os.MkdirAll(cfg.Storage.ArchiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.User{},
		&model.Note{},
		&model.EnhancedContent{},
		&model.VocabularyRecord{},
		&model.ProgressRecord{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	progressRepo := repository.NewProgressRepository(mysqlDB)
	accessWorker := worker.NewNoteAccessWorker(mqConn, progressRepo, cfg.RabbitMQ.NoteAccessQueue)
	if err := accessWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start note access worker failed: %w", err)
	}

	return &App{
		Config:       cfg,
		MySQL:        mysqlDB,
		Redis:        redisCli,
		MQConn:       mqConn,
		AccessWorker: accessWorker,
		StartedAt:    time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.AccessWorker != nil {
		a.AccessWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
