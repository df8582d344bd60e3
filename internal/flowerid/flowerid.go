// Package flowerid 提供 flowerid 服务器的主入口和初始化逻辑
package flowerid

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/rs/zerolog"

	"github.com/jimyag/flowerid/internal/flowerid/api"
	"github.com/jimyag/flowerid/internal/flowerid/config"
	"github.com/jimyag/flowerid/internal/flowerid/entity"
	"github.com/jimyag/flowerid/internal/flowerid/repository"
	"github.com/jimyag/flowerid/internal/flowerid/service"
	"github.com/jimyag/flowerid/pkg/apierror"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 打开流注册表
	repo, err := repository.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open stream registry: %w", err)
	}
	logger.Info().Str("path", cfg.DatabasePath()).Msg("Stream registry opened")

	// 2. 创建 Stream Service，恢复已注册流的生成器
	ctx := context.Background()
	streamService, err := service.NewStreamService(ctx, repository.NewStreamRepository(repo.DB()))
	if err != nil {
		return nil, fmt.Errorf("create stream service: %w", err)
	}

	// 3. 确保默认流存在
	if err := ensureDefaultStream(ctx, streamService, cfg); err != nil {
		return nil, fmt.Errorf("ensure default stream: %w", err)
	}

	// 4. 创建 API
	apiInstance, err := api.New(streamService, cfg.Address)
	if err != nil {
		return nil, err
	}

	server := &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}
	return server, nil
}

// ensureDefaultStream 按配置创建默认流，已存在时跳过
func ensureDefaultStream(ctx context.Context, streamService *service.StreamService, cfg *config.Config) error {
	_, err := streamService.CreateStream(ctx, &entity.CreateStreamRequest{
		Name:         service.DefaultStreamName,
		Generator:    &cfg.Default.Generator,
		Unit:         cfg.Default.Unit,
		EpochOffset:  &cfg.Default.EpochOffset,
		WaitSequence: &cfg.Default.WaitSequence,
	})
	if err != nil && !errors.Is(err, apierror.ErrStreamDuplicate) {
		return err
	}
	return nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "FlowerID Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
