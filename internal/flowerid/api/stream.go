package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jimyag/flowerid/internal/flowerid/entity"
	"github.com/jimyag/flowerid/internal/flowerid/service"
	"github.com/jimyag/flowerid/pkg/ginx"
)

// StreamServiceInterface 定义 ID 流服务的接口
type StreamServiceInterface interface {
	CreateStream(ctx context.Context, req *entity.CreateStreamRequest) (*entity.CreateStreamResponse, error)
	DeleteStream(ctx context.Context, name string) error
	DescribeStreams(ctx context.Context, req *entity.DescribeStreamsRequest) ([]entity.Stream, error)
}

type Stream struct {
	streamService StreamServiceInterface
}

func NewStream(streamService *service.StreamService) *Stream {
	return &Stream{
		streamService: streamService,
	}
}

func (s *Stream) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create-stream", ginx.Handle(s.CreateStream))
	router.POST("/delete-stream", ginx.Handle(s.DeleteStream))
	router.POST("/describe-streams", ginx.Handle(s.DescribeStreams))
}

func (s *Stream) CreateStream(ctx *gin.Context, req *entity.CreateStreamRequest) (*entity.CreateStreamResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("name", req.Name).
		Msg("CreateStream called")

	response, err := s.streamService.CreateStream(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("name", req.Name).
			Msg("Failed to create stream")
		return nil, err
	}

	logger.Info().
		Str("name", response.Stream.Name).
		Uint16("generator", response.Stream.Generator).
		Msg("Stream created successfully")

	return response, nil
}

func (s *Stream) DeleteStream(ctx *gin.Context, req *entity.DeleteStreamRequest) (*entity.DeleteStreamResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("name", req.Name).
		Msg("DeleteStream called")

	if err := s.streamService.DeleteStream(ctx, req.Name); err != nil {
		logger.Error().
			Err(err).
			Str("name", req.Name).
			Msg("Failed to delete stream")
		return nil, err
	}

	logger.Info().
		Str("name", req.Name).
		Msg("Stream deleted successfully")

	return &entity.DeleteStreamResponse{
		Return: true,
	}, nil
}

func (s *Stream) DescribeStreams(ctx *gin.Context, req *entity.DescribeStreamsRequest) (*entity.DescribeStreamsResponse, error) {
	logger := zerolog.Ctx(ctx)

	streams, err := s.streamService.DescribeStreams(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to describe streams")
		return nil, err
	}

	return &entity.DescribeStreamsResponse{
		Streams: streams,
	}, nil
}
