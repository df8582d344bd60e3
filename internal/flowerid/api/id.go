package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jimyag/flowerid/internal/flowerid/entity"
	"github.com/jimyag/flowerid/internal/flowerid/service"
	"github.com/jimyag/flowerid/pkg/fid"
	"github.com/jimyag/flowerid/pkg/ginx"
)

// IDServiceInterface 定义 ID 生成和解析服务的接口
type IDServiceInterface interface {
	Mint(ctx context.Context, stream string, count int) ([]fid.FID, error)
	Inspect(req *entity.InspectRequest) (*entity.InspectResponse, error)
}

type ID struct {
	streamService IDServiceInterface
}

func NewID(streamService *service.StreamService) *ID {
	return &ID{
		streamService: streamService,
	}
}

func (i *ID) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mint", ginx.Handle(i.Mint))
	router.POST("/inspect", ginx.Handle(i.Inspect))
}

func (i *ID) Mint(ctx *gin.Context, req *entity.MintRequest) (*entity.MintResponse, error) {
	logger := zerolog.Ctx(ctx)

	ids, err := i.streamService.Mint(ctx, req.Stream, req.Count)
	if err != nil {
		logger.Error().
			Err(err).
			Str("stream", req.Stream).
			Int("count", req.Count).
			Msg("Failed to mint ids")
		return nil, err
	}

	stream := req.Stream
	if stream == "" {
		stream = service.DefaultStreamName
	}
	minted := make([]entity.MintedID, 0, len(ids))
	for _, id := range ids {
		minted = append(minted, entity.MintedID{
			ID:    id.String(),
			Value: id.Uint64(),
		})
	}

	return &entity.MintResponse{
		Stream: stream,
		IDs:    minted,
	}, nil
}

func (i *ID) Inspect(ctx *gin.Context, req *entity.InspectRequest) (*entity.InspectResponse, error) {
	logger := zerolog.Ctx(ctx)

	response, err := i.streamService.Inspect(req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("id", req.ID).
			Msg("Failed to inspect id")
		return nil, err
	}

	return response, nil
}
