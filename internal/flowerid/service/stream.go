package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jimyag/flowerid/internal/flowerid/config"
	"github.com/jimyag/flowerid/internal/flowerid/entity"
	"github.com/jimyag/flowerid/internal/flowerid/repository"
	"github.com/jimyag/flowerid/pkg/apierror"
	"github.com/jimyag/flowerid/pkg/fid"
)

// DefaultStreamName 服务启动时自动创建的流
const DefaultStreamName = "default"

// maxMintCount 单次请求最多生成的 ID 数
// 等于一个刻度的 sequence 容量，保证非等待流的单次请求
// 最多只会失败一次而不是部分成功
const maxMintCount = 2048

// StreamService ID 流服务
// 持有流注册表和每条流对应的活动生成器
type StreamService struct {
	repo repository.StreamRepository

	mu         sync.RWMutex
	generators map[string]*fid.Generator
}

// NewStreamService 创建 ID 流服务并从注册表恢复所有流的生成器
// 只恢复配置，(last_timestamp, sequence) 从 0 重新开始
func NewStreamService(ctx context.Context, repo repository.StreamRepository) (*StreamService, error) {
	s := &StreamService{
		repo:       repo,
		generators: make(map[string]*fid.Generator),
	}

	streams, err := repo.List(ctx, nil)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "load stream registry", err)
	}
	for _, m := range streams {
		e, err := streamModelToEntity(m)
		if err != nil {
			return nil, apierror.WrapError(apierror.ErrInternalError, "convert stream", err)
		}
		gen, err := buildGenerator(e)
		if err != nil {
			return nil, err
		}
		s.generators[e.Name] = gen
	}
	return s, nil
}

// CreateStream 创建一条新的 ID 流
func (s *StreamService) CreateStream(ctx context.Context, req *entity.CreateStreamRequest) (*entity.CreateStreamResponse, error) {
	logger := zerolog.Ctx(ctx)

	e := &entity.Stream{
		Name:         req.Name,
		Generator:    *req.Generator,
		Unit:         req.Unit,
		EpochOffset:  fid.DefaultEpochOffset,
		WaitSequence: true,
	}
	if e.Unit == "" {
		e.Unit = config.UnitMillisecond
	}
	if req.EpochOffset != nil {
		e.EpochOffset = *req.EpochOffset
	}
	if req.WaitSequence != nil {
		e.WaitSequence = *req.WaitSequence
	}

	// 先构建生成器，配置非法时不落库
	gen, err := buildGenerator(e)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.generators[e.Name]; exists {
		return nil, apierror.ErrStreamDuplicate
	}

	m, err := streamEntityToModel(e)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "convert stream", err)
	}
	if err := s.repo.Create(ctx, m); err != nil {
		logger.Error().Err(err).Str("stream", e.Name).Msg("Failed to persist stream")
		return nil, apierror.WrapError(apierror.ErrInternalError, "persist stream", err)
	}
	s.generators[e.Name] = gen
	e.CreatedAt = m.CreatedAt.Format(time.RFC3339)

	return &entity.CreateStreamResponse{Stream: e}, nil
}

// DeleteStream 删除一条 ID 流
func (s *StreamService) DeleteStream(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.generators[name]; !exists {
		return apierror.ErrStreamNotFound
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return apierror.WrapError(apierror.ErrInternalError, "delete stream", err)
	}
	delete(s.generators, name)
	return nil
}

// DescribeStreams 列出流定义
func (s *StreamService) DescribeStreams(ctx context.Context, req *entity.DescribeStreamsRequest) ([]entity.Stream, error) {
	models, err := s.repo.List(ctx, req.Names)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "list streams", err)
	}

	streams := make([]entity.Stream, 0, len(models))
	for _, m := range models {
		e, err := streamModelToEntity(m)
		if err != nil {
			return nil, apierror.WrapError(apierror.ErrInternalError, "convert stream", err)
		}
		streams = append(streams, *e)
	}
	return streams, nil
}

// Mint 在指定流上生成 count 个 ID，结果按生成顺序严格递增
func (s *StreamService) Mint(ctx context.Context, stream string, count int) ([]fid.FID, error) {
	if stream == "" {
		stream = DefaultStreamName
	}
	if count == 0 {
		count = 1
	}
	if count < 1 || count > maxMintCount {
		return nil, apierror.WrapError(apierror.ErrInvalidParameter,
			"count must be in the range 1.."+strconv.Itoa(maxMintCount), nil)
	}

	s.mu.RLock()
	gen, exists := s.generators[stream]
	s.mu.RUnlock()
	if !exists {
		return nil, apierror.ErrStreamNotFound
	}

	ids := make([]fid.FID, 0, count)
	for i := 0; i < count; i++ {
		id, err := gen.Next()
		if err != nil {
			// 已经生成的部分丢弃，错误对调用方是原子的
			return nil, fidToAPIError(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Inspect 解析一个 ID 的文本或数值形式
func (s *StreamService) Inspect(req *entity.InspectRequest) (*entity.InspectResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	unit, err := unitFromString(req.Unit)
	if err != nil {
		return nil, err
	}
	epochOffset := fid.DefaultEpochOffset
	if req.EpochOffset != nil {
		epochOffset = *req.EpochOffset
	}

	return &entity.InspectResponse{
		ID:        id.String(),
		Value:     id.Uint64(),
		Timestamp: id.Timestamp(),
		Sequence:  id.Sequence(),
		Generator: id.Generator(),
		Time:      wallClock(id.Timestamp(), unit, epochOffset).Format(time.RFC3339Nano),
	}, nil
}

// parseID 先按 11 字符文本形式解析，失败后按十进制数值解析
func parseID(raw string) (fid.FID, error) {
	if id, err := fid.FromString(raw); err == nil {
		return id, nil
	}
	if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return fid.FromUint64(v), nil
	}
	return 0, apierror.ErrMalformedID
}

// wallClock 把 timestamp 按单位和纪元偏移换算回墙钟时间
func wallClock(timestamp uint64, unit fid.Unit, epochOffset int64) time.Time {
	ms := int64(timestamp)
	if unit == fid.UnitSecond {
		ms *= 1000
	}
	return time.UnixMilli(ms - epochOffset*1000).UTC()
}

// fidToAPIError 把核心错误翻译成带 HTTP 状态码的 API 错误
func fidToAPIError(err error) *apierror.Error {
	switch {
	case errors.Is(err, fid.ErrSequenceOverflow):
		return apierror.WrapError(apierror.ErrSequenceExhausted, apierror.ErrSequenceExhausted.Message, err)
	case errors.Is(err, fid.ErrSysTimeIsInPast):
		return apierror.WrapError(apierror.ErrClockSkewed, apierror.ErrClockSkewed.Message, err)
	case errors.Is(err, fid.ErrTimestampOverflow):
		return apierror.WrapError(apierror.ErrTimestampExhausted, apierror.ErrTimestampExhausted.Message, err)
	case errors.Is(err, fid.ErrGeneratorOverflow):
		return apierror.WrapError(apierror.ErrGeneratorRange, apierror.ErrGeneratorRange.Message, err)
	default:
		return apierror.WrapError(apierror.ErrInternalError, "generate id", err)
	}
}
