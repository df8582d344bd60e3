package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jimyag/flowerid/internal/flowerid/repository/model"
)

// StreamRepository ID 流仓库接口
type StreamRepository interface {
	Create(ctx context.Context, stream *model.Stream) error
	GetByName(ctx context.Context, name string) (*model.Stream, error)
	List(ctx context.Context, names []string) ([]*model.Stream, error)
	Delete(ctx context.Context, name string) error
}

type streamRepository struct {
	db *gorm.DB
}

// NewStreamRepository 创建 ID 流仓库
func NewStreamRepository(db *gorm.DB) StreamRepository {
	return &streamRepository{db: db}
}

// Create 创建流
func (r *streamRepository) Create(ctx context.Context, stream *model.Stream) error {
	return r.db.WithContext(ctx).Create(stream).Error
}

// GetByName 根据流名获取流
func (r *streamRepository) GetByName(ctx context.Context, name string) (*model.Stream, error) {
	var stream model.Stream
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&stream).Error; err != nil {
		return nil, err
	}
	return &stream, nil
}

// List 列出流，names 为空时返回全部
func (r *streamRepository) List(ctx context.Context, names []string) ([]*model.Stream, error) {
	var streams []*model.Stream
	query := r.db.WithContext(ctx).Model(&model.Stream{})
	if len(names) > 0 {
		query = query.Where("name IN ?", names)
	}
	if err := query.Order("name").Find(&streams).Error; err != nil {
		return nil, err
	}
	return streams, nil
}

// Delete 软删除流
func (r *streamRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.Stream{}).Error
}
