// Package service 提供业务逻辑层的服务实现
package service

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/jimyag/flowerid/internal/flowerid/config"
	"github.com/jimyag/flowerid/internal/flowerid/entity"
	"github.com/jimyag/flowerid/internal/flowerid/repository/model"
	"github.com/jimyag/flowerid/pkg/apierror"
	"github.com/jimyag/flowerid/pkg/fid"
)

// streamEntityToModel 将 entity.Stream 转换为 model.Stream
func streamEntityToModel(e *entity.Stream) (*model.Stream, error) {
	m := &model.Stream{}
	if err := copier.Copy(m, e); err != nil {
		return nil, err
	}

	// 处理时间字段
	if e.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, e.CreatedAt); err == nil {
			m.CreatedAt = t
		} else {
			m.CreatedAt = time.Now()
		}
	} else {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	return m, nil
}

// streamModelToEntity 将 model.Stream 转换为 entity.Stream
func streamModelToEntity(m *model.Stream) (*entity.Stream, error) {
	e := &entity.Stream{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.Format(time.RFC3339)

	return e, nil
}

// unitFromString 把配置中的单位字符串换成 fid.Unit
func unitFromString(s string) (fid.Unit, error) {
	switch s {
	case "", config.UnitMillisecond:
		return fid.UnitMillisecond, nil
	case config.UnitSecond:
		return fid.UnitSecond, nil
	default:
		return 0, apierror.WrapError(apierror.ErrInvalidParameter,
			"unit must be 'millisecond' or 'second'", nil)
	}
}

// buildGenerator 由流定义构建生成器
func buildGenerator(e *entity.Stream) (*fid.Generator, error) {
	unit, err := unitFromString(e.Unit)
	if err != nil {
		return nil, err
	}
	gen, err := fid.NewBuilder(e.Generator).
		EpochOffset(e.EpochOffset).
		WaitSequence(e.WaitSequence).
		Unit(unit).
		Build()
	if err != nil {
		return nil, fidToAPIError(err)
	}
	return gen, nil
}
