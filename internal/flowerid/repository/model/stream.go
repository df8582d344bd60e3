// Package model 定义数据库表结构
package model

import (
	"time"

	"gorm.io/gorm"
)

// Stream ID 流表
// 只持久化流的生成器配置，(last_timestamp, sequence) 运行态
// 不落库，服务重启后从 0 重新开始
type Stream struct {
	ID           uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name         string         `gorm:"type:text;not null;index:idx_streams_name;column:name" json:"name"`
	Generator    uint16         `gorm:"not null;column:generator" json:"generator"`
	Unit         string         `gorm:"type:text;not null;column:unit" json:"unit"`
	EpochOffset  int64          `gorm:"not null;column:epoch_offset" json:"epoch_offset"`
	WaitSequence bool           `gorm:"not null;column:wait_sequence" json:"wait_sequence"`
	CreatedAt    time.Time      `gorm:"type:datetime;not null;index:idx_streams_created_at;column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"type:datetime;index:idx_streams_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除
}

// TableName 指定表名
func (Stream) TableName() string {
	return "streams"
}
