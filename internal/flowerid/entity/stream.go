// Package entity 定义业务实体
package entity

// Stream 一条命名的 ID 流
// 每条流持有独立的生成器配置，流名在服务内唯一
type Stream struct {
	Name         string `json:"name"`          // 流名
	Generator    uint16 `json:"generator"`     // 生成器编号，0..1023
	Unit         string `json:"unit"`          // 时间戳刻度单位：millisecond / second
	EpochOffset  int64  `json:"epoch_offset"`  // 纪元偏移（秒）
	WaitSequence bool   `json:"wait_sequence"` // sequence 耗尽时是否等待下一刻度
	CreatedAt    string `json:"created_at"`    // 创建时间
}

// CreateStreamRequest 创建流请求
type CreateStreamRequest struct {
	Name         string  `json:"name" binding:"required"` // 流名
	Generator    *uint16 `json:"generator"`               // 生成器编号（必填）
	Unit         string  `json:"unit"`                    // 单位（默认：millisecond）
	EpochOffset  *int64  `json:"epoch_offset"`            // 纪元偏移（默认：-1483228800）
	WaitSequence *bool   `json:"wait_sequence"`           // 默认：true
}

// IsValid 校验请求参数
func (r *CreateStreamRequest) IsValid() error {
	if r.Generator == nil {
		return errMissingGenerator
	}
	return nil
}

// CreateStreamResponse 创建流响应
type CreateStreamResponse struct {
	Stream *Stream `json:"stream"`
}

// DeleteStreamRequest 删除流请求
type DeleteStreamRequest struct {
	Name string `json:"name" binding:"required"`
}

// DeleteStreamResponse 删除流响应
type DeleteStreamResponse struct {
	Return bool `json:"return"`
}

// DescribeStreamsRequest 描述流请求
type DescribeStreamsRequest struct {
	Names []string `json:"names,omitempty"` // 为空时返回全部流
}

// DescribeStreamsResponse 描述流响应
type DescribeStreamsResponse struct {
	Streams []Stream `json:"streams"`
}
