package entity

import "github.com/jimyag/flowerid/pkg/apierror"

// errMissingGenerator CreateStreamRequest 缺少 generator 字段
var errMissingGenerator = apierror.WrapError(
	apierror.ErrInvalidParameter, "the 'generator' field is required", nil)

// MintRequest 生成 ID 请求
type MintRequest struct {
	Stream string `json:"stream"` // 流名（默认：default）
	Count  int    `json:"count"`  // 生成数量（默认：1，最大：2048）
}

// MintedID 一个生成出来的 ID 的三种表示
type MintedID struct {
	ID    string `json:"id"`           // 11 字符文本形式
	Value uint64 `json:"value,string"` // 数值形式（JSON 中用字符串承载，避免精度丢失）
}

// MintResponse 生成 ID 响应，IDs 按生成顺序严格递增
type MintResponse struct {
	Stream string     `json:"stream"`
	IDs    []MintedID `json:"ids"`
}

// InspectRequest 解析 ID 请求
// ID 可以是 11 字符文本形式或十进制数值形式，文本形式优先：
// 恰好 11 位的纯数字串是合法的 Base64，按文本形式解析。
// 要把这样的值按数值解释，可加一个前导零避开 11 字符长度
type InspectRequest struct {
	ID string `json:"id" binding:"required"`

	// Unit 与 EpochOffset 用于把 timestamp 换算回墙钟时间，
	// 缺省按毫秒刻度和默认纪元解释
	Unit        string `json:"unit,omitempty"`
	EpochOffset *int64 `json:"epoch_offset,omitempty"`
}

// InspectResponse 解析 ID 响应
type InspectResponse struct {
	ID        string `json:"id"`            // 文本形式
	Value     uint64 `json:"value,string"`  // 数值形式
	Timestamp uint64 `json:"timestamp"`     // timestamp 字段
	Sequence  uint16 `json:"sequence"`      // sequence 字段
	Generator uint16 `json:"generator"`     // generator 编号
	Time      string `json:"time"`          // timestamp 换算出的墙钟时间（RFC3339）
}
