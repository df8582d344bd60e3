package fid

import "fmt"

// Error 核心错误类型，携带稳定的错误码
// 错误码与调用方式无关，HTTP/CLI 等适配层可以按 Code 翻译
type Error struct {
	Code    string // 稳定的错误码
	Message string // 人类可读的描述
	Value   uint64 // 触发错误的原始值（仅溢出类错误填写）
	raw     error  // 底层错误，用于调试，不参与错误码比较
}

// Error 实现 error 接口
func (e *Error) Error() string {
	str := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Value != 0 {
		str += fmt.Sprintf(" (value: %d)", e.Value)
	}
	if e.raw != nil {
		str += fmt.Sprintf(": %v", e.raw)
	}
	return str
}

// Is 实现 errors.Is 接口，按错误码比较
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// Unwrap 实现 errors.Unwrap 接口，返回底层错误
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.raw
}

// 预定义错误，可以用 errors.Is 判断
var (
	// ErrTimestampOverflow timestamp 超出 43 位范围
	// 构造 ID 时立即返回；生成 ID 时表示纪元已耗尽，
	// 对该配置是永久性错误，只能换一个纪元偏移重建生成器
	ErrTimestampOverflow = &Error{
		Code:    "TimestampOverflow",
		Message: "timestamp does not fit in 43 bits",
	}

	// ErrSequenceOverflow sequence 超出 11 位范围
	// 生成 ID 时表示同一刻度内已经发出 2048 个 ID，
	// 状态保持不变，等时钟进入下一刻度后重试即可
	ErrSequenceOverflow = &Error{
		Code:    "SequenceOverflow",
		Message: "sequence does not fit in 11 bits",
	}

	// ErrGeneratorOverflow generator 编号超出 10 位范围
	ErrGeneratorOverflow = &Error{
		Code:    "GeneratorOverflow",
		Message: "generator does not fit in 10 bits",
	}

	// ErrSysTimeIsInPast 系统时钟落后于上次生成的时间戳（或早于纪元）
	// 单次调用的瞬时错误，状态保持不变，时钟恢复后可继续生成
	ErrSysTimeIsInPast = &Error{
		Code:    "SysTimeIsInPast",
		Message: "system time is behind the last generated timestamp",
	}

	// ErrWrongSliceSize 二进制形式必须恰好 8 字节
	ErrWrongSliceSize = &Error{
		Code:    "WrongSliceSize",
		Message: "binary form must be exactly 8 bytes",
	}

	// ErrBufferWrongSize 编码输出缓冲区长度不足
	ErrBufferWrongSize = &Error{
		Code:    "BufferWrongSize",
		Message: "output buffer is too small",
	}

	// ErrBase64Decode 文本形式不是 11 个 URL 安全 Base64 字符
	// 末尾两个填充比特非零同样按损坏数据拒绝
	ErrBase64Decode = &Error{
		Code:    "Base64DecodeError",
		Message: "text form is not 11 url-safe base64 characters",
	}
)

// overflowError 复制预定义溢出错误并附上越界的原始值
func overflowError(base *Error, value uint64) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Value:   value,
	}
}

// decodeError 复制 ErrBase64Decode 并附上底层解码错误
func decodeError(raw error) *Error {
	return &Error{
		Code:    ErrBase64Decode.Code,
		Message: ErrBase64Decode.Message,
		raw:     raw,
	}
}
