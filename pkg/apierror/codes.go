package apierror

import "net/http"

// flowerid 服务的预定义错误
// Code 是对外稳定的错误码，客户端按码分支，不要依赖 Message 文本
var (
	// ErrInvalidParameter 请求参数非法
	ErrInvalidParameter = &Error{
		Code:       "InvalidParameter",
		Message:    "A parameter in the request is invalid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrMalformedID ID 的文本或数值形式无法解析
	// 文本形式必须是 11 个 URL 安全 Base64 字符，数值形式必须是十进制无符号整数
	ErrMalformedID = &Error{
		Code:       "InvalidID.Malformed",
		Message:    "The ID is not a valid 11-character text form or decimal value.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrStreamNotFound 指定的 ID 流不存在
	ErrStreamNotFound = &Error{
		Code:       "InvalidStream.NotFound",
		Message:    "The specified stream does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrStreamDuplicate 同名 ID 流已存在
	ErrStreamDuplicate = &Error{
		Code:       "InvalidStream.Duplicate",
		Message:    "A stream with the same name already exists.",
		HTTPStatus: http.StatusConflict,
	}

	// ErrGeneratorRange generator 编号超出 0..1023
	ErrGeneratorRange = &Error{
		Code:       "InvalidGenerator.Range",
		Message:    "The generator id must be in the range 0..1023.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrSequenceExhausted 当前刻度内已发出 2048 个 ID
	// 瞬时错误，客户端在下一刻度重试即可
	ErrSequenceExhausted = &Error{
		Code:       "SequenceExhausted",
		Message:    "The sequence for the current tick is exhausted. Retry after the next tick.",
		HTTPStatus: http.StatusTooManyRequests,
	}

	// ErrClockSkewed 系统时钟回拨，暂时无法生成
	// 瞬时错误，时钟恢复后自动消失
	ErrClockSkewed = &Error{
		Code:       "ClockSkewed",
		Message:    "The system clock is behind the last generated timestamp. Retry later.",
		HTTPStatus: http.StatusServiceUnavailable,
	}

	// ErrTimestampExhausted timestamp 位宽已耗尽
	// 对当前纪元配置是永久性错误，需要调整纪元偏移后重建流
	ErrTimestampExhausted = &Error{
		Code:       "TimestampExhausted",
		Message:    "The 43-bit timestamp field is exhausted for the configured epoch.",
		HTTPStatus: http.StatusInternalServerError,
	}

	// ErrInternalError 内部错误
	ErrInternalError = &Error{
		Code:       "InternalError",
		Message:    "An internal error has occurred. Retry your request.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
