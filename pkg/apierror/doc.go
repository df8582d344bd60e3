// Package apierror 提供带稳定错误码的 API 错误类型，用于服务层的统一错误处理
//
// 错误响应支持 JSON 和 XML 两种格式：
//
//	JSON 格式：
//	{
//	    "errors": [
//	        {
//	            "code": "InvalidStream.NotFound",
//	            "message": "The stream 'orders' does not exist."
//	        }
//	    ],
//	    "requestID": "ea966190-f9aa-478e-9ede-example"
//	}
//
//	XML 格式：
//	<Response>
//	    <Errors>
//	        <Error>
//	            <Code>InvalidStream.NotFound</Code>
//	            <Message>The stream 'orders' does not exist.</Message>
//	        </Error>
//	    </Errors>
//	    <RequestID>ea966190-f9aa-478e-9ede-example</RequestID>
//	</Response>
//
// 预定义错误变量（可在代码中直接使用）：
//
//   - ErrInvalidParameter: 请求参数非法
//   - ErrMalformedID: ID 的文本/数值形式无法解析
//   - ErrStreamNotFound: 指定的 ID 流不存在
//   - ErrStreamDuplicate: 同名 ID 流已存在
//   - ErrGeneratorRange: generator 编号超出 10 位范围
//   - ErrSequenceExhausted: 当前刻度内 sequence 已耗尽
//   - ErrClockSkewed: 系统时钟回拨，暂时无法生成
//   - ErrTimestampExhausted: timestamp 位宽耗尽，需要调整纪元偏移
//   - ErrInternalError: 内部错误
//
// 使用示例：
//
//	// 直接使用预定义错误
//	return nil, apierror.ErrStreamNotFound
//
//	// 包装底层错误，保留错误码和 HTTP 状态码
//	return nil, apierror.WrapError(apierror.ErrInternalError, "create stream", err)
//
//	// 判断错误类型
//	if errors.Is(err, apierror.ErrStreamNotFound) { ... }
package apierror
