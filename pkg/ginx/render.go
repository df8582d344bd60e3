package ginx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jimyag/flowerid/pkg/apierror"
)

const (
	// responseFormatKey 在 gin.Context 中记录响应格式
	responseFormatKey = "ginx.responseFormat"

	formatJSON = "json"
	formatXML  = "xml"
)

// setResponseFormat 记录响应格式
func setResponseFormat(ctx *gin.Context, format string) {
	ctx.Set(responseFormatKey, format)
}

// isXMLResponse 判断响应是否应使用 XML
// 绑定阶段记录的格式优先，其次看 Accept header
func isXMLResponse(ctx *gin.Context) bool {
	if format, ok := ctx.Get(responseFormatKey); ok {
		return format == formatXML
	}
	accept := ctx.GetHeader("Accept")
	return strings.Contains(accept, "application/xml") ||
		strings.Contains(accept, "text/xml")
}

// renderResponse 渲染成功响应
func renderResponse(ctx *gin.Context, response any) {
	if response == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	if isXMLResponse(ctx) {
		ctx.XML(http.StatusOK, response)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// renderError 渲染错误响应
// *apierror.Error 和 *apierror.ErrorResponse 使用自带的
// HTTP 状态码并按 AWS 风格序列化，其他错误使用默认格式
func renderError(ctx *gin.Context, statusCode int, err error) {
	useXML := isXMLResponse(ctx)

	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatus > 0 {
			statusCode = apiErr.HTTPStatus
		}
		errorResp := apierror.NewErrorResponse(requestID(ctx), apiErr)
		if useXML {
			ctx.XML(statusCode, errorResp)
		} else {
			ctx.JSON(statusCode, errorResp)
		}
		return
	}

	var errorResp *apierror.ErrorResponse
	if errors.As(err, &errorResp) {
		if len(errorResp.Errors) > 0 && errorResp.Errors[0].HTTPStatus > 0 {
			statusCode = errorResp.Errors[0].HTTPStatus
		}
		if useXML {
			ctx.XML(statusCode, errorResp)
		} else {
			ctx.JSON(statusCode, errorResp)
		}
		return
	}

	errorMsg := gin.H{"error": err.Error()}
	if useXML {
		ctx.XML(statusCode, errorMsg)
	} else {
		ctx.JSON(statusCode, errorMsg)
	}
}

// requestID 取请求头中的请求 ID，没有则为空
func requestID(ctx *gin.Context) string {
	return ctx.GetHeader("X-Request-ID")
}
