package ginx

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// validatable 绑定后自校验的参数类型
type validatable interface {
	IsValid() error
}

// Handle 适配「有参数、有返回值」的 handler
func Handle[TArgs any, TResp any](fn func(*gin.Context, *TArgs) (TResp, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		args := new(TArgs)
		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, http.StatusBadRequest, err)
			return
		}
		if v, ok := any(args).(validatable); ok {
			if err := v.IsValid(); err != nil {
				renderError(ctx, http.StatusBadRequest, err)
				return
			}
		}

		resp, err := fn(ctx, args)
		if err != nil {
			renderError(ctx, http.StatusInternalServerError, err)
			return
		}
		renderResponse(ctx, resp)
	}
}

// HandleNoArgs 适配「无参数、有返回值」的 handler
func HandleNoArgs[TResp any](fn func(*gin.Context) (TResp, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		resp, err := fn(ctx)
		if err != nil {
			setResponseFormat(ctx, formatJSON)
			renderError(ctx, http.StatusInternalServerError, err)
			return
		}
		renderResponse(ctx, resp)
	}
}

// HandleNoResp 适配「有参数、无返回值」的 handler，成功时返回 204
func HandleNoResp[TArgs any](fn func(*gin.Context, *TArgs) error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		args := new(TArgs)
		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, http.StatusBadRequest, err)
			return
		}
		if v, ok := any(args).(validatable); ok {
			if err := v.IsValid(); err != nil {
				renderError(ctx, http.StatusBadRequest, err)
				return
			}
		}

		if err := fn(ctx, args); err != nil {
			renderError(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}

// isXMLRequest 按 Content-Type 判断请求体是否为 XML
func isXMLRequest(ctx *gin.Context) bool {
	contentType := ctx.GetHeader("Content-Type")
	return strings.Contains(contentType, "application/xml") ||
		strings.Contains(contentType, "text/xml")
}

// bindArgs 绑定请求参数
// 优先请求体（按 Content-Type 选择 XML/JSON），之后补充 URI 和
// Query 参数；没有请求体时退回 URI、Query、Form
func bindArgs(ctx *gin.Context, args any) error {
	if isXMLRequest(ctx) {
		if err := ctx.ShouldBindXML(args); err == nil {
			_ = ctx.ShouldBindUri(args)
			_ = ctx.ShouldBindQuery(args)
			setResponseFormat(ctx, formatXML)
			return nil
		}
	} else {
		if err := ctx.ShouldBindJSON(args); err == nil {
			_ = ctx.ShouldBindUri(args)
			_ = ctx.ShouldBindQuery(args)
			setResponseFormat(ctx, formatJSON)
			return nil
		}
	}

	setResponseFormat(ctx, formatJSON)
	if err := ctx.ShouldBindUri(args); err == nil {
		_ = ctx.ShouldBindQuery(args)
		return nil
	}
	if err := ctx.ShouldBindQuery(args); err == nil {
		return nil
	}
	return ctx.ShouldBind(args)
}
