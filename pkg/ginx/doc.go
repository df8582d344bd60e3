// Package ginx 提供 gin handler 的泛型适配器
//
// 业务 handler 写成普通函数签名，由适配器统一完成参数绑定、
// 校验、错误渲染和响应序列化：
//
//	func (s *Stream) Mint(ctx *gin.Context, req *entity.MintRequest) (*entity.MintResponse, error)
//
//	router.POST("/mint", ginx.Handle(s.Mint))
//
// 参数绑定优先级：请求体（按 Content-Type 选择 JSON/XML）> URI 参数 >
// Query 参数 > Form。绑定后如果参数类型实现了 IsValid() error，
// 会先执行校验。
//
// 错误渲染对 *apierror.Error 和 *apierror.ErrorResponse 特殊处理：
// 使用错误自带的 HTTP 状态码，并按 AWS 风格序列化错误响应；
// 其他错误统一渲染为 {"error": "..."}。
//
// 响应格式跟随请求：XML 请求得到 XML 响应，其余默认 JSON。
package ginx
