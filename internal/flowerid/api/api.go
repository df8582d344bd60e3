// Package api 提供 HTTP API 层
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jimyag/flowerid/internal/flowerid/service"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	stream *Stream
	id     *ID
}

func New(streamService *service.StreamService, addr string) (*API, error) {
	engine := gin.Default()
	api := &API{
		engine: engine,
		stream: NewStream(streamService),
		id:     NewID(streamService),
	}
	group := engine.Group("/api")
	api.stream.RegisterRoutes(group)
	api.id.RegisterRoutes(group)
	api.server = &http.Server{
		Addr:    addr,
		Handler: engine,
	}
	return api, nil
}

func (a *API) Run(ctx context.Context) error {
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "FlowerID API"
}
