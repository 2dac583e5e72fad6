package router

import (
	"net/http"

	"github.com/deppfellow/zoos-api/internal/handler"
	"github.com/deppfellow/zoos-api/internal/model/zoo"
	"github.com/labstack/echo/v4"
)

func registerZooRoutes(zoos *echo.Group, h *handler.ZooHandler) {
	zoos.POST("", handler.Handle(h.Handler, h.CreateZoo, http.StatusCreated, func() *zoo.CreateZooPayload {
		return &zoo.CreateZooPayload{}
	}))

	zoos.GET("", handler.Handle(h.Handler, h.ListZoos, http.StatusOK, func() *zoo.ListZoosPayload {
		return &zoo.ListZoosPayload{}
	}))

	zoos.GET("/:id", handler.Handle(h.Handler, h.GetZoo, http.StatusOK, func() *zoo.GetZooPayload {
		return &zoo.GetZooPayload{}
	}))

	zoos.PUT("/:id", handler.Handle(h.Handler, h.UpdateZoo, http.StatusOK, func() *zoo.UpdateZooPayload {
		return &zoo.UpdateZooPayload{}
	}))

	zoos.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteZoo, http.StatusNoContent, func() *zoo.DeleteZooPayload {
		return &zoo.DeleteZooPayload{}
	}))
}
