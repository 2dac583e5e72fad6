package handler

import (
	"github.com/deppfellow/zoos-api/internal/model/zoo"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/deppfellow/zoos-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ZooHandler struct {
	Handler
	zooService *service.ZooService
}

func NewZooHandler(s *server.Server, zooService *service.ZooService) *ZooHandler {
	return &ZooHandler{
		Handler:    NewHandler(s),
		zooService: zooService,
	}
}

func (h *ZooHandler) CreateZoo(c echo.Context, payload *zoo.CreateZooPayload) (*zoo.Zoo, error) {
	return h.zooService.CreateZoo(c.Request().Context(), payload)
}

func (h *ZooHandler) ListZoos(c echo.Context, _ *zoo.ListZoosPayload) ([]zoo.Zoo, error) {
	return h.zooService.ListZoos(c.Request().Context())
}

func (h *ZooHandler) GetZoo(c echo.Context, payload *zoo.GetZooPayload) (*zoo.Zoo, error) {
	return h.zooService.GetZoo(c.Request().Context(), payload.ID)
}

func (h *ZooHandler) UpdateZoo(c echo.Context, payload *zoo.UpdateZooPayload) (*zoo.Zoo, error) {
	return h.zooService.UpdateZoo(c.Request().Context(), payload)
}

func (h *ZooHandler) DeleteZoo(c echo.Context, payload *zoo.DeleteZooPayload) error {
	return h.zooService.DeleteZoo(c.Request().Context(), payload.ID)
}
