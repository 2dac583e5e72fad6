// Package handler is the HTTP layer. Handlers bind and validate requests
// through the validation package, call the service layer and write the
// response; errors are left to the global error handler.
package handler

import (
	"github.com/deppfellow/zoos-api/internal/database"
	"github.com/deppfellow/zoos-api/internal/server"
	"github.com/deppfellow/zoos-api/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Zoo     *ZooHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	var db database.Pinger
	if s.DB != nil {
		db = s.DB
	}

	return &Handlers{
		Health:  NewHealthHandler(s, db),
		OpenAPI: NewOpenAPIHandler(s),
		Zoo:     NewZooHandler(s, services.Zoo),
	}
}
