package service

import (
	"github.com/deppfellow/zoos-api/internal/repository"
	"github.com/deppfellow/zoos-api/internal/server"
)

// Services groups the business layer.
type Services struct {
	Zoo *ZooService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Zoo: NewZooService(s, repos.Zoo),
	}
}
