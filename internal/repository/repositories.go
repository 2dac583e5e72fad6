// Package repository is the persistence layer. Each repository owns the
// SQL for one table and talks to PostgreSQL through pgx.
package repository

import (
	"github.com/deppfellow/zoos-api/internal/server"
)

// Repositories groups every repository so they can be wired in one place.
type Repositories struct {
	Zoo *ZooRepository
}

// NewRepositories builds the repositories on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Zoo: NewZooRepository(s.DB.Pool),
	}
}
