// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or delete data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/deppfellow/txtstore/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Record *RecordRepository
}

// NewRepositories constructs the repository container on top of the shared
// pool held by the server.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Record: NewRecordRepository(s.DB.Pool),
	}
}
