// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies the
// per-call store deadline and calls repository methods to
// interact with the data.
package service

import (
	"github.com/deppfellow/txtstore/internal/repository"
	"github.com/deppfellow/txtstore/internal/server"
)

type Services struct {
	Record *RecordService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Record: NewRecordService(s, repos.Record),
	}
}
