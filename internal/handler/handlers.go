// Package handler is the first entry point for business logic
// after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
package handler

import (
	"github.com/deppfellow/txtstore/internal/server"
	"github.com/deppfellow/txtstore/internal/service"
)

// Handlers is a container that groups all HTTP handlers so the router can
// be wired from a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Record  *RecordHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Record:  NewRecordHandler(s, services.Record),
	}
}
