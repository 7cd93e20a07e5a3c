package handler

import (
	"encoding/json"

	"github.com/deppfellow/txtstore/internal/model"
	"github.com/deppfellow/txtstore/internal/server"
	"github.com/deppfellow/txtstore/internal/service"
	"github.com/deppfellow/txtstore/internal/sqlerr"
	"github.com/deppfellow/txtstore/internal/validation"
	"github.com/labstack/echo/v4"
)

// Greeting is the body served on GET /.
const Greeting = "Hello world!"

// CreateRecordRequest is the POST /txt body: a bare JSON string.
type CreateRecordRequest struct {
	Text string

	present bool
}

func (r *CreateRecordRequest) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Text); err != nil {
		return err
	}
	r.present = string(data) != "null"
	return nil
}

func (r *CreateRecordRequest) Validate() error {
	if !r.present {
		return validation.CustomValidationErrors{{Field: "body", Message: "must be a JSON string"}}
	}
	return nil
}

// DeleteRecordRequest carries the id path segment of DELETE /txt/:id.
type DeleteRecordRequest struct {
	ID int32 `param:"id"`
}

func (r *DeleteRecordRequest) Validate() error {
	return nil
}

// EmptyRequest is used by routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

type RecordHandler struct {
	Handler
	recordService *service.RecordService
}

func NewRecordHandler(s *server.Server, recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		Handler:       NewHandler(s),
		recordService: recordService,
	}
}

func (h *RecordHandler) CreateRecord(c echo.Context, req *CreateRecordRequest) (model.Record, error) {
	record, err := h.recordService.CreateRecord(c.Request().Context(), req.Text)
	if err != nil {
		return model.Record{}, sqlerr.HandleError(err)
	}
	return record, nil
}

func (h *RecordHandler) ListRecords(c echo.Context, _ *EmptyRequest) ([]model.Record, error) {
	records, err := h.recordService.ListRecords(c.Request().Context())
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return records, nil
}

func (h *RecordHandler) DeleteRecord(c echo.Context, req *DeleteRecordRequest) (model.Record, error) {
	record, err := h.recordService.DeleteRecord(c.Request().Context(), req.ID)
	if err != nil {
		return model.Record{}, sqlerr.HandleError(err)
	}
	return record, nil
}

// Root serves the static greeting.
func (h *RecordHandler) Root(c echo.Context, _ *EmptyRequest) (string, error) {
	return Greeting, nil
}
