package router

import (
	"net/http"

	"github.com/deppfellow/txtstore/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerRecordRoutes(r *echo.Echo, h *handler.Handlers) {
	rh := h.Record

	r.GET("/", handler.HandleText(rh.Handler, rh.Root, http.StatusOK, &handler.EmptyRequest{}))

	txt := r.Group("/txt")
	txt.GET("", handler.Handle(rh.Handler, rh.ListRecords, http.StatusOK, &handler.EmptyRequest{}))
	txt.POST("", handler.Handle(rh.Handler, rh.CreateRecord, http.StatusOK, &handler.CreateRecordRequest{}))
	txt.DELETE("/:id", handler.Handle(rh.Handler, rh.DeleteRecord, http.StatusOK, &handler.DeleteRecordRequest{}))
}
