package service

import (
	"context"
	"time"

	"github.com/deppfellow/txtstore/internal/middleware"
	"github.com/deppfellow/txtstore/internal/model"
	"github.com/deppfellow/txtstore/internal/server"
)

// RecordStore is implemented by repository.RecordRepository.
type RecordStore interface {
	Create(ctx context.Context, txt string) (model.Record, error)
	Delete(ctx context.Context, id int32) (model.Record, error)
	List(ctx context.Context) ([]model.Record, error)
}

// RecordService runs record operations against the store, each bounded by
// the configured query timeout so a stalled database or an exhausted pool
// cannot pin a request forever.
type RecordService struct {
	server  *server.Server
	store   RecordStore
	timeout time.Duration
}

func NewRecordService(s *server.Server, store RecordStore) *RecordService {
	return &RecordService{
		server:  s,
		store:   store,
		timeout: time.Duration(s.Config.Database.QueryTimeout) * time.Second,
	}
}

func (s *RecordService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *RecordService) CreateRecord(ctx context.Context, txt string) (model.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	record, err := s.store.Create(ctx, txt)
	if err != nil {
		return model.Record{}, err
	}

	middleware.LoggerFromContext(ctx).Debug().Int32("record_id", record.ID).Msg("record created")
	return record, nil
}

func (s *RecordService) ListRecords(ctx context.Context) ([]model.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.store.List(ctx)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id int32) (model.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	record, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.Record{}, err
	}

	middleware.LoggerFromContext(ctx).Debug().Int32("record_id", record.ID).Msg("record deleted")
	return record, nil
}
