package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/txtstore/internal/model"
	"github.com/deppfellow/txtstore/internal/repository"
	"github.com/deppfellow/txtstore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordService(t *testing.T) (*RecordService, *testutil.MemoryStore) {
	t.Helper()
	s, _ := testutil.NewServer(t)
	store := testutil.NewMemoryStore()
	return NewRecordService(s, store), store
}

func TestRecordService_RoundTrip(t *testing.T) {
	svc, _ := newRecordService(t)
	ctx := context.Background()

	created, err := svc.CreateRecord(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, model.Record{ID: 1, Text: "hello"}, created)

	all, err := svc.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Record{created}, all)

	deleted, err := svc.DeleteRecord(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = svc.DeleteRecord(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
}

func TestRecordService_PropagatesStoreErrors(t *testing.T) {
	svc, store := newRecordService(t)
	store.Err = errors.New("too many clients already")

	_, err := svc.CreateRecord(context.Background(), "x")
	assert.ErrorIs(t, err, store.Err)

	_, err = svc.ListRecords(context.Background())
	assert.ErrorIs(t, err, store.Err)

	_, err = svc.DeleteRecord(context.Background(), 1)
	assert.ErrorIs(t, err, store.Err)
}

type deadlineStore struct {
	testutil.MemoryStore
	deadline time.Time
	ok       bool
}

func (s *deadlineStore) List(ctx context.Context) ([]model.Record, error) {
	s.deadline, s.ok = ctx.Deadline()
	return []model.Record{}, nil
}

func TestRecordService_BoundsStoreCalls(t *testing.T) {
	s, _ := testutil.NewServer(t)
	store := &deadlineStore{}
	svc := NewRecordService(s, store)

	before := time.Now()
	_, err := svc.ListRecords(context.Background())
	require.NoError(t, err)

	require.True(t, store.ok)
	assert.WithinDuration(t, before.Add(5*time.Second), store.deadline, time.Second)
}

func TestRecordService_CancelledContext(t *testing.T) {
	svc, _ := newRecordService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateRecord(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecordService_ConcurrentCreates(t *testing.T) {
	svc, _ := newRecordService(t)

	const n = 50
	var mu sync.Mutex
	seen := make(map[int32]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := svc.CreateRecord(context.Background(), "x")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			seen[r.ID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
