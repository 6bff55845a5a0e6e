package notification

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/repo"
	"blockfix-backend/internal/store"
)

// mockSender is a mock implementation of the Sender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

func newTestRepos(t *testing.T) (*repo.SubscriptionRepo, *repo.SettingsRepo) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Collection{}))

	s := store.NewGormStore(db)
	return repo.NewSubscriptionRepo(s), repo.NewSettingsRepo(s)
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(bytes.NewBufferString("")),
	}
}

func TestWorkerPool_Dispatch(t *testing.T) {
	subs, settings := newTestRepos(t)
	wp := NewWorkerPool(1, subs, settings, &webpush.Options{})

	wp.Dispatch(Event{Kind: EventMaintenanceAlert, Message: "hello"})

	select {
	case job := <-wp.jobs:
		assert.Equal(t, EventMaintenanceAlert, job.Kind)
		assert.Equal(t, "hello", job.Message)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_DispatchDropsWhenQueueFull(t *testing.T) {
	subs, settings := newTestRepos(t)
	wp := NewWorkerPool(1, subs, settings, &webpush.Options{})

	// No workers are running; the second event exceeds the buffer and
	// must be dropped instead of blocking.
	wp.Dispatch(Event{Kind: EventMaintenanceAlert, Message: "first"})
	done := make(chan struct{})
	go func() {
		wp.Dispatch(Event{Kind: EventMaintenanceAlert, Message: "second"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
	assert.Len(t, wp.jobs, 1)
}

func TestWorkerPool_WorkerLogic(t *testing.T) {
	subs, settings := newTestRepos(t)
	ctx := context.Background()

	require.NoError(t, settings.Seed(ctx))
	_, err := subs.Upsert(ctx, model.PushSubscription{
		Endpoint: "https://example.com/push",
		P256DH:   "test_p256dh",
		Auth:     "test_auth",
	})
	require.NoError(t, err)

	wp := NewWorkerPool(1, subs, settings, &webpush.Options{})

	workerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(workerCtx)

	t.Run("sends enabled event to subscribers", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "https://example.com/push", sub.Endpoint)
				assert.Equal(t, "Work order completed: Flickering Lights", string(payload))
				wg.Done()
				return okResponse(), nil
			},
		}

		wp.Dispatch(Event{Kind: EventMaintenanceAlert, Message: "Work order completed: Flickering Lights"})
		wg.Wait()
	})

	t.Run("drops event when its toggle is off", func(t *testing.T) {
		patch := model.DefaultSettings().Notifications
		patch.ContractorUpdates = false
		_, err := settings.Update(ctx, model.SettingsPatch{Notifications: &patch})
		require.NoError(t, err)

		var sent int
		var mu sync.Mutex
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				mu.Lock()
				sent++
				mu.Unlock()
				return okResponse(), nil
			},
		}

		wp.Dispatch(Event{Kind: EventContractorUpdate, Message: "suppressed"})
		time.Sleep(100 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		assert.Zero(t, sent)
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusGone,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.Dispatch(Event{Kind: EventMaintenanceAlert, Message: "gone"})
		time.Sleep(100 * time.Millisecond)

		_, err := subs.Get(ctx, "https://example.com/push")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
