// Package notification pushes dashboard events to browser subscriptions
// through a small worker pool.
package notification

import (
	"context"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"blockfix-backend/internal/model"
	"blockfix-backend/internal/repo"
)

// EventKind selects which settings toggle gates an event.
type EventKind string

const (
	EventMaintenanceAlert EventKind = "maintenanceAlert"
	EventContractorUpdate EventKind = "contractorUpdate"
	EventReportGenerated  EventKind = "reportGenerated"
)

// Event is one notification to fan out to all subscribers.
type Event struct {
	Kind    EventKind
	Message string
}

// Sender sends a single web push message. It exists so tests can swap out
// the real transport.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender sends through the webpush library.
type WebPushSender struct{}

func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool fans dashboard events out to push subscriptions. Events whose
// settings toggle is off are dropped; subscriptions that report 410 Gone
// are pruned.
type WorkerPool struct {
	size          int
	jobs          chan Event
	subscriptions *repo.SubscriptionRepo
	settings      *repo.SettingsRepo
	webpush       *webpush.Options
	sender        Sender
}

// NewWorkerPool creates a worker pool of the given size.
func NewWorkerPool(size int, subscriptions *repo.SubscriptionRepo, settings *repo.SettingsRepo, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:          size,
		jobs:          make(chan Event, size),
		subscriptions: subscriptions,
		settings:      settings,
		webpush:       webpushOptions,
		sender:        &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// Dispatch queues an event without blocking the caller; if the queue is
// full the event is dropped (notifications are best-effort).
func (wp *WorkerPool) Dispatch(event Event) {
	select {
	case wp.jobs <- event:
	default:
		log.Printf("notification queue full, dropping %s event", event.Kind)
	}
}

// Jobs exposes the job channel for tests.
func (wp *WorkerPool) Jobs() chan Event {
	return wp.jobs
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("notification worker %d started", id)
	for {
		select {
		case event := <-wp.jobs:
			wp.deliver(ctx, event)
		case <-ctx.Done():
			log.Printf("notification worker %d shutting down", id)
			return
		}
	}
}

// deliver checks the settings toggle for the event kind and sends the
// message to every subscription.
func (wp *WorkerPool) deliver(ctx context.Context, event Event) {
	settings, err := wp.settings.Get(ctx)
	if err != nil {
		log.Printf("error loading settings for %s event: %v", event.Kind, err)
		return
	}
	if !eventEnabled(event.Kind, settings.Notifications) {
		return
	}

	subs, err := wp.subscriptions.List(ctx)
	if err != nil {
		log.Printf("error loading subscriptions for %s event: %v", event.Kind, err)
		return
	}
	for _, sub := range subs {
		wp.send(ctx, sub, []byte(event.Message))
	}
}

func eventEnabled(kind EventKind, toggles model.NotificationSettings) bool {
	switch kind {
	case EventMaintenanceAlert:
		return toggles.MaintenanceAlerts
	case EventContractorUpdate:
		return toggles.ContractorUpdates
	case EventReportGenerated:
		return toggles.ReportGeneration
	}
	return false
}

func (wp *WorkerPool) send(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusGone {
		log.Printf("subscription %s is expired, deleting", sub.Endpoint)
		if err := wp.subscriptions.Delete(ctx, sub.Endpoint); err != nil {
			log.Printf("failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
