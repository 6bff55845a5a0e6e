package repo

import (
	"context"
	"sync"
	"time"

	"blockfix-backend/internal/apperr"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/store"
)

// SubscriptionRepo owns the push-subscriptions collection, keyed by
// endpoint rather than a generated id.
type SubscriptionRepo struct {
	store store.Store
	mu    sync.Mutex
}

// NewSubscriptionRepo creates a subscription repository over the given store.
func NewSubscriptionRepo(s store.Store) *SubscriptionRepo {
	return &SubscriptionRepo{store: s}
}

// List returns all push subscriptions.
func (r *SubscriptionRepo) List(ctx context.Context) ([]model.PushSubscription, error) {
	return loadAll[model.PushSubscription](ctx, r.store, CollectionSubscriptions)
}

// Get returns the subscription for the given endpoint.
func (r *SubscriptionRepo) Get(ctx context.Context, endpoint string) (model.PushSubscription, error) {
	subs, err := r.List(ctx)
	if err != nil {
		return model.PushSubscription{}, err
	}
	for _, sub := range subs {
		if sub.Endpoint == endpoint {
			return sub, nil
		}
	}
	return model.PushSubscription{}, apperr.ErrNotFound
}

// Upsert stores the subscription, replacing any existing record with the
// same endpoint.
func (r *SubscriptionRepo) Upsert(ctx context.Context, sub model.PushSubscription) (model.PushSubscription, error) {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.List(ctx)
	if err != nil {
		return model.PushSubscription{}, err
	}
	replaced := false
	for i := range subs {
		if subs[i].Endpoint == sub.Endpoint {
			sub.CreatedAt = subs[i].CreatedAt
			subs[i] = sub
			replaced = true
			break
		}
	}
	if !replaced {
		subs = append(subs, sub)
	}
	if err := saveAll(ctx, r.store, CollectionSubscriptions, subs); err != nil {
		return model.PushSubscription{}, err
	}
	return sub, nil
}

// Delete removes the subscription for the endpoint. A missing endpoint is
// a silent no-op.
func (r *SubscriptionRepo) Delete(ctx context.Context, endpoint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.List(ctx)
	if err != nil {
		return err
	}
	remaining := subs[:0]
	for _, sub := range subs {
		if sub.Endpoint != endpoint {
			remaining = append(remaining, sub)
		}
	}
	return saveAll(ctx, r.store, CollectionSubscriptions, remaining)
}
