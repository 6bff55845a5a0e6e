package model

import "time"

// PushSubscription holds a browser push subscription. Subscriptions live
// in the entity store alongside the dashboard collections.
type PushSubscription struct {
	Endpoint  string    `json:"endpoint"`
	P256DH    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
}
