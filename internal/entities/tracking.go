package entities

import "time"

// TrackingLog is append-only: entries are created and never updated.
type TrackingLog struct {
	ID         string
	TrackingID string
	ParcelID   string
	Status     string
	Message    string
	Time       time.Time
	UpdatedBy  string
}

type TrackingLogModify struct {
	TrackingID *string
	ParcelID   *string
	Status     *string
	Message    *string
	UpdatedBy  *string
}
