package rider_release

import (
	"context"
	"time"

	"parcelmarket/pkg/logger"
)

type Service interface {
	ReleaseDeliveredRiders(ctx context.Context) (int64, error)
}

// RiderRelease periodically frees riders whose current parcel has been
// delivered, returning them to the available pool.
type RiderRelease struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRiderRelease(log logger.Logger, service Service, interval time.Duration) *RiderRelease {
	return &RiderRelease{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *RiderRelease) TTL() time.Duration {
	return t.interval
}

func (t *RiderRelease) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	released, err := t.service.ReleaseDeliveredRiders(ctxWithTimeout)

	if released > 0 {
		t.log.With(
			logger.NewField("released_riders", released),
		).Info("rider release")
	}

	return err
}

func (t *RiderRelease) Info() string {
	return "rider release"
}
