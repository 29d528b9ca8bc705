package parcel_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcelmarket/internal/entities"
	trackingservice "parcelmarket/internal/service/tracking"
	"parcelmarket/pkg/logger"
)

type Handler struct {
	trackingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("parcel.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("parcel.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true
// when ConsumeClaim should stop (context cancelled, message left
// unmarked for reprocessing) and false to continue with the next one.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.status.changed processing")

	logModify := entities.TrackingLogModify{
		ParcelID: &event.ParcelID,
		Status:   &event.Status,
	}
	if event.TrackingID != "" {
		logModify.TrackingID = &event.TrackingID
	}
	if event.Message != "" {
		logModify.Message = &event.Message
	}
	if event.UpdatedBy != "" {
		logModify.UpdatedBy = &event.UpdatedBy
	}

	id, err := h.trackingService.ProcessParcelStatusChanged(ctx, logModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, trackingservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler incomplete event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.status.changed handler failed to append tracking log")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("tracking_log", id),
	).Info("parcel.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
