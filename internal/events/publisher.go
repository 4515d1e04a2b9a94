package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"atithi/config"
	"atithi/infras/kafka"
	"atithi/internal/domains/booking/model"
	"atithi/shared/constant"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated        = "booking.created"
	EventBookingStatusChanged  = "booking.status_changed"
	EventBookingPaymentChanged = "booking.payment_changed"
)

// BookingEvent is the envelope published to the booking events topic. The
// billing and notification services consume it downstream.
type BookingEvent struct {
	Event         string  `json:"event"`
	BookingID     string  `json:"booking_id"`
	Type          string  `json:"type"`
	ResourceID    string  `json:"resource_id"`
	BusinessUnit  string  `json:"business_unit"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	TotalPrice    float64 `json:"total_price"`
	PreviousValue string  `json:"previous_value,omitempty"`
	OccurredAt    string  `json:"occurred_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking model.Booking)
	BookingStatusChanged(ctx context.Context, booking model.Booking, previousStatus string)
	BookingPaymentChanged(ctx context.Context, booking model.Booking, previousStatus string)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) publish(ctx context.Context, event string, booking model.Booking, previous string) {
	payload := BookingEvent{
		Event:         event,
		BookingID:     booking.ID,
		Type:          booking.Type,
		ResourceID:    booking.ResourceID,
		BusinessUnit:  booking.BusinessUnit,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		TotalPrice:    booking.TotalPrice,
		PreviousValue: previous,
		OccurredAt:    timezone.Now().Format(constant.DateFormat),
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: payload,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("event", event).Str("bookingID", booking.ID).Msg("failed to publish booking event")
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, booking model.Booking) {
	p.publish(ctx, EventBookingCreated, booking, "")
}

func (p *publisherImpl) BookingStatusChanged(ctx context.Context, booking model.Booking, previousStatus string) {
	p.publish(ctx, EventBookingStatusChanged, booking, previousStatus)
}

func (p *publisherImpl) BookingPaymentChanged(ctx context.Context, booking model.Booking, previousStatus string) {
	p.publish(ctx, EventBookingPaymentChanged, booking, previousStatus)
}
