package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/Domenick1991/oneservice/internal/kafka"
	"github.com/Domenick1991/oneservice/internal/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingUseCase interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Document, error)
	Create(ctx context.Context, doc domain.Document) (*domain.InsertAck, error)
	UpdateStatus(ctx context.Context, id string, update domain.BookingStatusUpdate) (*domain.UpdateAck, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// NewBookingService builds the service. producer may be nil, which disables
// event publishing.
func NewBookingService(
	bookings repository.BookingRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Document, error) {
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) Create(ctx context.Context, doc domain.Document) (*domain.InsertAck, error) {
	ack, err := s.bookings.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	event := s.newEvent(kafka.EventBookingCreated, idString(ack.InsertedID))
	event.Email = stringField(doc, domain.FieldBookingEmail)
	event.ServiceProviderEmail = stringField(doc, domain.FieldServiceProviderEmail)
	event.Status = stringField(doc, domain.FieldBookingStatus)
	if err := s.publish(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", event.Type, event.BookingID, err)
	}
	return ack, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, update domain.BookingStatusUpdate) (*domain.UpdateAck, error) {
	ack, err := s.bookings.UpdateStatus(ctx, id, update.Status)
	if err != nil {
		return nil, err
	}
	if ack.MatchedCount == 0 {
		return ack, nil
	}

	event := s.newEvent(kafka.EventBookingStatusUpdated, id)
	if status, ok := update.Status.(string); ok {
		event.Status = status
	}
	if err := s.publish(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", event.Type, event.BookingID, err)
	}
	return ack, nil
}

func (s *BookingService) newEvent(eventType, bookingID string) kafka.BookingEvent {
	return kafka.BookingEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  bookingID,
		OccurredAt: s.now().UTC(),
	}
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.BookingID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.BookingID, event)
	}
	return nil
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func stringField(doc domain.Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

var _ BookingUseCase = (*BookingService)(nil)
