package email

import (
	"context"
	"log"

	"github.com/Domenick1991/oneservice/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case kafka.EventBookingCreated:
		log.Printf("send email to %s: new booking %s from %s", event.ServiceProviderEmail, event.BookingID, event.Email)
	default:
		log.Printf("send email to %s: booking %s is now %s", event.Email, event.BookingID, event.Status)
	}
	return nil
}
