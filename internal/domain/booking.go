package domain

const (
	FieldBookingEmail         = "email"
	FieldServiceProviderEmail = "serviceProviderEmail"
	FieldBookingStatus        = "status"
)

// Common status values. Status is free-form and not checked against these.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
)

// BookingStatusUpdate is the only part of a booking edit that is applied.
type BookingStatusUpdate struct {
	Status any
}

func BookingStatusUpdateFromDocument(doc Document) BookingStatusUpdate {
	return BookingStatusUpdate{Status: doc[FieldBookingStatus]}
}

// BookingFilter narrows a booking listing. Empty fields are not applied.
type BookingFilter struct {
	CustomerEmail string
	ProviderEmail string
	Status        string
}
