package api

import (
	"net/http"

	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/Domenick1991/oneservice/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router gin.IRouter) {
	router.GET("/bookings", handle("Failed to fetch bookings", h.listByCustomer))
	router.POST("/addbookings", handle("Failed to add booking", h.create))
	router.GET("/pendingBooking", handle("Failed to fetch pending bookings", h.listByProvider))
	router.PUT("/pendingBooking/:id", handle("Failed to update booking", h.updateStatus))
}

func (h *BookingHandler) listByCustomer(c *gin.Context) error {
	return h.list(c, domain.BookingFilter{
		CustomerEmail: c.Query("email"),
		Status:        c.Query("status"),
	})
}

// listByProvider returns bookings of every status unless ?status= is given.
func (h *BookingHandler) listByProvider(c *gin.Context) error {
	return h.list(c, domain.BookingFilter{
		ProviderEmail: c.Query("serviceProviderEmail"),
		Status:        c.Query("status"),
	})
}

func (h *BookingHandler) list(c *gin.Context, filter domain.BookingFilter) error {
	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, bookings)
	return nil
}

func (h *BookingHandler) create(c *gin.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	ack, err := h.service.Create(c.Request.Context(), doc)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, ack)
	return nil
}

func (h *BookingHandler) updateStatus(c *gin.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	ack, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatusUpdateFromDocument(doc))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, ack)
	return nil
}
