package api

import (
	"net/http"

	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/Domenick1991/oneservice/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	service catalog.ServiceUseCase
}

func NewServiceHandler(service catalog.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{service: service}
}

func (h *ServiceHandler) Register(router gin.IRouter) {
	router.GET("/services", handle("Failed to fetch services", h.list))
	router.GET("/services/:id", handle("Invalid service ID", h.get))
	router.POST("/addservices", handle("Failed to add service", h.create))
	router.GET("/showServices", handle("Failed to fetch user services", h.listByOwner))

	// Same resource as /services/:id, used by the provider dashboard.
	router.GET("/showAddService/:id", handle("Failed to fetch service", h.get))
	router.PUT("/showAddService/:id", handle("Failed to update service", h.update))
	router.DELETE("/showAddService/:id", handle("Failed to delete service", h.delete))
}

func (h *ServiceHandler) list(c *gin.Context) error {
	services, err := h.service.List(c.Request.Context(), domain.ServiceFilter{})
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, services)
	return nil
}

func (h *ServiceHandler) listByOwner(c *gin.Context) error {
	filter := domain.ServiceFilter{OwnerEmail: c.Query("userEmail")}
	services, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, services)
	return nil
}

// get answers null, not 404, for an unknown id.
func (h *ServiceHandler) get(c *gin.Context) error {
	service, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, service)
	return nil
}

func (h *ServiceHandler) create(c *gin.Context) error {
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

func (h *ServiceHandler) update(c *gin.Context) error {
	doc, err := bindDocument(c)
	if err != nil {
		return err
	}
	ack, err := h.service.Update(c.Request.Context(), c.Param("id"), domain.ServiceUpdateFromDocument(doc))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, ack)
	return nil
}

func (h *ServiceHandler) delete(c *gin.Context) error {
	ack, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, ack)
	return nil
}
