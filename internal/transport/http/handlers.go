package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/pkg/ctxmeta"
	"github.com/Gunvolt24/foodcart/pkg/validate"
	"github.com/gin-gonic/gin"
)

// maxOrderBody — предел размера тела заявки.
const maxOrderBody = 1 << 20

func (h *Handler) listBanners(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	banners, err := h.store.Banners(ctx)
	if err != nil {
		h.respondError(c, "Banners", err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	products, err := h.store.Products(ctx)
	if err != nil {
		h.respondError(c, "Products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) registerOrder(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxOrderBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}

	req, err := validate.DecodeOrderRequest(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.store.RegisterOrder(ctx, req)
	if err != nil {
		h.respondError(c, "RegisterOrder", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          order.ID,
		"firstname":   order.Firstname,
		"lastname":    order.Lastname,
		"phonenumber": order.Phonenumber,
		"address":     order.Address,
	})
}

func (h *Handler) login(c *gin.Context) {
	username, _ := ctxmeta.ManagerFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"username": username})
}

func (h *Handler) listRestaurants(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.office.Restaurants(ctx)
	if err != nil {
		h.respondError(c, "Restaurants", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) productMatrix(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	matrix, err := h.office.ProductMatrix(ctx)
	if err != nil {
		h.respondError(c, "ProductMatrix", err)
		return
	}
	c.JSON(http.StatusOK, matrix)
}

func (h *Handler) ordersPage(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	records, err := h.office.OrdersPage(ctx)
	if err != nil {
		h.respondError(c, "OrdersPage", err)
		return
	}
	if records == nil {
		records = []domain.OrderDisplayRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// respondError — ошибка usecase → HTTP-статус.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, validate.ErrInvalidOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrGeocoderUnavailable), errors.Is(err, domain.ErrGeocoderMalformed):
		h.log.Warnf(ctx, "%s failed: %v", op, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoder unavailable"})
	default:
		h.log.Errorf(ctx, "%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
