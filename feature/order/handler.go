package order

import (
	"errors"

	"garment-geek/core/catalog"
	"garment-geek/core/logger"
	"garment-geek/feature/garment"
	"garment-geek/feature/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SelectRequest picks a garment from a session's last search results.
type SelectRequest struct {
	SessionID   string              `json:"session_id"`
	ProductCode catalog.ProductCode `json:"product_code"`
}

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Post("/select", h.HandleSelect)
	group.Post("/", h.HandleSubmit)
	group.Get("/", h.HandleList)
}

// HandleSelect records the shopper's chosen garment.
// @Summary Select Garment
// @Description Marks a garment from the session's last search results as the one to order. The session ID may also be sent in the X-Session-ID header.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Selection"
// @Success 200 {object} map[string]interface{} "Chosen garment"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown session"
// @Failure 409 {object} map[string]string "Garment not in search results"
// @Router /orders/select [post]
func (h *Handler) HandleSelect(c *fiber.Ctx) error {
	var req SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.SessionID == "" {
		req.SessionID = c.Get(session.Header)
	}

	item, err := h.service.Select(c.Context(), req.SessionID, req.ProductCode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"session_id": req.SessionID,
		"choice":     item,
		"label":      item.Label(),
	})
}

// HandleSubmit places an order.
// @Summary Submit Order
// @Description Places an order for the session's chosen garment, or for product_code when no session is given, and stores a confirmation for staff.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body Request true "Order"
// @Success 201 {object} Order
// @Failure 400 {object} ValidationError "Invalid customer details"
// @Failure 404 {object} map[string]string "Unknown session or garment"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.SessionID == "" && req.ProductCode == nil {
		req.SessionID = c.Get(session.Header)
	}

	o, err := h.service.Submit(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	logger.WithRayID(h.service.logger, c).Info("Order submitted", zap.String("order", o.ID))
	return c.Status(fiber.StatusCreated).JSON(o)
}

// HandleList returns recent orders.
// @Summary List Orders
// @Description Returns the most recent orders. Requires a database.
// @Tags orders
// @Produce json
// @Param limit query int false "Maximum number of orders" default(20)
// @Success 200 {array} Order
// @Failure 503 {object} map[string]string "No database configured"
// @Router /orders [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	if h.service.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "order history requires a database"})
	}
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 500 {
		limit = 20
	}
	orders, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(orders)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	case errors.Is(err, ErrNoSelection):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, garment.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, session.ErrNotInResults):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Order request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
