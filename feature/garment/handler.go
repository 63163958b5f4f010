package garment

import (
	"errors"

	"garment-geek/core/catalog"
	"garment-geek/core/logger"
	"garment-geek/feature/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemView is an item together with its rendered description.
type ItemView struct {
	catalog.Item
	Information string `json:"information"`
}

// SearchResponse is returned by the search endpoint.
type SearchResponse struct {
	SessionID string     `json:"session_id"`
	Count     int        `json:"count"`
	Results   []ItemView `json:"results"`
}

func newItemViews(items []catalog.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{Item: item, Information: Describe(item)})
	}
	return views
}

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service  *Service
	sessions *session.Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sessions *session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/garments")
	group.Get("/options", h.HandleOptions)
	group.Get("/brands", h.HandleBrands)
	group.Get("/price-range", h.HandlePriceRange)
	group.Post("/search", h.HandleSearch)
	group.Post("/reload", h.HandleReload)
	group.Get("/:code", h.HandleGet)
}

// HandleOptions lists the selectable search values.
// @Summary Search Options
// @Description Lists every garment type, size and attribute value with its display name, plus the inventory's brands and highest price.
// @Tags garments
// @Produce json
// @Success 200 {object} Options
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /garments/options [get]
func (h *Handler) HandleOptions(c *fiber.Ctx) error {
	opts, err := h.service.Options(c.Context())
	if err != nil {
		return h.internalError(c, "Failed to list options", err)
	}
	return c.JSON(opts)
}

// HandleBrands lists the brands in stock.
// @Summary List Brands
// @Description Returns every distinct brand in the inventory, sorted.
// @Tags garments
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /garments/brands [get]
func (h *Handler) HandleBrands(c *fiber.Ctx) error {
	brands, err := h.service.Brands(c.Context())
	if err != nil {
		return h.internalError(c, "Failed to list brands", err)
	}
	return c.JSON(fiber.Map{"brands": brands})
}

// HandlePriceRange returns the searchable price span.
// @Summary Price Range
// @Description Returns 0 and the highest price in the inventory.
// @Tags garments
// @Produce json
// @Success 200 {object} PriceRange
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /garments/price-range [get]
func (h *Handler) HandlePriceRange(c *fiber.Ctx) error {
	pr, err := h.service.PriceRange(c.Context())
	if err != nil {
		return h.internalError(c, "Failed to compute price range", err)
	}
	return c.JSON(pr)
}

// HandleGet returns a single garment.
// @Summary Get Garment
// @Description Returns the garment with the given product code.
// @Tags garments
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} ItemView
// @Failure 400 {object} map[string]string "Invalid product code"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /garments/{code} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	code, err := catalog.ParseProductCode(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	item, err := h.service.Get(c.Context(), code)
	if errors.Is(err, ErrItemNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.internalError(c, "Failed to get garment", err)
	}
	return c.JSON(ItemView{Item: item, Information: Describe(item)})
}

// HandleSearch runs a catalog search and stores the results in the shopper's session.
// @Summary Search Garments
// @Description Returns every garment matching the request. The results are kept in the session named by the X-Session-ID header; a new session is started when the header is absent or unknown.
// @Tags garments
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param request body SearchRequest true "Search request"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ValidationError "Invalid search"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /garments/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	matches, err := h.service.Search(c.Context(), req)
	var verr *ValidationError
	if errors.As(err, &verr) {
		l.Debug("Rejected search", zap.String("field", verr.Field), zap.String("reason", verr.Message))
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	if err != nil {
		return h.internalError(c, "Search failed", err)
	}

	sess := h.sessions.SetResults(c.Get(session.Header), matches)
	c.Set(session.Header, sess.ID)
	l.Info("Search completed", zap.String("session", sess.ID), zap.Int("matches", len(matches)))

	return c.JSON(SearchResponse{
		SessionID: sess.ID,
		Count:     len(matches),
		Results:   newItemViews(matches),
	})
}

// HandleReload reloads the inventory from its source.
// @Summary Reload Inventory
// @Description Reloads the inventory immediately. Skipped records are reported when skip_invalid is enabled.
// @Tags garments
// @Produce json
// @Success 200 {object} map[string]interface{} "Reload Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /garments/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	result, err := h.service.Reload(c.Context())
	if err != nil {
		return h.internalError(c, "Reload failed", err)
	}
	skipped := make([]string, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, s.Error())
	}
	return c.JSON(fiber.Map{
		"status":  "reloaded",
		"version": result.Version,
		"items":   result.Inventory.Len(),
		"skipped": skipped,
	})
}

func (h *Handler) internalError(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
