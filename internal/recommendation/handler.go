package recommendation

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/wichananm65/fashion-marketplace-backend/internal/identity"
)

const defaultLimit = 12

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/recommendations", h.getRecommendations)
	app.Get("/api/v1/recommendations/:id", h.getRecommendation)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	// support pagination: ?limit=12&offset=0, applied after ranking
	limit := defaultLimit
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	items, err := h.service.ForBuyer(c.UserContext(), buyerID)
	if err != nil {
		log.Errorw("recommendations failed", "buyer", buyerID, "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "catalog unavailable"})
	}
	return c.JSON(page(items, limit, offset))
}

func (h *Handler) getRecommendation(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	parsed, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	// stored ids are canonical lowercase
	id := parsed.String()

	d, err := h.service.DetailForBuyer(c.UserContext(), buyerID, id)
	if err != nil {
		if errors.Is(err, ErrNotRecommended) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		log.Errorw("recommendation detail failed", "buyer", buyerID, "id", id, "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "catalog unavailable"})
	}
	return c.JSON(d)
}

func page(items []Item, limit, offset int) []Item {
	if offset >= len(items) {
		return []Item{}
	}
	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
