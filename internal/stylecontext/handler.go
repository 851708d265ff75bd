package stylecontext

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/fashion-marketplace-backend/internal/identity"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/style-context", h.getContext)
	app.Patch("/api/v1/style-context/draft", h.setDraft)
	app.Post("/api/v1/style-context/apply", h.apply)
	app.Delete("/api/v1/style-context", h.reset)
}

func (h *Handler) getContext(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.store.Get(buyerID).View())
}

func (h *Handler) setDraft(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	var p Partial
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validatePartial(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	return c.JSON(h.store.SetDraft(buyerID, p).View())
}

func (h *Handler) apply(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.store.Apply(buyerID).View())
}

func (h *Handler) reset(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.store.Reset(buyerID).View())
}

func validatePartial(p Partial) map[string]string {
	errs := map[string]string{}
	if !p.Occasion.Valid() {
		errs["occasion"] = "occasion must be one of wedding, party, office, casual"
	}
	if !p.StyleOverride.Valid() {
		errs["styleOverride"] = "styleOverride must be one of traditional, classic, streetwear"
	}
	return errs
}
