package intent

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/wichananm65/fashion-marketplace-backend/internal/identity"
	"github.com/wichananm65/fashion-marketplace-backend/internal/stylecontext"
)

// Handler serves the stylist chat: parsed intent is merged into the
// caller's draft, never into the applied context.
type Handler struct {
	store *stylecontext.Store
}

func NewHandler(store *stylecontext.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/intent", h.parse)
}

type intentRequest struct {
	Text string `json:"text"`
}

type intentResponse struct {
	Parsed  stylecontext.Partial `json:"parsed"`
	Matched bool                 `json:"matched"`
	Session stylecontext.View    `json:"session"`
}

func (h *Handler) parse(c *fiber.Ctx) error {
	buyerID, err := identity.BuyerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(intentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "text is required"})
	}

	parsed := Parse(payload.Text)
	sess := h.store.SetDraft(buyerID, parsed)
	log.Debugw("intent parsed", "buyer", buyerID, "matched", !parsed.IsEmpty())

	return c.JSON(intentResponse{
		Parsed:  parsed,
		Matched: !parsed.IsEmpty(),
		Session: sess.View(),
	})
}
