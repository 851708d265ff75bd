package catalog

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type Handler struct {
	service    *Service
	allowReset bool
}

func NewHandler(service *Service, allowReset bool) *Handler {
	return &Handler{service: service, allowReset: allowReset}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:id", h.getProduct)

	// dev-only endpoint to reset products, enabled when ALLOW_RESET_PRODUCTS=1
	app.Post("/dev/reset-products", h.resetProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.ActiveProducts(c.UserContext())
	if err != nil {
		log.Errorw("list products failed", "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "catalog unavailable"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	parsed, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	// stored ids are canonical lowercase
	id := parsed.String()

	p, err := h.service.GetActive(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		log.Errorw("get product failed", "id", id, "err", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "catalog unavailable"})
	}
	return c.JSON(p)
}

// resetProducts clears the catalog and inserts the provided list (or a default sample list).
// If parsing succeeds and the client sends an empty array, the catalog is just emptied.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	if !h.allowReset {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "reset not allowed"})
	}

	var products []Product
	if err := c.BodyParser(&products); err != nil {
		products = SampleProducts()
	}
	if ves := validateProducts(products); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	stored, err := h.service.ResetProducts(c.UserContext(), products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	log.Infow("catalog reset", "count", len(stored))
	return c.JSON(stored)
}

func validateProducts(products []Product) map[string]string {
	errs := map[string]string{}
	for i, p := range products {
		if p.Name == "" {
			errs[fieldKey(i, "name")] = "name is required"
		}
		if p.SellerID == "" {
			errs[fieldKey(i, "sellerId")] = "sellerId is required"
		}
		if p.ID != "" {
			if _, err := uuid.Parse(p.ID); err != nil {
				errs[fieldKey(i, "id")] = "id must be a uuid"
			}
		}
	}
	return errs
}

func fieldKey(i int, field string) string {
	return "products[" + strconv.Itoa(i) + "]." + field
}

// SampleProducts is the default seed used by the dev reset endpoint.
func SampleProducts() []Product {
	seller := "0b6f2d4c-3a8e-4f3b-9d61-2c7e5a1f8b90"
	return []Product{
		{Name: "Silk Banarasi Saree", Category: "Ethnic", Colors: []string{"maroon"}, Sizes: []string{"free"}, SellerID: seller},
		{Name: "Linen Office Blazer", Category: "Outerwear", Colors: []string{"navy"}, Sizes: []string{"M"}, SellerID: seller},
		{Name: "Oversized Graphic Tee", Category: "Tops", Colors: []string{"black"}, Sizes: []string{"L"}, SellerID: seller},
		{Name: "Sequin Party Dress", Category: "Dresses", Colors: []string{"gold"}, Sizes: []string{"S"}, SellerID: seller},
	}
}
