package stylecontext

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// makeAppWithHandler injects a jwt.Token into locals when X-Buyer-ID is set,
// standing in for the jwt middleware.
func makeAppWithHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Buyer-ID"); v != "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": v}})
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func decodeView(t *testing.T, body io.Reader) View {
	t.Helper()
	var v View
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		t.Fatalf("failed to decode view: %v", err)
	}
	return v
}

func TestStyleContextRoutes_DraftApplyReset(t *testing.T) {
	store := NewStore()
	app := makeAppWithHandler(NewHandler(store))

	// unauthenticated
	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/style-context", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without buyer, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("PATCH", "/api/v1/style-context/draft", strings.NewReader(`{"occasion":"wedding","styleOverride":"traditional"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Buyer-ID", "buyer-1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("draft request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on draft, got %d", res.StatusCode)
	}
	v := decodeView(t, res.Body)
	if v.Draft.Occasion != OccasionWedding || !v.IsDirty || v.HasApplied {
		t.Fatalf("unexpected view after draft: %+v", v)
	}
	if !store.Applied("buyer-1").IsEmpty() {
		t.Fatalf("draft update leaked into applied context")
	}

	req2 := httptest.NewRequest("POST", "/api/v1/style-context/apply", nil)
	req2.Header.Set("X-Buyer-ID", "buyer-1")
	res2, _ := app.Test(req2)
	v2 := decodeView(t, res2.Body)
	if res2.StatusCode != fiber.StatusOK || v2.IsDirty || !v2.HasApplied || v2.Applied.StyleOverride != StyleTraditional {
		t.Fatalf("unexpected view after apply (%d): %+v", res2.StatusCode, v2)
	}

	req3 := httptest.NewRequest("DELETE", "/api/v1/style-context", nil)
	req3.Header.Set("X-Buyer-ID", "buyer-1")
	res3, _ := app.Test(req3)
	v3 := decodeView(t, res3.Body)
	if !v3.Draft.IsEmpty() || !v3.Applied.IsEmpty() {
		t.Fatalf("expected empty session after reset, got %+v", v3)
	}
}

func TestStyleContextRoutes_RejectsUnknownEnums(t *testing.T) {
	app := makeAppWithHandler(NewHandler(NewStore()))

	req := httptest.NewRequest("PATCH", "/api/v1/style-context/draft", strings.NewReader(`{"occasion":"gala","styleOverride":"boho"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Buyer-ID", "buyer-2")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown enums, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "occasion") || !strings.Contains(string(b), "styleOverride") {
		t.Fatalf("expected both fields reported, got %s", string(b))
	}
}
