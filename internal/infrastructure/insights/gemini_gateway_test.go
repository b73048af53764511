package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vanhub/vendor-node/internal/domain/entities"
)

func TestNewGeminiGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("missing api key", func(t *testing.T) {
		_, err := NewGeminiGateway(ctx, "", "gemini-2.0-flash", false)
		if !errors.Is(err, ErrMissingGeminiAPIKey) {
			t.Fatalf("expected ErrMissingGeminiAPIKey, got %v", err)
		}
	})

	t.Run("mock mode needs no credentials", func(t *testing.T) {
		g, err := NewGeminiGateway(ctx, "", "gemini-2.0-flash", true)
		if err != nil {
			t.Fatalf("mock gateway failed: %v", err)
		}
		if g == nil || !g.mockMode {
			t.Fatal("expected mock-mode gateway")
		}
	})
}

func TestGeminiGateway_GenerateInsights_Mock(t *testing.T) {
	ctx := context.Background()
	g, err := NewGeminiGateway(ctx, "", "gemini-2.0-flash", true)
	if err != nil {
		t.Fatalf("mock gateway failed: %v", err)
	}

	orders := []entities.Order{
		{ID: "ord-1", Status: entities.OrderStatusPending},
		{ID: "ord-2", Status: entities.OrderStatusCompleted},
		{ID: "ord-3", Status: entities.OrderStatusCancelled},
	}
	inventory := []entities.Product{
		{ID: "p-1", Name: "Organic Tomatoes", Status: entities.StockStatusInStock},
		{ID: "p-2", Name: "Alphonso Mangoes", Status: entities.StockStatusOutOfStock},
	}

	text, err := g.GenerateInsights(ctx, orders, inventory)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(text, "1 active orders") || !strings.Contains(text, "1 of 2") {
		t.Fatalf("unexpected summary: %q", text)
	}
}

func TestBuildPrompt(t *testing.T) {
	orders := []entities.Order{
		{ID: "ord-1", Status: entities.OrderStatusReady, TotalAmount: 200,
			Items: []entities.OrderItem{{ProductID: "p-1", Quantity: 2, Price: 100}}},
	}
	inventory := []entities.Product{
		{ID: "p-1", Name: "Paneer 200g", Category: "Dairy", Price: 90, Status: entities.StockStatusLowStock},
	}

	prompt := buildPrompt(orders, inventory)
	for _, want := range []string{"ord-1", "READY", "Paneer 200g", "LOW_STOCK"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
