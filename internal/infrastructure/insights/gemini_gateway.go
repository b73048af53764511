package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/vanhub/vendor-node/internal/domain/entities"
	"github.com/vanhub/vendor-node/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

// GeminiGateway generates vendor insights with the Gemini API. With mockMode
// enabled it produces a canned summary locally, so the console works without
// credentials (demo/tests).
type GeminiGateway struct {
	client   *genai.Client
	model    string
	mockMode bool
}

var _ interfaces.IInsightGenerator = (*GeminiGateway)(nil)

func NewGeminiGateway(ctx context.Context, apiKey, model string, mockMode bool) (*GeminiGateway, error) {
	if mockMode {
		log.Info("[insights][gateway] mock mode enabled")
		return &GeminiGateway{mockMode: true, model: model}, nil
	}

	if apiKey == "" {
		log.Warn("[insights][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}
	log.Info("[insights][gateway] Gemini client initialized")

	return &GeminiGateway{client: client, model: model}, nil
}

func (g *GeminiGateway) GenerateInsights(ctx context.Context, orders []entities.Order, inventory []entities.Product) (string, error) {
	if g != nil && g.mockMode {
		return mockSummary(orders, inventory), nil
	}
	if g == nil || g.client == nil {
		return "", errors.New("insight gateway not configured")
	}

	prompt := buildPrompt(orders, inventory)
	log.WithFields(log.Fields{"orders": len(orders), "products": len(inventory)}).
		Info("[insights][gateway] generate start")

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithField("err", err).Warn("[insights][gateway] generate failed")
		return "", errors.Wrap(err, "gemini generate content")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty model response")
	}
	log.WithField("chars", len(text)).Info("[insights][gateway] generate success")
	return text, nil
}

// buildPrompt renders the read-only snapshot into the operations-assistant
// prompt. The model sees counts and highlights, never customer phone numbers.
func buildPrompt(orders []entities.Order, inventory []entities.Product) string {
	var b strings.Builder
	b.WriteString("You are an operations assistant for a last-mile delivery vendor node.\n")
	b.WriteString("Summarize store performance in 3 short bullet points with concrete, actionable advice.\n\n")

	b.WriteString("Orders:\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "- %s [%s] %d items, total %.2f\n", o.ID, o.Status, len(o.Items), o.TotalAmount)
	}

	b.WriteString("\nInventory:\n")
	for _, p := range inventory {
		fmt.Fprintf(&b, "- %s (%s) [%s] price %.2f\n", p.Name, p.Category, p.Status, p.Price)
	}
	return b.String()
}

func mockSummary(orders []entities.Order, inventory []entities.Product) string {
	active, completed := 0, 0
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusCompleted:
			completed++
		case entities.OrderStatusCancelled:
		default:
			active++
		}
	}
	blocked := 0
	for _, p := range inventory {
		if p.Status == entities.StockStatusOutOfStock {
			blocked++
		}
	}
	return fmt.Sprintf(
		"- %d active orders in the pipeline; %d completed this session.\n"+
			"- %d of %d catalog items are blocked for new orders.\n"+
			"- Keep READY orders moving: riders wait on average when pickups stall.",
		active, completed, blocked, len(inventory))
}
