package interfaces

import (
	"context"

	"github.com/vanhub/vendor-node/internal/domain/entities"
)

// IInsightGenerator abstracts the external text-generation collaborator
// (e.g. Gemini).
//
// The vendor node hands it a read-only snapshot of orders and inventory and
// consumes a short natural-language summary. Prompt construction and the
// model call are the collaborator's business.
type IInsightGenerator interface {
	GenerateInsights(ctx context.Context, orders []entities.Order, inventory []entities.Product) (string, error)
}
