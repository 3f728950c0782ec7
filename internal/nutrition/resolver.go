package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"

	"go.uber.org/zap"
)

// ErrProvidersExhausted means every provider in the chain failed. With the
// offline provider last this only happens when the chain is misconfigured.
var ErrProvidersExhausted = errors.New("no nutrition provider could serve the query")

// Resolver turns a free-text query into normalized nutrition records by
// walking an ordered provider chain. The first provider that answers without
// error wins, even when its answer is empty; failures are logged and absorbed.
type Resolver struct {
	providers []Provider
	logger    *zap.Logger
}

func NewResolver(logger *zap.Logger, providers ...Provider) *Resolver {
	return &Resolver{providers: providers, logger: logger}
}

// DefaultChain builds the production chain: CalorieNinjas, then Edamam, then
// the built-in offline set.
func DefaultChain(logger *zap.Logger) *Resolver {
	return NewResolver(logger, NewCalorieNinjas(), NewEdamam(), NewOffline())
}

func (r *Resolver) Search(ctx context.Context, query string) ([]models.NutritionRecord, error) {
	for _, p := range r.providers {
		records, err := p.Search(ctx, query)
		if err != nil {
			r.logger.Warn("nutrition provider failed, falling back",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}
		return tagRecords(records), nil
	}
	return nil, ErrProvidersExhausted
}

// tagRecords assigns each record its response-scoped id so clients can refer
// to a specific row of this response. Not a durable identifier.
func tagRecords(records []models.NutritionRecord) []models.NutritionRecord {
	if records == nil {
		return []models.NutritionRecord{}
	}
	for i := range records {
		records[i].ID = fmt.Sprintf("%s-%d", records[i].Name, i)
	}
	return records
}
