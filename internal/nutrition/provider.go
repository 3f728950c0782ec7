package nutrition

import (
	"context"
	"errors"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"
)

// ErrNotConfigured marks a provider that cannot run because its credentials
// are absent. The resolver treats it like any other failure and moves on.
var ErrNotConfigured = errors.New("provider credentials not configured")

// Provider is a single source of nutrition data queried by free-text name.
// Search returns the provider's results already normalized into
// NutritionRecords. An empty slice with a nil error is a valid answer and
// means the provider looked and found nothing.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]models.NutritionRecord, error)
}

const defaultServingSize = 100
