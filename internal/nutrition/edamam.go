package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"
)

const edamamBaseURL = "https://api.edamam.com/api/food-database/v2/parser"

// Edamam queries the Edamam food database parser endpoint.
type Edamam struct {
	appID   string
	appKey  string
	baseURL string
	client  *http.Client
}

func NewEdamam() *Edamam {
	return &Edamam{
		appID:   os.Getenv("EDAMAM_APP_ID"),
		appKey:  os.Getenv("EDAMAM_APP_KEY"),
		baseURL: edamamBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *Edamam) Name() string { return "edamam" }

type edamamParserResponse struct {
	Hints []struct {
		Food struct {
			Label     string             `json:"label"`
			Nutrients map[string]float64 `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

func (p *Edamam) Search(ctx context.Context, query string) ([]models.NutritionRecord, error) {
	if p.appID == "" || p.appKey == "" {
		return nil, ErrNotConfigured
	}

	u := fmt.Sprintf("%s?ingr=%s&app_id=%s&app_key=%s",
		p.baseURL, url.QueryEscape(query), p.appID, p.appKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Edamam request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Edamam parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr edamamParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Edamam parser JSON: %w", err)
	}

	// Edamam nutrient values are per 100 g of the parsed food.
	records := make([]models.NutritionRecord, 0, len(pr.Hints))
	for _, h := range pr.Hints {
		records = append(records, models.NutritionRecord{
			Name:        h.Food.Label,
			Calories:    h.Food.Nutrients["ENERC_KCAL"],
			Protein:     h.Food.Nutrients["PROCNT"],
			Carbs:       h.Food.Nutrients["CHOCDF"],
			Fat:         h.Food.Nutrients["FAT"],
			ServingSize: defaultServingSize,
		})
	}
	return records, nil
}
