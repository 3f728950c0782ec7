package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"
)

const calorieNinjasBaseURL = "https://api.calorieninjas.com/v1/nutrition"

// CalorieNinjas queries the CalorieNinjas nutrition API.
type CalorieNinjas struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewCalorieNinjas reads its API key from the environment. A missing key is
// not fatal here; Search reports ErrNotConfigured so the resolver can fall
// back.
func NewCalorieNinjas() *CalorieNinjas {
	return &CalorieNinjas{
		apiKey:  os.Getenv("CALORIE_NINJAS_KEY"),
		baseURL: calorieNinjasBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *CalorieNinjas) Name() string { return "calorieninjas" }

type ninjasResponse struct {
	Items []struct {
		Name                string  `json:"name"`
		Calories            float64 `json:"calories"`
		ProteinG            float64 `json:"protein_g"`
		CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
		FatTotalG           float64 `json:"fat_total_g"`
		ServingSizeG        float64 `json:"serving_size_g"`
	} `json:"items"`
}

func (p *CalorieNinjas) Search(ctx context.Context, query string) ([]models.NutritionRecord, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	u := fmt.Sprintf("%s?query=%s", p.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create CalorieNinjas request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call CalorieNinjas API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read CalorieNinjas response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calorieninjas API error %d: %s", resp.StatusCode, string(body))
	}

	var nr ninjasResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse CalorieNinjas JSON: %w", err)
	}

	records := make([]models.NutritionRecord, 0, len(nr.Items))
	for _, item := range nr.Items {
		serving := item.ServingSizeG
		if serving == 0 {
			serving = defaultServingSize
		}
		records = append(records, models.NutritionRecord{
			Name:        capitalize(item.Name),
			Calories:    item.Calories,
			Protein:     item.ProteinG,
			Carbs:       item.CarbohydratesTotalG,
			Fat:         item.FatTotalG,
			ServingSize: serving,
		})
	}
	return records, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
