package nutrition

import (
	"context"
	"strings"

	"github.com/shubham26-source/Nutri-Tracker-App/internal/models"
)

// offlineFoods is a small built-in reference set, values per 100 g. It keeps
// search working when no live provider is configured or reachable.
var offlineFoods = []models.NutritionRecord{
	{Name: "Apple, raw", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, ServingSize: 100},
	{Name: "Banana, raw", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, ServingSize: 100},
	{Name: "Orange, raw", Calories: 47, Protein: 0.9, Carbs: 11.8, Fat: 0.1, ServingSize: 100},
	{Name: "Chicken breast, cooked", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: 100},
	{Name: "White rice, cooked", Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, ServingSize: 100},
	{Name: "Egg, boiled", Calories: 155, Protein: 12.6, Carbs: 1.1, Fat: 10.6, ServingSize: 100},
	{Name: "Whole milk", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, ServingSize: 100},
	{Name: "Bread, white", Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, ServingSize: 100},
	{Name: "Broccoli, raw", Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, ServingSize: 100},
	{Name: "Salmon, cooked", Calories: 208, Protein: 20.4, Carbs: 0, Fat: 13.4, ServingSize: 100},
	{Name: "Potato, baked", Calories: 93, Protein: 2.5, Carbs: 21.2, Fat: 0.1, ServingSize: 100},
	{Name: "Oats, rolled, dry", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, ServingSize: 100},
	{Name: "Yogurt, plain", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, ServingSize: 100},
	{Name: "Peanut butter", Calories: 588, Protein: 25, Carbs: 20, Fat: 50, ServingSize: 100},
	{Name: "Cheddar cheese", Calories: 403, Protein: 24.9, Carbs: 1.3, Fat: 33.1, ServingSize: 100},
	{Name: "Ground beef, cooked", Calories: 250, Protein: 26, Carbs: 0, Fat: 15, ServingSize: 100},
	{Name: "Pasta, cooked", Calories: 131, Protein: 5, Carbs: 24.9, Fat: 1.1, ServingSize: 100},
	{Name: "Avocado, raw", Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7, ServingSize: 100},
}

// Offline matches queries against the built-in reference set. It is the last
// link in the fallback chain and never fails.
type Offline struct{}

func NewOffline() Offline { return Offline{} }

func (Offline) Name() string { return "offline" }

func (Offline) Search(_ context.Context, query string) ([]models.NutritionRecord, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]models.NutritionRecord, 0)
	for _, food := range offlineFoods {
		if strings.Contains(strings.ToLower(food.Name), needle) {
			matches = append(matches, food)
		}
	}
	return matches, nil
}
