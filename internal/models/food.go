package models

// NutritionRecord is the canonical shape every nutrition provider's response
// is normalized into. It lives only for the duration of one search response;
// ID is scoped to that response and is not a durable identifier.
type NutritionRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"serving_size"`
}

// FoodLogEntry is one logged consumption. Rows are never updated or deleted.
// The timestamp is stored decomposed into wall-clock fields, captured at
// insert time.
type FoodLogEntry struct {
	ID       int     `json:"id" db:"id"`
	FoodName string  `json:"food_name" db:"food_name"`
	Calories float64 `json:"calories" db:"calories"`
	Protein  float64 `json:"protein" db:"protein"`
	Carbs    float64 `json:"carbs" db:"carbs"`
	Fat      float64 `json:"fat" db:"fat"`
	Month    int     `json:"month" db:"month"`
	Day      int     `json:"day" db:"day"`
	Year     int     `json:"year" db:"year"`
	Hour     int     `json:"hour" db:"hour"`
	Minute   int     `json:"minute" db:"minute"`
	UserID   int     `json:"user_id" db:"user_id"`
}
