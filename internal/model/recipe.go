package model

// DefaultCuisine stands in for recipes without a cuisine row
const DefaultCuisine = "Unknown"

// Recipe is one row of the recipe listing query. Cuisine is nil when the
// recipe has no matching cuisine.
type Recipe struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PrepTime    int     `json:"prep_time"`
	CookTime    int     `json:"cook_time"`
	Difficulty  string  `json:"difficulty"`
	Cuisine     *string `json:"cuisine"`
}

// TotalTime returns prep plus cook time in minutes
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// CuisineOrDefault returns the cuisine name or DefaultCuisine
func (r Recipe) CuisineOrDefault() string {
	if r.Cuisine == nil {
		return DefaultCuisine
	}
	return *r.Cuisine
}
