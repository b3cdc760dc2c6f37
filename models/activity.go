package models

// Activity is a user-defined trackable behavior with a daily goal.
// The ID is opaque and stable across edits; Icon is derived from Unit.
type Activity struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Icon string  `json:"icon"`
	Goal float64 `json:"goal"`
}
