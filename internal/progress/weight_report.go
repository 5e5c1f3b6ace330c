package progress

import "time"

// WeightReport is a single body weight measurement reported by the user.
type WeightReport struct {
	ID        int       `json:"id"`
	WeightKg  float64   `json:"weightKg"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListParams struct {
	Page int
	Size int
}
