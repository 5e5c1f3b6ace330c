package plans

import (
	"time"

	"github.com/enclave-health/fitplan/internal/eval"
)

// PlanRecord is a stored evaluation result: the plan the engine produced
// for a profile, with its DB identity.
type PlanRecord struct {
	ID        int                   `json:"id"`
	ProfileID int                   `json:"profileId"`
	Plan      eval.PersonalizedPlan `json:"plan"`
	CreatedAt time.Time             `json:"createdAt"`
}

// SyncRecord is one entry of the client sync log. The log is append-only
// and is never flushed or merged anywhere - it only gets read back out.
type SyncRecord struct {
	ID         int       `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   int       `json:"entityId"`
	Operation  string    `json:"operation"`
	CreatedAt  time.Time `json:"createdAt"`
}

const (
	SyncEntityProfile = "profile"
	SyncEntityPlan    = "plan"

	SyncOpCreate = "create"
)
