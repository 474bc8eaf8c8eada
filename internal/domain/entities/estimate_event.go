package entities

import "time"

type EstimateEventType string

const (
	EstimateEventSaved         EstimateEventType = "estimate.saved"
	EstimateEventUpdated       EstimateEventType = "estimate.updated"
	EstimateEventStatusChanged EstimateEventType = "estimate.status_changed"
	EstimateEventDeleted       EstimateEventType = "estimate.deleted"
)

// EstimateEvent is published after an estimate write succeeds. Totals are raw.
type EstimateEvent struct {
	Type       EstimateEventType `json:"type"`
	EstimateID string            `json:"estimate_id"`
	Name       string            `json:"name,omitempty"`
	Email      string            `json:"email,omitempty"`
	Status     EstimateStatus    `json:"status,omitempty"`
	MinTotal   float64           `json:"total_min"`
	MaxTotal   float64           `json:"total_max"`
	OccurredAt time.Time         `json:"occurred_at"`
}
