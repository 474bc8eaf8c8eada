package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - draft estimates live on the client (local storage) and have no ID yet.
//   - saving an estimate assigns an ID and moves it to saved.
//   - converted marks an estimate that turned into an order.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSaved     EstimateStatus = "saved"
	EstimateStatusConverted EstimateStatus = "converted"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSaved, EstimateStatusConverted:
		return true
	}
	return false
}

// Customer holds the contact fields captured with an estimate.
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
	Postcode string `json:"postcode"`
}

// Estimate is the aggregate root of the estimator.
//
// Storage model:
//   - rooms are serialized as a single JSON document (estimate_data).
//   - name, customer fields, status, totals and timestamps are flattened into
//     scalar columns for listing and sorting.
//
// Monetary representation:
//   - MinTotal/MaxTotal are raw totals (markup never applied). They are a
//     denormalized copy of what the pricing core computes from Rooms.
type Estimate struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Customer      Customer       `json:"customer"`
	Status        EstimateStatus `json:"status"`
	DefaultMarkup float64        `json:"default_markup"`
	Notes         string         `json:"notes"`
	Rooms         []Room         `json:"rooms"`
	MinTotal      float64        `json:"total_min"`
	MaxTotal      float64        `json:"total_max"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// RoomIndex returns the index of the room with the given id, or -1.
func (e *Estimate) RoomIndex(roomID string) int {
	for i := range e.Rooms {
		if e.Rooms[i].ID == roomID {
			return i
		}
	}
	return -1
}

// EstimateSummary is the flat row used by admin listings and exports.
type EstimateSummary struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Customer  Customer       `json:"customer"`
	Status    EstimateStatus `json:"status"`
	MinTotal  float64        `json:"total_min"`
	MaxTotal  float64        `json:"total_max"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (e Estimate) Summary() EstimateSummary {
	return EstimateSummary{
		ID:        e.ID,
		Name:      e.Name,
		Customer:  e.Customer,
		Status:    e.Status,
		MinTotal:  e.MinTotal,
		MaxTotal:  e.MaxTotal,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EstimateListFilter narrows and orders an admin listing.
type EstimateListFilter struct {
	Status EstimateStatus
	Search string
	SortBy string
	Desc   bool
}

const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByName      = "name"
	SortByTotalMin  = "total_min"
	SortByTotalMax  = "total_max"
)

func (f EstimateListFilter) ValidSort() bool {
	switch f.SortBy {
	case SortByCreatedAt, SortByUpdatedAt, SortByName, SortByTotalMin, SortByTotalMax:
		return true
	}
	return false
}
