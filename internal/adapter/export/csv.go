package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"product_estimator/internal/domain/entities"
)

var csvHeader = []string{
	"id", "name", "customer_name", "email", "phone_number", "postcode", "status",
	"total_min", "total_max", "created_at", "updated_at", "rooms", "products",
}

// WriteEstimatesCSV writes one row per estimate. Totals are raw; rooms and
// products are pipe-joined.
func WriteEstimatesCSV(w io.Writer, estimates []entities.Estimate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range estimates {
		if err := cw.Write(estimateRow(e)); err != nil {
			return fmt.Errorf("write estimate %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func estimateRow(e entities.Estimate) []string {
	return []string{
		e.ID,
		e.Name,
		e.Customer.Name,
		e.Customer.Email,
		e.Customer.Phone,
		e.Customer.Postcode,
		string(e.Status),
		formatAmount(e.MinTotal),
		formatAmount(e.MaxTotal),
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
		roomsColumn(e.Rooms),
		productsColumn(e.Rooms),
	}
}

func roomsColumn(rooms []entities.Room) string {
	parts := make([]string, 0, len(rooms))
	for _, r := range rooms {
		parts = append(parts, fmt.Sprintf("%s (%sx%s)", r.Name, formatDimension(r.Width), formatDimension(r.Length)))
	}
	return strings.Join(parts, " | ")
}

func productsColumn(rooms []entities.Room) string {
	var parts []string
	for _, r := range rooms {
		for _, it := range r.Items {
			if it.Kind != entities.ItemKindProduct || it.Product == nil {
				continue
			}
			name := it.Product.Name
			if name == "" {
				name = it.Product.ProductID
			}
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " | ")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
