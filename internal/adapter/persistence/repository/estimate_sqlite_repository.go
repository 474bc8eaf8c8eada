package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"
)

const estimateColumns = `id, name, customer_name, email, phone_number, postcode, status,
	default_markup, notes, total_min, total_max, estimate_data, created_at, updated_at`

var estimateSortColumns = map[string]string{
	entities.SortByCreatedAt: "created_at",
	entities.SortByUpdatedAt: "updated_at",
	entities.SortByName:      "name COLLATE NOCASE",
	entities.SortByTotalMin:  "total_min",
	entities.SortByTotalMax:  "total_max",
}

// EstimateSQLiteRepository stores estimates in the relational schema created
// by the embedded migrations. The row layout mirrors the DynamoDB item.
type EstimateSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimateRepository = (*EstimateSQLiteRepository)(nil)

func NewEstimateSQLiteRepository(db *sql.DB) *EstimateSQLiteRepository {
	return &EstimateSQLiteRepository{db: db}
}

func (r *EstimateSQLiteRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO estimates (`+estimateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Name, it.CustomerName, it.Email, it.PhoneNumber, it.Postcode, it.Status,
		it.DefaultMarkup, it.Notes, it.MinTotal, it.MaxTotal, it.EstimateData, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE id = ?`, id)
	e, err := scanEstimate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Estimate{}, nil
	}
	return e, err
}

func (r *EstimateSQLiteRepository) Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE estimates SET
		name = ?, customer_name = ?, email = ?, phone_number = ?, postcode = ?, status = ?,
		default_markup = ?, notes = ?, total_min = ?, total_max = ?, estimate_data = ?,
		created_at = ?, updated_at = ?
		WHERE id = ?`,
		it.Name, it.CustomerName, it.Email, it.PhoneNumber, it.Postcode, it.Status,
		it.DefaultMarkup, it.Notes, it.MinTotal, it.MaxTotal, it.EstimateData,
		it.CreatedAt, it.UpdatedAt, it.ID,
	)
	if err != nil {
		return entities.Estimate{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateSQLiteRepository) UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus, updatedAt time.Time) (entities.Estimate, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE estimates SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(updatedAt), id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.Estimate{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *EstimateSQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EstimateSQLiteRepository) List(ctx context.Context, filter entities.EstimateListFilter) ([]entities.Estimate, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		where = append(where, `(LOWER(name) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(email) LIKE ?
			OR LOWER(phone_number) LIKE ? OR LOWER(postcode) LIKE ?)`)
		args = append(args, like, like, like, like, like)
	}

	query := `SELECT ` + estimateColumns + ` FROM estimates`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	column, ok := estimateSortColumns[filter.SortBy]
	if !ok {
		column = estimateSortColumns[entities.SortByCreatedAt]
	}
	dir := "ASC"
	if filter.Desc {
		dir = "DESC"
	}
	query += " ORDER BY " + column + " " + dir + ", id " + dir

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEstimate(row rowScanner) (entities.Estimate, error) {
	var it estimateItem
	err := row.Scan(
		&it.ID, &it.Name, &it.CustomerName, &it.Email, &it.PhoneNumber, &it.Postcode, &it.Status,
		&it.DefaultMarkup, &it.Notes, &it.MinTotal, &it.MaxTotal, &it.EstimateData, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}
