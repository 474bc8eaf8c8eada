package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"product_estimator/internal/domain/entities"
	"product_estimator/internal/usecase/interfaces"
)

const categoryRelationColumns = `id, source_category, relation_type, target_category, product_id, created_at`

// CategoryRelationSQLiteRepository stores rules with source categories kept
// as a JSON array.
type CategoryRelationSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ICategoryRelationRepository = (*CategoryRelationSQLiteRepository)(nil)

func NewCategoryRelationSQLiteRepository(db *sql.DB) *CategoryRelationSQLiteRepository {
	return &CategoryRelationSQLiteRepository{db: db}
}

func (r *CategoryRelationSQLiteRepository) Create(ctx context.Context, rel entities.CategoryRelation) (entities.CategoryRelation, error) {
	sources, err := json.Marshal(rel.SourceCategories)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO category_relations (`+categoryRelationColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		rel.ID, string(sources), string(rel.RelationType), rel.TargetCategory, rel.ProductID, formatTime(rel.CreatedAt))
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	return rel, nil
}

func (r *CategoryRelationSQLiteRepository) GetByID(ctx context.Context, id string) (entities.CategoryRelation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+categoryRelationColumns+` FROM category_relations WHERE id = ?`, id)
	rel, err := scanCategoryRelation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CategoryRelation{}, nil
	}
	return rel, err
}

// List returns every rule in registration order.
func (r *CategoryRelationSQLiteRepository) List(ctx context.Context) ([]entities.CategoryRelation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+categoryRelationColumns+` FROM category_relations ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.CategoryRelation
	for rows.Next() {
		rel, err := scanCategoryRelation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}

func (r *CategoryRelationSQLiteRepository) Update(ctx context.Context, rel entities.CategoryRelation) (entities.CategoryRelation, error) {
	sources, err := json.Marshal(rel.SourceCategories)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE category_relations SET
		source_category = ?, relation_type = ?, target_category = ?, product_id = ?, created_at = ?
		WHERE id = ?`,
		string(sources), string(rel.RelationType), rel.TargetCategory, rel.ProductID, formatTime(rel.CreatedAt), rel.ID)
	if err != nil {
		return entities.CategoryRelation{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.CategoryRelation{}, err
	}
	return rel, nil
}

func (r *CategoryRelationSQLiteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM category_relations WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanCategoryRelation(row rowScanner) (entities.CategoryRelation, error) {
	var (
		it      categoryRelationItem
		sources string
	)
	if err := row.Scan(&it.ID, &sources, &it.RelationType, &it.TargetCategory, &it.ProductID, &it.CreatedAt); err != nil {
		return entities.CategoryRelation{}, err
	}
	if err := json.Unmarshal([]byte(sources), &it.SourceCategories); err != nil {
		return entities.CategoryRelation{}, err
	}
	return fromCategoryRelationItem(it), nil
}
