package readstore

import (
	"context"

	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/db"
)

const categoriesOfProductSQL = `SELECT category_id FROM product_categories WHERE product_id = $1`

// ProductCategoryReadStore reads catalog membership; the table belongs to the
// catalog and is never written here.
type ProductCategoryReadStore struct {
	db db.DBTX
}

func NewProductCategoryReadStore(db db.DBTX) *ProductCategoryReadStore {
	return &ProductCategoryReadStore{db: db}
}

func (r *ProductCategoryReadStore) CategoriesOf(ctx context.Context, productID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, categoriesOfProductSQL, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to look up product categories", err)
	}
	defer rows.Close()

	var categories []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product category", err)
		}
		categories = append(categories, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product categories", err)
	}
	return categories, nil
}
