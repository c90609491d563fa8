package repository

import (
	"context"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/db"
)

const (
	deleteProductMappingsSQL  = `DELETE FROM promo_product_mapping WHERE promo_id = $1`
	deleteCategoryMappingsSQL = `DELETE FROM promo_category_mapping WHERE promo_id = $1`

	insertProductMappingsSQL = `
INSERT INTO promo_product_mapping (promo_id, product_id)
SELECT $1, unnest($2::bigint[])`

	insertCategoryMappingsSQL = `
INSERT INTO promo_category_mapping (promo_id, category_id)
SELECT $1, unnest($2::bigint[])`
)

// PromoMappingRepository owns the two scope-mapping tables. It never opens a
// transaction itself; callers pass the transaction handle.
type PromoMappingRepository struct{}

func NewPromoMappingRepository() *PromoMappingRepository {
	return &PromoMappingRepository{}
}

func (r *PromoMappingRepository) ReplaceProductMappings(ctx context.Context, tx db.DBTX, promoID int64, productIDs promo.IDSet) error {
	if _, err := tx.Exec(ctx, deleteProductMappingsSQL, promoID); err != nil {
		return infra.WrapRepoErr("failed to clear product mappings", err)
	}
	if productIDs.IsEmpty() {
		return nil
	}
	if _, err := tx.Exec(ctx, insertProductMappingsSQL, promoID, productIDs.Slice()); err != nil {
		return infra.WrapRepoErr("failed to insert product mappings", err)
	}
	return nil
}

func (r *PromoMappingRepository) ReplaceCategoryMappings(ctx context.Context, tx db.DBTX, promoID int64, categoryIDs promo.IDSet) error {
	if _, err := tx.Exec(ctx, deleteCategoryMappingsSQL, promoID); err != nil {
		return infra.WrapRepoErr("failed to clear category mappings", err)
	}
	if categoryIDs.IsEmpty() {
		return nil
	}
	if _, err := tx.Exec(ctx, insertCategoryMappingsSQL, promoID, categoryIDs.Slice()); err != nil {
		return infra.WrapRepoErr("failed to insert category mappings", err)
	}
	return nil
}

// DeleteAllMappings returns the total number of mapping rows removed.
func (r *PromoMappingRepository) DeleteAllMappings(ctx context.Context, tx db.DBTX, promoID int64) (int64, error) {
	products, err := tx.Exec(ctx, deleteProductMappingsSQL, promoID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete product mappings", err)
	}
	categories, err := tx.Exec(ctx, deleteCategoryMappingsSQL, promoID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete category mappings", err)
	}
	return products.RowsAffected() + categories.RowsAffected(), nil
}
