package repository

import (
	"context"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/db"
	"bayashop-backoffice/internal/pkg/pgconv"
)

const (
	insertPromoCodeSQL = `
INSERT INTO promo_codes (code, reduction, start_date, end_date, active, product_scope, category_scope)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	updatePromoCodeSQL = `
UPDATE promo_codes
SET code = $2, reduction = $3, start_date = $4, end_date = $5, active = $6,
    product_scope = $7, category_scope = $8, updated_at = now()
WHERE id = $1`

	deletePromoCodeSQL = `DELETE FROM promo_codes WHERE id = $1`
)

type PromoCodeRepository struct{}

func NewPromoCodeRepository() *PromoCodeRepository {
	return &PromoCodeRepository{}
}

func (r *PromoCodeRepository) Insert(ctx context.Context, tx db.DBTX, draft *promo.Draft) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertPromoCodeSQL,
		draft.Code,
		draft.Reduction,
		pgconv.TimeToPgtype(draft.StartDate),
		pgconv.TimeToPgtype(draft.EndDate),
		draft.Active,
		draft.ProductScope.String(),
		draft.CategoryScope.String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert promo code", err)
	}
	return id, nil
}

// Update returns the number of rows touched; zero means the id does not exist.
func (r *PromoCodeRepository) Update(ctx context.Context, tx db.DBTX, id int64, draft *promo.Draft) (int64, error) {
	tag, err := tx.Exec(ctx, updatePromoCodeSQL,
		id,
		draft.Code,
		draft.Reduction,
		pgconv.TimeToPgtype(draft.StartDate),
		pgconv.TimeToPgtype(draft.EndDate),
		draft.Active,
		draft.ProductScope.String(),
		draft.CategoryScope.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update promo code", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PromoCodeRepository) Delete(ctx context.Context, tx db.DBTX, id int64) (int64, error) {
	tag, err := tx.Exec(ctx, deletePromoCodeSQL, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete promo code", err)
	}
	return tag.RowsAffected(), nil
}
