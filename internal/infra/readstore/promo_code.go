package readstore

import (
	"context"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/db"
	"bayashop-backoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Each row carries its mapping sets as bigint arrays; an absent set is '{}'.
const selectPromoCodeSQL = `
SELECT
    pc.id,
    pc.code,
    pc.reduction,
    pc.start_date,
    pc.end_date,
    pc.active,
    pc.product_scope,
    pc.category_scope,
    COALESCE(
        (SELECT array_agg(m.product_id ORDER BY m.product_id)
         FROM promo_product_mapping m
         WHERE m.promo_id = pc.id), '{}'
    )::bigint[] AS product_ids,
    COALESCE(
        (SELECT array_agg(m.category_id ORDER BY m.category_id)
         FROM promo_category_mapping m
         WHERE m.promo_id = pc.id), '{}'
    )::bigint[] AS category_ids
FROM promo_codes pc`

const (
	listPromoCodesSQL      = selectPromoCodeSQL + ` ORDER BY pc.id`
	findPromoCodeByCodeSQL = selectPromoCodeSQL + ` WHERE pc.code = $1 ORDER BY pc.id LIMIT 1`
)

type PromoCodeReadStore struct{}

func NewPromoCodeReadStore() *PromoCodeReadStore {
	return &PromoCodeReadStore{}
}

func (r *PromoCodeReadStore) ListAll(ctx context.Context, db db.DBTX) ([]*promo.PromoCode, error) {
	rows, err := db.Query(ctx, listPromoCodesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promo codes", err)
	}
	defer rows.Close()

	result := make([]*promo.PromoCode, 0)
	for rows.Next() {
		p, err := scanPromoCode(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan promo code", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promo codes", err)
	}
	return result, nil
}

func (r *PromoCodeReadStore) FindByCode(ctx context.Context, db db.DBTX, code string) (*promo.PromoCode, error) {
	p, err := scanPromoCode(db.QueryRow(ctx, findPromoCodeByCodeSQL, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code by code", err)
	}
	return p, nil
}

func scanPromoCode(row pgx.Row) (*promo.PromoCode, error) {
	var (
		p             promo.PromoCode
		reduction     pgtype.Numeric
		startDate     pgtype.Timestamptz
		endDate       pgtype.Timestamptz
		productScope  string
		categoryScope string
		productIDs    []int64
		categoryIDs   []int64
	)
	err := row.Scan(
		&p.ID,
		&p.Code,
		&reduction,
		&startDate,
		&endDate,
		&p.Active,
		&productScope,
		&categoryScope,
		&productIDs,
		&categoryIDs,
	)
	if err != nil {
		return nil, err
	}

	if p.Reduction, err = pgconv.Float64FromNumeric(reduction); err != nil {
		return nil, err
	}
	if p.ProductScope, err = promo.NewScope(productScope); err != nil {
		return nil, err
	}
	if p.CategoryScope, err = promo.NewScope(categoryScope); err != nil {
		return nil, err
	}
	p.StartDate = pgconv.TimeFromPgtype(startDate)
	p.EndDate = pgconv.TimeFromPgtype(endDate)
	p.ProductIDs = promo.NewIDSet(productIDs)
	p.CategoryIDs = promo.NewIDSet(categoryIDs)

	return &p, nil
}
