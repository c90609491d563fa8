package queries

import (
	"context"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/db"
	"bayashop-backoffice/internal/infra/metrics"
	"bayashop-backoffice/internal/pkg/clock"
	"bayashop-backoffice/internal/usecase/shared"
)

//go:generate mockgen -source=promo.go -destination=../../../tests/mock/queries/promo.go -package=queriesmock

type ValidationResult struct {
	Valid     bool
	Reduction float64
	Message   string
}

type PromoQueries interface {
	List(ctx context.Context) ([]*promo.PromoCode, error)
	Validate(ctx context.Context, code string, productIDs []int64) (*ValidationResult, error)
}

type promoQueriesImpl struct {
	uow     shared.UnitOfWork
	store   shared.PromoCodeReadStore
	lookup  promo.CategoryLookup
	clock   clock.Clock
	metrics *metrics.PromoMetrics
}

func NewPromoQueries(
	uow shared.UnitOfWork,
	store shared.PromoCodeReadStore,
	lookup promo.CategoryLookup,
	clk clock.Clock,
	m *metrics.PromoMetrics,
) PromoQueries {
	return &promoQueriesImpl{
		uow:     uow,
		store:   store,
		lookup:  lookup,
		clock:   clk,
		metrics: m,
	}
}

func (q *promoQueriesImpl) List(ctx context.Context) ([]*promo.PromoCode, error) {
	var codes []*promo.PromoCode
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		var derr error
		codes, derr = q.store.ListAll(ctx, db)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// Validate returns a *promo.RejectedError for business-rule rejections and a
// plain error for storage faults.
func (q *promoQueriesImpl) Validate(ctx context.Context, code string, productIDs []int64) (*ValidationResult, error) {
	code = promo.NormalizeCode(code)

	var found *promo.PromoCode
	err := q.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		p, derr := q.store.FindByCode(ctx, db, code)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return nil
			}
			return derr
		}
		found = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	res, err := promo.Evaluate(ctx, promo.EligibilityInput{
		Promo:      found,
		Candidates: productIDs,
		Lookup:     q.lookup,
		Now:        q.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	q.metrics.ObserveValidation(res.Status.Reason())
	if !res.IsValid() {
		return nil, &promo.RejectedError{Status: res.Status}
	}
	return &ValidationResult{
		Valid:     true,
		Reduction: res.Reduction,
		Message:   res.Status.Message(),
	}, nil
}
