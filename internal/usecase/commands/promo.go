package commands

import (
	"context"
	"time"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra/metrics"
	"bayashop-backoffice/internal/pkg/errs"
	"bayashop-backoffice/internal/usecase/shared"
)

//go:generate mockgen -source=promo.go -destination=../../../tests/mock/commands/promo.go -package=commandsmock

type PromoInput struct {
	Code          string
	Reduction     float64
	StartDate     time.Time
	EndDate       time.Time
	Active        bool
	ProductScope  string
	CategoryScope string
	ProductIDs    []int64
	CategoryIDs   []int64
}

type CreatePromoResult struct {
	PromoID int64
}

type PromoCommands interface {
	Create(ctx context.Context, input PromoInput) (*CreatePromoResult, error)
	Update(ctx context.Context, id int64, input PromoInput) error
	Delete(ctx context.Context, id int64) error
}

type promoCommandsImpl struct {
	uow     shared.UnitOfWork
	metrics *metrics.PromoMetrics
}

func NewPromoCommands(uow shared.UnitOfWork, m *metrics.PromoMetrics) PromoCommands {
	return &promoCommandsImpl{uow: uow, metrics: m}
}

func (uc *promoCommandsImpl) Create(ctx context.Context, input PromoInput) (*CreatePromoResult, error) {
	draft, err := toDraft(input)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.PromoCodes().Insert(ctx, tx.DB(), draft)
		if derr != nil {
			return derr
		}
		createdID = id
		return writeMappings(ctx, tx, id, draft)
	})
	uc.metrics.ObserveMutation("create", err)
	if err != nil {
		return nil, err
	}
	return &CreatePromoResult{PromoID: createdID}, nil
}

// Update overwrites the identity row and rebuilds both mapping sets from the
// new scope; previous mappings are always discarded.
func (uc *promoCommandsImpl) Update(ctx context.Context, id int64, input PromoInput) error {
	draft, err := toDraft(input)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, derr := tx.PromoCodes().Update(ctx, tx.DB(), id, draft)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return errs.ErrPromoNotFound
		}
		return writeMappings(ctx, tx, id, draft)
	})
	uc.metrics.ObserveMutation("update", err)
	return err
}

// Delete removes the mappings before the identity row, in the same transaction.
func (uc *promoCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Mappings().DeleteAllMappings(ctx, tx.DB(), id); derr != nil {
			return derr
		}
		affected, derr := tx.PromoCodes().Delete(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		if affected == 0 {
			return errs.ErrPromoNotFound
		}
		return nil
	})
	uc.metrics.ObserveMutation("delete", err)
	return err
}

func writeMappings(ctx context.Context, tx shared.Tx, promoID int64, draft *promo.Draft) error {
	if err := tx.Mappings().ReplaceProductMappings(ctx, tx.DB(), promoID, draft.EffectiveProductIDs()); err != nil {
		return err
	}
	return tx.Mappings().ReplaceCategoryMappings(ctx, tx.DB(), promoID, draft.EffectiveCategoryIDs())
}

func toDraft(input PromoInput) (*promo.Draft, error) {
	draft, err := promo.NewDraft(
		input.Code,
		input.Reduction,
		input.StartDate,
		input.EndDate,
		input.Active,
		input.ProductScope,
		input.CategoryScope,
		input.ProductIDs,
		input.CategoryIDs,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPromoValidation)
	}
	return draft, nil
}
