package promo

import (
	"context"
	"time"

	"bayashop-backoffice/internal/pkg/errs"
)

type Status int

const (
	StatusValid Status = iota
	StatusInvalid
	StatusInactive
	StatusExpired
	StatusNotApplicable
)

var statusReasons = map[Status]string{
	StatusValid:         "VALID",
	StatusInvalid:       "INVALID",
	StatusInactive:      "INACTIVE",
	StatusExpired:       "EXPIRED",
	StatusNotApplicable: "NOT_APPLICABLE",
}

var statusMessages = map[Status]string{
	StatusValid:         "Code promo valide",
	StatusInvalid:       "Code promo invalide",
	StatusInactive:      "Code promo inactif",
	StatusExpired:       "Code promo expiré ou pas encore valide",
	StatusNotApplicable: "Code promo non applicable aux produits sélectionnés",
}

// Reason is the stable machine-readable name of the status.
func (s Status) Reason() string {
	return statusReasons[s]
}

func (s Status) Message() string {
	return statusMessages[s]
}

func (s Status) String() string {
	return s.Reason()
}

//go:generate mockgen -source=eligibility.go -destination=../../../tests/mock/promo/eligibility.go -package=promomock

// CategoryLookup resolves the categories a catalog product belongs to.
type CategoryLookup interface {
	CategoriesOf(ctx context.Context, productID int64) ([]int64, error)
}

type EligibilityInput struct {
	// nil when no promo code matched the submitted code
	Promo      *PromoCode
	Candidates []int64
	Lookup     CategoryLookup
	Now        time.Time
}

type Result struct {
	Status    Status
	Reduction float64
}

func (r Result) IsValid() bool {
	return r.Status == StatusValid
}

// Evaluate decides whether a promo code applies to the candidate products at
// in.Now. Checks run in order and stop at the first failure. An error is only
// returned when the category lookup fails.
func Evaluate(ctx context.Context, in EligibilityInput) (Result, error) {
	p := in.Promo
	switch {
	case p == nil:
		return Result{Status: StatusInvalid}, nil
	case !p.Active:
		return Result{Status: StatusInactive}, nil
	case !p.IsWithin(in.Now):
		return Result{Status: StatusExpired}, nil
	}

	if len(in.Candidates) > 0 {
		ok, err := appliesToAny(ctx, p, in.Candidates, in.Lookup)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{Status: StatusNotApplicable}, nil
		}
	}

	return Result{Status: StatusValid, Reduction: p.Reduction}, nil
}

// Empty mapping sets mean the code applies to every product, not to none.
func appliesToAny(ctx context.Context, p *PromoCode, candidates []int64, lookup CategoryLookup) (bool, error) {
	products := p.ProductIDs
	if !p.ProductScope.IsSpecific() {
		products = IDSet{}
	}
	categories := p.CategoryIDs
	if !p.CategoryScope.IsSpecific() {
		categories = IDSet{}
	}

	if products.IsEmpty() && categories.IsEmpty() {
		return true, nil
	}

	for _, productID := range candidates {
		if products.Contains(productID) {
			return true, nil
		}
		if categories.IsEmpty() || lookup == nil {
			continue
		}

		cats, err := lookup.CategoriesOf(ctx, productID)
		if err != nil {
			return false, err
		}
		for _, c := range cats {
			if categories.Contains(c) {
				return true, nil
			}
		}
	}
	return false, nil
}

// RejectedError reports a business-rule rejection of a promo code.
type RejectedError struct {
	Status Status
}

func (e *RejectedError) Error() string {
	return "promo code rejected: " + e.Status.Reason()
}

func (e *RejectedError) Is(target error) bool {
	return target == errs.ErrPromoRejected
}
