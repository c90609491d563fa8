package promo

import (
	"errors"
	"strings"
	"time"
)

type PromoCode struct {
	ID            int64
	Code          string
	Reduction     float64
	StartDate     time.Time
	EndDate       time.Time
	Active        bool
	ProductScope  Scope
	CategoryScope Scope
	ProductIDs    IDSet
	CategoryIDs   IDSet
}

// IsWithin reports whether t lies in [StartDate, EndDate].
func (p *PromoCode) IsWithin(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// NormalizeCode is applied to codes on write and on lookup.
func NormalizeCode(code string) string {
	return strings.TrimSpace(code)
}

// Draft carries the writable fields of a promo code together with the
// mapping ids requested by the administrator.
type Draft struct {
	Code          string
	Reduction     float64
	StartDate     time.Time
	EndDate       time.Time
	Active        bool
	ProductScope  Scope
	CategoryScope Scope
	ProductIDs    IDSet
	CategoryIDs   IDSet
}

func NewDraft(
	code string,
	reduction float64,
	startDate, endDate time.Time,
	active bool,
	productScope, categoryScope string,
	productIDs, categoryIDs []int64,
) (*Draft, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrInvalidCode
	}
	if reduction < 0 {
		return nil, ErrInvalidReduction
	}
	ps, err := NewScope(productScope)
	if err != nil {
		return nil, err
	}
	cs, err := NewScope(categoryScope)
	if err != nil {
		return nil, err
	}

	products := NewIDSet(productIDs)
	categories := NewIDSet(categoryIDs)
	// ids under an "all" scope are never persisted
	var checks []error
	if ps.IsSpecific() {
		checks = append(checks, products.Validate())
	}
	if cs.IsSpecific() {
		checks = append(checks, categories.Validate())
	}
	if err := errors.Join(checks...); err != nil {
		return nil, ErrInvalidMappedID
	}

	return &Draft{
		Code:          code,
		Reduction:     reduction,
		StartDate:     startDate,
		EndDate:       endDate,
		Active:        active,
		ProductScope:  ps,
		CategoryScope: cs,
		ProductIDs:    products,
		CategoryIDs:   categories,
	}, nil
}

// EffectiveProductIDs is what must be persisted in the product mapping table:
// the requested ids when the scope is specific, nothing otherwise.
func (d *Draft) EffectiveProductIDs() IDSet {
	if !d.ProductScope.IsSpecific() {
		return IDSet{}
	}
	return d.ProductIDs
}

func (d *Draft) EffectiveCategoryIDs() IDSet {
	if !d.CategoryScope.IsSpecific() {
		return IDSet{}
	}
	return d.CategoryIDs
}
