//go:build unit || e2e

package builder

import (
	"time"

	"bayashop-backoffice/internal/domain/promo"
	reqdto "bayashop-backoffice/internal/handler/dto/request"
	"bayashop-backoffice/internal/usecase/commands"
)

type PromoBuilder struct {
	ID            int64
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

// NewPromoBuilder returns an active, storewide code valid for a day either side of now.
func NewPromoBuilder() *PromoBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &PromoBuilder{
		ID:            1,
		Code:          "SUMMER10",
		Reduction:     10,
		StartDate:     now.Add(-24 * time.Hour),
		EndDate:       now.Add(24 * time.Hour),
		Active:        true,
		ProductScope:  "all",
		CategoryScope: "all",
		ProductIDs:    []int64{},
		CategoryIDs:   []int64{},
	}
}

func (b *PromoBuilder) With(mutate func(*PromoBuilder)) *PromoBuilder {
	mutate(b)
	return b
}

func (b *PromoBuilder) WithID(id int64) *PromoBuilder {
	b.ID = id
	return b
}

func (b *PromoBuilder) WithCode(code string) *PromoBuilder {
	b.Code = code
	return b
}

func (b *PromoBuilder) WithReduction(r float64) *PromoBuilder {
	b.Reduction = r
	return b
}

func (b *PromoBuilder) WithWindow(start, end time.Time) *PromoBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *PromoBuilder) WithActive(active bool) *PromoBuilder {
	b.Active = active
	return b
}

func (b *PromoBuilder) WithProducts(scope string, ids ...int64) *PromoBuilder {
	b.ProductScope = scope
	b.ProductIDs = append([]int64{}, ids...)
	return b
}

func (b *PromoBuilder) WithCategories(scope string, ids ...int64) *PromoBuilder {
	b.CategoryScope = scope
	b.CategoryIDs = append([]int64{}, ids...)
	return b
}

// Build methods
func (b *PromoBuilder) BuildDraft() (*promo.Draft, error) {
	return promo.NewDraft(b.Code, b.Reduction, b.StartDate, b.EndDate, b.Active,
		b.ProductScope, b.CategoryScope, b.ProductIDs, b.CategoryIDs)
}

// BuildDomain mirrors what the read store returns for a persisted code:
// mapping sets are empty unless the matching scope is specific.
func (b *PromoBuilder) BuildDomain() *promo.PromoCode {
	ps, _ := promo.NewScope(b.ProductScope)
	cs, _ := promo.NewScope(b.CategoryScope)
	p := &promo.PromoCode{
		ID:            b.ID,
		Code:          b.Code,
		Reduction:     b.Reduction,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Active:        b.Active,
		ProductScope:  ps,
		CategoryScope: cs,
	}
	if ps.IsSpecific() {
		p.ProductIDs = promo.NewIDSet(b.ProductIDs)
	}
	if cs.IsSpecific() {
		p.CategoryIDs = promo.NewIDSet(b.CategoryIDs)
	}
	return p
}

func (b *PromoBuilder) BuildInput() commands.PromoInput {
	return commands.PromoInput{
		Code:          b.Code,
		Reduction:     b.Reduction,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Active:        b.Active,
		ProductScope:  b.ProductScope,
		CategoryScope: b.CategoryScope,
		ProductIDs:    b.ProductIDs,
		CategoryIDs:   b.CategoryIDs,
	}
}

func (b *PromoBuilder) BuildRequestDTO() reqdto.PromoCodeRequest {
	active := b.Active
	return reqdto.PromoCodeRequest{
		Code:          b.Code,
		Reduction:     b.Reduction,
		DateDebut:     &reqdto.Date{Time: b.StartDate},
		DateFin:       &reqdto.Date{Time: b.EndDate},
		Active:        &active,
		ProductScope:  b.ProductScope,
		CategoryScope: b.CategoryScope,
		ProductIds:    b.ProductIDs,
		CategoryIds:   b.CategoryIDs,
	}
}

func (b *PromoBuilder) BuildValidateRequestDTO(productIDs ...int64) reqdto.ValidatePromoCodeRequest {
	return reqdto.ValidatePromoCodeRequest{
		PromoCode:  b.Code,
		ProductIds: productIDs,
	}
}
