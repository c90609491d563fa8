package response

import (
	"time"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/usecase/queries"
)

// ProductIds and CategoryIds are always arrays, [] when the scope is "all".
type PromoCodeResponse struct {
	ID            int64     `json:"ID_PROMO"`
	Code          string    `json:"Code"`
	Reduction     float64   `json:"Reduction"`
	DateDebut     time.Time `json:"DateDebut"`
	DateFin       time.Time `json:"DateFin"`
	Active        bool      `json:"Active"`
	ProductScope  string    `json:"productScope"`
	CategoryScope string    `json:"categoryScope"`
	ProductIds    []int64   `json:"ProductIds"`
	CategoryIds   []int64   `json:"CategoryIds"`
}

type CreatePromoCodeResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"ID_PROMO"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidatePromoCodeResponse struct {
	Message   string  `json:"message"`
	Valid     bool    `json:"valid"`
	Reduction float64 `json:"reduction"`
}

func FromPromoCode(p *promo.PromoCode) *PromoCodeResponse {
	return &PromoCodeResponse{
		ID:            p.ID,
		Code:          p.Code,
		Reduction:     p.Reduction,
		DateDebut:     p.StartDate,
		DateFin:       p.EndDate,
		Active:        p.Active,
		ProductScope:  p.ProductScope.String(),
		CategoryScope: p.CategoryScope.String(),
		ProductIds:    p.ProductIDs.Slice(),
		CategoryIds:   p.CategoryIDs.Slice(),
	}
}

func FromPromoCodeList(items []*promo.PromoCode) []*PromoCodeResponse {
	res := make([]*PromoCodeResponse, len(items))
	for i, it := range items {
		res[i] = FromPromoCode(it)
	}
	return res
}

func FromValidationResult(r *queries.ValidationResult) *ValidatePromoCodeResponse {
	return &ValidatePromoCodeResponse{
		Message:   r.Message,
		Valid:     r.Valid,
		Reduction: r.Reduction,
	}
}
