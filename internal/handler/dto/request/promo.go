package request

import (
	"bayashop-backoffice/internal/pkg/patch"
	"bayashop-backoffice/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// Field names follow the admin front end's existing payloads.
type PromoCodeRequest struct {
	Code          string  `json:"Code" binding:"required"`
	Reduction     float64 `json:"Reduction" binding:"min=0"`
	DateDebut     *Date   `json:"DateDebut" binding:"required" copier:"-"`
	DateFin       *Date   `json:"DateFin" binding:"required" copier:"-"`
	Active        *bool   `json:"Active" copier:"-"`
	ProductScope  string  `json:"productScope" binding:"omitempty,oneof=all specific"`
	CategoryScope string  `json:"categoryScope" binding:"omitempty,oneof=all specific"`
	ProductIds    []int64 `json:"productIds" binding:"omitempty,dive,gt=0" copier:"-"`
	CategoryIds   []int64 `json:"categoryIds" binding:"omitempty,dive,gt=0" copier:"-"`
}

type ValidatePromoCodeRequest struct {
	PromoCode  string  `json:"promoCode" binding:"required"`
	ProductIds []int64 `json:"productIds" binding:"required,min=1"`
}

func (r *PromoCodeRequest) ToInput() (commands.PromoInput, error) {
	var input commands.PromoInput
	if err := copier.Copy(&input, r); err != nil {
		return commands.PromoInput{}, err
	}
	input.StartDate = r.DateDebut.Time
	input.EndDate = r.DateFin.Time
	input.Active = patch.Coalesce(r.Active, false)
	input.ProductIDs = patch.OrEmpty(r.ProductIds)
	input.CategoryIDs = patch.OrEmpty(r.CategoryIds)
	return input, nil
}
