package api

import (
	"errors"
	"net/http"
	"strconv"

	"bayashop-backoffice/internal/domain/promo"
	reqdto "bayashop-backoffice/internal/handler/dto/request"
	resdto "bayashop-backoffice/internal/handler/dto/response"
	"bayashop-backoffice/internal/handler/httperr"
	"bayashop-backoffice/internal/pkg/errs"
	"bayashop-backoffice/internal/usecase/commands"
	"bayashop-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgListFailed     = "Erreur lors de la récupération des codes promo"
	msgCreated        = "Code promo créé avec succès"
	msgCreateFailed   = "Erreur lors de la création du code promo"
	msgUpdated        = "Code promo mis à jour avec succès"
	msgUpdateFailed   = "Erreur lors de la mise à jour du code promo"
	msgDeleted        = "Code promo supprimé avec succès"
	msgDeleteFailed   = "Erreur lors de la suppression du code promo"
	msgNotFound       = "Code promo non trouvé"
	msgValidateFailed = "Erreur lors de la validation du code promo"
	msgValidateInput  = "Code promo et liste de produits requis"
	msgInvalidRequest = "Requête invalide"
	msgInvalidID      = "Identifiant de code promo invalide"
)

type PromoHandler struct {
	cmds commands.PromoCommands
	q    queries.PromoQueries
}

func NewPromoHandler(cmds commands.PromoCommands, q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{cmds: cmds, q: q}
}

// @Summary List promo codes
// @Description List every promo code with its product and category mappings
// @Tags promo
// @Produce json
// @Success 200 {array} resdto.PromoCodeResponse
// @Failure 500 {object} httperr.Response
// @Router /promo/promo-codes [get]
func (h *PromoHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgListFailed, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoCodeList(items))
}

// @Summary Create promo code
// @Description Create a promo code and its scope mappings in one transaction
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.PromoCodeRequest true "Promo code"
// @Success 201 {object} resdto.CreatePromoCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /promo/promo-codes [post]
func (h *PromoHandler) Create(c *gin.Context) {
	input, ok := bindPromoInput(c)
	if !ok {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), input)
	if err != nil {
		abortWithMutationError(c, err, msgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatePromoCodeResponse{Message: msgCreated, ID: result.PromoID})
}

// @Summary Update promo code
// @Description Overwrite a promo code and rebuild its scope mappings
// @Tags promo
// @Accept json
// @Produce json
// @Param id path int true "Promo code ID"
// @Param request body reqdto.PromoCodeRequest true "Promo code"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /promo/promo-codes/{id} [put]
func (h *PromoHandler) Update(c *gin.Context) {
	id, ok := parsePromoID(c)
	if !ok {
		return
	}
	input, ok := bindPromoInput(c)
	if !ok {
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, input); err != nil {
		abortWithMutationError(c, err, msgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgUpdated})
}

// @Summary Delete promo code
// @Description Delete a promo code together with its mappings
// @Tags promo
// @Produce json
// @Param id path int true "Promo code ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /promo/promo-codes/{id} [delete]
func (h *PromoHandler) Delete(c *gin.Context) {
	id, ok := parsePromoID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithMutationError(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgDeleted})
}

// @Summary Validate promo code
// @Description Check whether a promo code is usable for the given products now
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoCodeRequest true "Code and candidate products"
// @Success 200 {object} resdto.ValidatePromoCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /promo/validate-promo-code [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgValidateInput, httperr.ValidationDetail{})
		return
	}

	result, err := h.q.Validate(c.Request.Context(), req.PromoCode, req.ProductIds)
	if err != nil {
		var rejected *promo.RejectedError
		if errors.As(err, &rejected) {
			httperr.AbortWithRejection(c, rejected)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgValidateFailed, httperr.ValidationDetail{})
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

func bindPromoInput(c *gin.Context) (commands.PromoInput, bool) {
	var req reqdto.PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return commands.PromoInput{}, false
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return commands.PromoInput{}, false
	}
	return input, true
}

func parsePromoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return 0, false
	}
	return id, true
}

func abortWithMutationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrPromoValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
	case errors.Is(err, errs.ErrPromoNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgNotFound, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
