package httperr

import (
	"errors"
	"net/http"

	"bayashop-backoffice/internal/domain/promo"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ValidationDetail is attached to every failed promo code validation.
type ValidationDetail struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// AbortWithError keeps err on the gin context for the logging middleware and
// writes the public response. A nil err is replaced by msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRejection answers 404 for an unknown code and 400 for every other
// rejection, with the status reason in the detail.
func AbortWithRejection(c *gin.Context, rejected *promo.RejectedError) {
	status := http.StatusBadRequest
	if rejected.Status == promo.StatusInvalid {
		status = http.StatusNotFound
	}
	AbortWithError(c, status, rejected, rejected.Status.Message(), ValidationDetail{
		Valid:  false,
		Reason: rejected.Status.Reason(),
	})
}
