package httperr

import (
	"errors"
	"net/http"

	"hotel-discounts/internal/domain/discount"
	"hotel-discounts/internal/domain/reservation"
	"hotel-discounts/internal/pkg/errs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
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

// Abort picks the status and public message for err from the usecase sentinels.
// fallback is used as the message for unexpected errors.
func Abort(c *gin.Context, err error, fallback string) {
	status, msg := Classify(err)
	if status == http.StatusInternalServerError {
		msg = fallback
	}
	AbortWithError(c, status, err, msg, validationDetail(err))
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, discount.ErrInvalidDiscount),
		errs.Is(err, discount.ErrInvalidApplication),
		errs.Is(err, reservation.ErrInvalidStayPeriod),
		errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest, "Validation failed"
	case errs.Is(err, errs.ErrDiscountNotFound):
		return http.StatusNotFound, "Discount not found"
	case errs.Is(err, errs.ErrApplicationNotFound):
		return http.StatusNotFound, "Discount application not found"
	case errs.Is(err, errs.ErrDuplicatePromoCode):
		return http.StatusConflict, "Promo code already in use"
	case errs.Is(err, errs.ErrUsageLimitReached):
		return http.StatusConflict, "Discount usage limit reached"
	case errs.Is(err, errs.ErrDiscountInUse):
		return http.StatusConflict, "Discount has recorded applications"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func validationDetail(err error) any {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return fields
	}
	if errs.Is(err, discount.ErrInvalidApplication) || errs.Is(err, reservation.ErrInvalidStayPeriod) {
		return err.Error()
	}
	return nil
}
