package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/merosman91/Boiler-Farm/internal/apierror"
	"github.com/merosman91/Boiler-Farm/internal/model"
	"github.com/merosman91/Boiler-Farm/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal and the flexible numeric types as plain numbers
	// so that validator tags like min=0, gt=0, required work without panicking
	// ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(model.Quantity); ok {
			return float64(v)
		}
		return nil
	}, model.Quantity(0))
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(model.Count); ok {
			return int(v)
		}
		return nil
	}, model.Count(0))
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses the :id route segment. Writes the 400 response itself when
// the segment is not a UUID.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service-layer error types onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{ve.Field: ve.Reason}))
		return
	}
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, apierror.New(nf.Error()))
		return
	}
	var is *service.InsufficientStockError
	if errors.As(err, &is) {
		c.JSON(http.StatusConflict, apierror.New(is.Error()))
		return
	}
	// Anything else is unexpected; ErrorHandler logs it and writes the 500.
	_ = c.Error(err)
}
