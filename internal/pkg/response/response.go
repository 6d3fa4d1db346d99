package response

import (
	"Minbar/internal/api/dto"
	"Minbar/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success writes a 200 envelope.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    data,
	})
}

// Created writes a 201 envelope for newly created resources.
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Data:    data,
	})
}

// Fail writes a failure envelope with the given HTTP status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Success: false,
		Error:   message,
	})
}

// Error maps an error to the envelope. Binding and validation errors
// become 400, mapped sentinels keep their status, everything else is
// logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "unclassified error", "err", err)
		Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
