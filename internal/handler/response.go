package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dricebeauty/clinic-api/pkg/apperror"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps the application error taxonomy onto HTTP status codes.
// Absence is 404, bad input 400, business conflicts 409, storage failures 500.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperror.IsNotFound(err):
		status = http.StatusNotFound
	case apperror.IsValidation(err):
		status = http.StatusBadRequest
	case apperror.IsConflict(err):
		status = http.StatusConflict
	case apperror.IsUnauthorized(err):
		status = http.StatusUnauthorized
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
