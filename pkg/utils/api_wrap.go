package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	var violations ValidationErrors
	if errors.As(err, &violations) {
		// Structured per-field violations go back verbatim; the generic
		// message is for end users, the list is for programmatic callers.
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid journal entry",
			TraceID: traceID,
			Data:    gin.H{"violations": violations},
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Invalid request",
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidPage):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Page must be greater than 0",
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidPageSize):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Page size must be between 1 and 100",
			TraceID: traceID,
		})
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
			TraceID: traceID,
		})
	case errors.Is(err, ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, APIResponse{
			Status:  "error",
			Code:    http.StatusConflict,
			Message: "Email already registered",
			TraceID: traceID,
		})
	case errors.Is(err, ErrAccountNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Account not found",
			TraceID: traceID,
		})
	case errors.Is(err, ErrBreakNotFound):
		c.JSON(http.StatusUnprocessableEntity, APIResponse{
			Status:  "error",
			Code:    http.StatusUnprocessableEntity,
			Message: "Referenced break does not exist",
			TraceID: traceID,
		})
	case errors.Is(err, ErrBoardNotFound):
		c.JSON(http.StatusUnprocessableEntity, APIResponse{
			Status:  "error",
			Code:    http.StatusUnprocessableEntity,
			Message: "Referenced board does not exist",
			TraceID: traceID,
		})
	case errors.Is(err, ErrEntryConflict):
		c.JSON(http.StatusConflict, APIResponse{
			Status:  "error",
			Code:    http.StatusConflict,
			Message: "Entry uuid is already in use",
			TraceID: traceID,
		})
	case errors.Is(err, ErrEntryNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "Journal entry not found",
			TraceID: traceID,
		})
	case errors.Is(err, ErrNotSupported):
		c.JSON(http.StatusNotImplemented, APIResponse{
			Status:  "error",
			Code:    http.StatusNotImplemented,
			Message: "Operation not supported yet",
			TraceID: traceID,
		})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID,
		})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID,
		})
	}
}
