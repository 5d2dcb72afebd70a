package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a code and message pair derived from an error.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError turns storage errors into a client-safe code and message. The
// context names the resource being handled ("product", "category", ...).
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	errLower := strings.ToLower(err.Error())

	// PostgreSQL 23505 / SQLite UNIQUE
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		if strings.Contains(errLower, "categor") {
			return ErrorInfo{Code: MenuCategoryExists, Message: "A category with this ID already exists."}
		}
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists"}
	}

	// PostgreSQL 23502 / SQLite NOT NULL
	if strings.Contains(errLower, "not-null constraint") || strings.Contains(errLower, "not null constraint") {
		return parseNotNullError(errLower)
	}

	// PostgreSQL 23514
	if strings.Contains(errLower, "check constraint") {
		if strings.Contains(errLower, "price") {
			return ErrorInfo{Code: ValidationInvalidRange, Message: "Prices must not be negative"}
		}
		return ErrorInfo{Code: ValidationInvalidInput, Message: "Invalid input"}
	}

	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The menu store is unreachable. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: defaultErrorMessage(context),
	}
}

func parseNotNullError(errLower string) ErrorInfo {
	switch {
	case strings.Contains(errLower, "label"):
		return ErrorInfo{Code: ValidationRequired, Message: "Label is required"}
	case strings.Contains(errLower, "name"):
		return ErrorInfo{Code: ValidationRequired, Message: "Name is required"}
	case strings.Contains(errLower, "category"):
		return ErrorInfo{Code: ValidationRequired, Message: "Category is required"}
	case strings.Contains(errLower, "price"):
		return ErrorInfo{Code: ValidationRequired, Message: "Price is required"}
	}
	return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "product"):
		return "Product not found"
	case strings.Contains(contextLower, "category"):
		return "Category not found"
	case strings.Contains(contextLower, "config"):
		return "Settings not found"
	}
	return "The requested data was not found"
}

func defaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "Failed to create. Please check your connection."
	case strings.Contains(contextLower, "update"):
		return "Failed to update. Please check your connection."
	case strings.Contains(contextLower, "delete"):
		return "Failed to delete. Please check your connection."
	case strings.Contains(contextLower, "save"):
		return "Failed to save. Please check your connection."
	}
	return "Something went wrong. Please try again later"
}

// ParseAndRespond parses err and writes it with statusCode.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
