package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Catalog error types
var (
	ErrProductNotFound  = New(http.StatusNotFound, "Product not found", nil)
	ErrStoreUnavailable = New(http.StatusInternalServerError, "Database not configured", nil)
)

// Checkout error types
var ErrStripeNotConfigured = New(http.StatusBadRequest,
	"Stripe is not configured. Set STRIPE_SECRET_KEY environment variable.", nil)

// InvalidProductID reports a malformed client-supplied product id. It keeps
// the decode failure wrapped for inspection but answers 404, matching the
// not-found semantics of the catalog endpoints.
func InvalidProductID(err error) *Error {
	return New(http.StatusNotFound, "Product not found", err)
}

// ProductNotFound reports an unresolvable cart product id. The offending id
// is part of the message so the client can correct the cart.
func ProductNotFound(id string) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("Product not found: %s", id), nil)
}

// Validation wraps a request binding or validation failure.
func Validation(err error) *Error {
	return New(http.StatusBadRequest, err.Error(), err)
}

// Gateway wraps a payment gateway failure, passing its message through.
func Gateway(err error) *Error {
	return New(http.StatusInternalServerError, err.Error(), err)
}

// Internal wraps an unexpected server-side failure behind a generic message.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Respond writes err as a structured JSON error response. Errors that are
// not *Error are treated as internal server faults.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
