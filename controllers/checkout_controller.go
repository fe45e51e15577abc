package controllers

import (
	"net/http"

	"storefront-service/apperrors"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout services.SessionCreator
}

func NewCheckoutController(checkout services.SessionCreator) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// CreateSession converts the submitted cart into a gateway checkout session
// and returns the gateway-issued redirect URL.
func (cc *CheckoutController) CreateSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.Validation(bindingError(err)))
		return
	}
	url, err := cc.checkout.CreateSession(c.Request.Context(), req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
