package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"storefront-service/apperrors"
	"storefront-service/models"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// ProductResolver resolves authoritative product records during checkout.
// Satisfied by *CatalogService.
type ProductResolver interface {
	Get(ctx context.Context, id string) (*models.Product, error)
}

// CheckoutGateway creates hosted checkout sessions with the payment provider.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// MinorUnits converts a major-unit price into the gateway's integral
// minor-unit amount. Rounding is half away from zero on the float64
// product (9.99 → 999, 19.995 → 2000).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CheckoutService converts a client cart into a payment-provider checkout
// session. The cart carries only product ids and quantities; every price is
// re-resolved from the catalog so nothing the client sends can influence
// the charged amount.
type CheckoutService struct {
	catalog  ProductResolver
	gateway  CheckoutGateway
	currency string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewCheckoutService wires the builder. A nil gateway marks checkout as
// unavailable: every call fails fast without touching the catalog or the
// provider.
func NewCheckoutService(catalog ProductResolver, gateway CheckoutGateway, currency string, timeout time.Duration, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		gateway:  gateway,
		currency: currency,
		timeout:  timeout,
		logger:   logger,
	}
}

// CreateSession resolves the cart, builds the line items in cart order and
// delegates session creation to the gateway. The operation is all-or-nothing:
// the first unresolvable item aborts the request before any gateway call.
func (s *CheckoutService) CreateSession(ctx context.Context, req models.CheckoutRequest) (string, error) {
	if s.gateway == nil {
		return "", apperrors.ErrStripeNotConfigured
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.catalog.Get(ctx, item.ProductID)
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
				return "", apperrors.ProductNotFound(item.ProductID)
			}
			return "", err
		}

		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(product.Title),
		}
		if len(product.Images) > 0 {
			productData.Images = stripe.StringSlice(product.Images[:1])
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(MinorUnits(product.Price)),
			},
			Quantity: stripe.Int64(item.Qty()),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sess, err := s.gateway.CreateCheckoutSession(callCtx, params)
	if err != nil {
		s.logger.Warn("Stripe checkout session creation failed", zap.Error(err))
		return "", apperrors.Gateway(err)
	}

	s.logger.Info("Stripe checkout session created",
		zap.Int("line_items", len(lineItems)),
		zap.String("session_url", sess.URL),
	)
	return sess.URL, nil
}
