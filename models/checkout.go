package models

// CartItem is a single client-supplied cart entry. It carries only the
// product id and quantity; prices are always resolved server-side.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty,min=1"`
}

// Qty returns the requested quantity, defaulting to 1 when omitted.
func (i CartItem) Qty() int64 {
	if i.Quantity == nil {
		return 1
	}
	return int64(*i.Quantity)
}

// CheckoutRequest is the payload for creating a checkout session.
// The redirect URLs are opaque strings owned by the caller.
type CheckoutRequest struct {
	Items         []CartItem `json:"items" binding:"required,dive"`
	CustomerEmail string     `json:"customer_email"`
	SuccessURL    string     `json:"success_url" binding:"required"`
	CancelURL     string     `json:"cancel_url" binding:"required"`
}
