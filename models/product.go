package models

const (
	DefaultCategory = "Tea"
	DefaultStock    = 100
)

// ProductData holds the persisted attributes of a catalog product. The
// document id is kept out of this struct so the storage key never leaks
// into request or response payloads.
type ProductData struct {
	Title          string   `json:"title" bson:"title"`
	Description    string   `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64  `json:"price" bson:"price"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty" bson:"compare_at_price,omitempty"`
	Category       string   `json:"category" bson:"category"`
	InStock        bool     `json:"in_stock" bson:"in_stock"`
	Stock          int      `json:"stock" bson:"stock"`
	Images         []string `json:"images" bson:"images"`
	Tags           []string `json:"tags" bson:"tags"`
}

// Product is the outward-facing catalog entity. ID is the client-facing
// string form of the storage key, assigned on creation and immutable.
type Product struct {
	ID          string `json:"id" bson:"-"`
	ProductData `bson:",inline"`
}

// ProductIn is the request payload for creating or updating a product.
// Optional fields use pointers so an explicit zero value can be told apart
// from an omitted one.
type ProductIn struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price" binding:"required,gte=0"`
	CompareAtPrice *float64 `json:"compare_at_price" binding:"omitempty,gte=0"`
	Category       string   `json:"category"`
	InStock        *bool    `json:"in_stock"`
	Stock          *int     `json:"stock"`
	Images         []string `json:"images"`
	Tags           []string `json:"tags"`
}

// Data resolves the payload into a complete ProductData, applying the
// catalog defaults for omitted fields.
func (in ProductIn) Data() ProductData {
	data := ProductData{
		Title:          in.Title,
		Description:    in.Description,
		CompareAtPrice: in.CompareAtPrice,
		Category:       in.Category,
		InStock:        true,
		Stock:          DefaultStock,
		Images:         in.Images,
		Tags:           in.Tags,
	}
	if in.Price != nil {
		data.Price = *in.Price
	}
	if data.Category == "" {
		data.Category = DefaultCategory
	}
	if in.InStock != nil {
		data.InStock = *in.InStock
	}
	if in.Stock != nil {
		data.Stock = *in.Stock
	}
	if data.Images == nil {
		data.Images = []string{}
	}
	if data.Tags == nil {
		data.Tags = []string{}
	}
	return data
}
