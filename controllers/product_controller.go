package controllers

import (
	"net/http"

	"storefront-service/apperrors"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog services.Catalog
}

func NewProductController(catalog services.Catalog) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts returns the full catalog as a JSON array.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.catalog.List(c.Request.Context())
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct validates the payload and returns the stored product with
// its assigned id.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var in models.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		apperrors.Respond(c, apperrors.Validation(bindingError(err)))
		return
	}
	product, err := pc.catalog.Create(c.Request.Context(), in)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, err := pc.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var in models.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		apperrors.Respond(c, apperrors.Validation(bindingError(err)))
		return
	}
	product, err := pc.catalog.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
