package http

import (
	"context"
	"net/http"

	"github.com/danielgruber/vending-store/internal/vending/application"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ProductIDKey = "productId"
)

type ProductService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, actorID, productID uuid.UUID, name string, cost, stock int) (domain.Product, error)
	CreateOrUpdateProduct(ctx context.Context, actorID, productID uuid.UUID, name string, cost, stock int) (domain.Product, error)
	UpdateProduct(ctx context.Context, actorID, productID uuid.UUID, patch application.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, actorID, productID uuid.UUID) error
}

type productRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Cost  int    `json:"cost" binding:"required"`
	Stock int    `json:"stock" binding:"gte=0"`
}

type productResponseBody struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Stock    int    `json:"stock"`
	SellerID string `json:"sellerId"`
}

type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	response := make([]productResponseBody, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param(ProductIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	var body productRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), accountID, uuid.New(), body.Name, body.Cost, body.Stock)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

// PutProduct creates the product under the given id or updates it when the
// id already exists.
func (h *ProductHandler) PutProduct(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	productID, err := uuid.Parse(c.Param(ProductIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	var body productRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	product, err := h.service.CreateOrUpdateProduct(c.Request.Context(), accountID, productID, body.Name, body.Cost, body.Stock)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	productID, err := uuid.Parse(c.Param(ProductIDKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), accountID, productID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toProductResponse(product domain.Product) productResponseBody {
	return productResponseBody{
		ID:       product.ID.String(),
		Name:     product.Name,
		Cost:     product.Cost,
		Stock:    product.Stock,
		SellerID: product.OwnerID.String(),
	}
}
