package http

import (
	"context"
	"net/http"

	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommerceService interface {
	Deposit(ctx context.Context, accountID uuid.UUID, coins []int) (domain.Account, error)
	Buy(ctx context.Context, accountID, productID uuid.UUID, quantity int) (domain.Receipt, error)
	Reset(ctx context.Context, accountID uuid.UUID) (domain.Account, error)
}

type depositRequestBody struct {
	Coins []int `json:"coins" binding:"required"`
}

type buyRequestBody struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type receiptResponseBody struct {
	Total    int                 `json:"total"`
	Product  productResponseBody `json:"product"`
	Quantity int                 `json:"quantity"`
	Change   []int               `json:"change"`
}

type CommerceHandler struct {
	service CommerceService
}

func NewCommerceHandler(service CommerceService) *CommerceHandler {
	return &CommerceHandler{
		service: service,
	}
}

func (h *CommerceHandler) Deposit(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	var body depositRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.service.Deposit(c.Request.Context(), accountID, body.Coins)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": account.Balance})
}

func (h *CommerceHandler) Buy(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	var body buyRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid product id"})
		return
	}

	receipt, err := h.service.Buy(c.Request.Context(), accountID, productID, body.Quantity)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, receiptResponseBody{
		Total:    receipt.Total,
		Product:  toProductResponse(receipt.Product),
		Quantity: receipt.Quantity,
		Change:   receipt.Change,
	})
}

func (h *CommerceHandler) Reset(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	account, err := h.service.Reset(c.Request.Context(), accountID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": account.Balance})
}
