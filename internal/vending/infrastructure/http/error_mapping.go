package http

import (
	"errors"
	"net/http"

	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}),
		errors.Is(err, &domain.InvalidCoinError{}),
		errors.Is(err, &domain.InvalidCostError{}),
		errors.Is(err, &domain.WeakPasswordError{}),
		errors.Is(err, &domain.InsufficientFundsError{}),
		errors.Is(err, &domain.InsufficientStockError{}),
		errors.Is(err, &domain.UnrepresentableAmountError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.CredentialsMismatchError{}):
		c.JSON(http.StatusUnauthorized, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.PermissionDeniedError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.AccountNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.AccountExistsError{}),
		errors.Is(err, &domain.ProductExistsError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
