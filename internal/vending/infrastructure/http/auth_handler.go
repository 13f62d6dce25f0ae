package http

import (
	"context"
	"net/http"

	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const AccountUsernameKey = "accountUsername"

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (domain.Account, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (domain.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)
	UpdatePassword(ctx context.Context, accountID uuid.UUID, newPassword string) (domain.Account, error)
}

type AccountRemover interface {
	DeleteAccount(ctx context.Context, accountID uuid.UUID, password string) error
}

type registerRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type authRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type deleteAccountRequestBody struct {
	Password string `json:"password" binding:"required"`
}

type updateAccountRequestBody struct {
	Password string `json:"password" binding:"required"`
}

type accountResponseBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Balance  int    `json:"balance"`
}

type AuthHandler struct {
	authService    AuthService
	accountRemover AccountRemover
}

func NewAuthHandler(authService AuthService, accountRemover AccountRemover) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountRemover: accountRemover,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.authService.Register(c.Request.Context(), body.Username, body.Password, body.Role)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAccountResponse(account))
}

func (h *AuthHandler) Authenticate(c *gin.Context) {
	var body authRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) GetAccount(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	account, err := h.authService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

// GetAccountByName serves the by-username read. Accounts are only visible to
// their owner, so the path username must match the token identity.
func (h *AuthHandler) GetAccountByName(c *gin.Context) {
	username, ok := usernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	requested := c.Param(AccountUsernameKey)
	if requested != username {
		handleDomainError(c, &domain.PermissionDeniedError{Msg: "accounts are only visible to their owner"})
		return
	}

	account, err := h.authService.GetAccountByUsername(c.Request.Context(), requested)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

// UpdateAccount rotates the password of the account named in the path, which
// must be the caller's own.
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	username, ok := usernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	if c.Param(AccountUsernameKey) != username {
		handleDomainError(c, &domain.PermissionDeniedError{Msg: "accounts can only be updated by their owner"})
		return
	}

	var body updateAccountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	account, err := h.authService.UpdatePassword(c.Request.Context(), accountID, body.Password)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "missing account identity"})
		return
	}

	var body deleteAccountRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	if err := h.accountRemover.DeleteAccount(c.Request.Context(), accountID, body.Password); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toAccountResponse(account domain.Account) accountResponseBody {
	return accountResponseBody{
		ID:       account.ID.String(),
		Username: account.Username,
		Role:     string(account.Role),
		Balance:  account.Balance,
	}
}
