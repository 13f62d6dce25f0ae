package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielgruber/vending-store/internal/pkg/jwt"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
)

const tokenTimeLimit = time.Hour

type AuthCase struct {
	accountsRepository domain.AccountsRepository
	passwordHasher     domain.PasswordHasher
	passwordPolicy     domain.PasswordPolicy
	tokenIssuer        jwt.TokenIssuer
	secretKey          []byte
}

func NewAuthCase(
	accountsRepository domain.AccountsRepository,
	passwordHasher domain.PasswordHasher,
	passwordPolicy domain.PasswordPolicy,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *AuthCase {
	return &AuthCase{
		accountsRepository: accountsRepository,
		passwordHasher:     passwordHasher,
		passwordPolicy:     passwordPolicy,
		tokenIssuer:        tokenIssuer,
		secretKey:          []byte(secretKey),
	}
}

// Register creates an account with a zero balance. The role is fixed at
// creation and never changes afterwards.
func (a *AuthCase) Register(ctx context.Context, username, password, role string) (domain.Account, error) {
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.Account{}, err
	}

	if strings.TrimSpace(username) == "" {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: "username must not be empty"}
	}

	if err := a.passwordPolicy.ValidatePassword(password); err != nil {
		return domain.Account{}, err
	}

	_, found, err := a.accountsRepository.TryGetByUsername(ctx, username)
	if err != nil {
		return domain.Account{}, err
	}

	if found {
		return domain.Account{}, &domain.AccountExistsError{Msg: "username is already taken"}
	}

	hashedPassword, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}

	return a.accountsRepository.CreateAccount(ctx, domain.Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         parsedRole,
		Balance:      0,
	})
}

// Login verifies credentials and issues a signed token carrying the account
// identity. An unknown username and a wrong password fail the same way.
func (a *AuthCase) Login(ctx context.Context, username, password string) (string, error) {
	account, found, err := a.accountsRepository.TryGetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: "username or password is incorrect"}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, account.ID.String(), account.Username, string(account.Role), tokenTimeLimit)
}

func (a *AuthCase) GetAccount(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	return a.accountsRepository.GetByID(ctx, accountID)
}

func (a *AuthCase) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	account, found, err := a.accountsRepository.TryGetByUsername(ctx, username)
	if err != nil {
		return domain.Account{}, err
	}

	if !found {
		return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", username)}
	}

	return account, nil
}

// UpdatePassword replaces an account's credential. The new password goes
// through the same strength policy as registration.
func (a *AuthCase) UpdatePassword(ctx context.Context, accountID uuid.UUID, newPassword string) (domain.Account, error) {
	if err := a.passwordPolicy.ValidatePassword(newPassword); err != nil {
		return domain.Account{}, err
	}

	account, err := a.accountsRepository.GetByID(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}

	hashedPassword, err := a.passwordHasher.HashPassword(newPassword)
	if err != nil {
		return domain.Account{}, err
	}

	if err := a.accountsRepository.UpdatePassword(ctx, accountID, hashedPassword); err != nil {
		return domain.Account{}, err
	}

	account.PasswordHash = hashedPassword
	return account, nil
}
