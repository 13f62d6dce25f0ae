package domain

import (
	"context"
	"fmt"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/google/uuid"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	default:
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown role %q", s)}
	}
}

// Account is a marketplace principal. The balance is kept in minor units and
// only buyer accounts ever hold a non-zero balance.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	Balance      int
}

type AccountsRepository interface {
	CreateAccount(ctx context.Context, account Account) (Account, error)
	TryGetByUsername(ctx context.Context, username string) (Account, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// AccountLocker takes the account row lock that serializes every balance
// mutation for one account.
type AccountLocker interface {
	LockAccount(ctx context.Context, querier database.Querier, id uuid.UUID) (Account, error)
}

type BalanceWriter interface {
	SetBalance(ctx context.Context, executor database.Executor, id uuid.UUID, balance int) error
	// DebitBalance subtracts amount guarded by the current balance and fails
	// with InsufficientFundsError when the guard does not hold.
	DebitBalance(ctx context.Context, executor database.Executor, id uuid.UUID, amount int) error
}

type AccountEraser interface {
	EraseAccount(ctx context.Context, executor database.Executor, id uuid.UUID) error
}
