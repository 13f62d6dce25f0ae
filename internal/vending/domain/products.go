package domain

import (
	"context"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/google/uuid"
)

// Product is a seller-owned catalog entry. OwnerID is a plain back-reference
// to the selling account, never a live object link.
type Product struct {
	ID      uuid.UUID
	Name    string
	Cost    int
	Stock   int
	OwnerID uuid.UUID
}

type ProductsRepository interface {
	TryGetProduct(ctx context.Context, id uuid.UUID) (Product, bool, error)
	GetProduct(ctx context.Context, id uuid.UUID) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}

type ProductWriter interface {
	InsertProduct(ctx context.Context, executor database.Executor, product Product) error
	UpdateProduct(ctx context.Context, executor database.Executor, product Product) error
	DeleteProduct(ctx context.Context, executor database.Executor, id uuid.UUID) error
	EraseByOwner(ctx context.Context, executor database.Executor, ownerID uuid.UUID) error
}

type ProductLocker interface {
	LockProduct(ctx context.Context, querier database.Querier, id uuid.UUID) (Product, error)
}

// StockDecrementer subtracts quantity guarded by the current stock and fails
// with InsufficientStockError when the guard does not hold.
type StockDecrementer interface {
	DecrementStock(ctx context.Context, executor database.Executor, id uuid.UUID, quantity int) error
}
