package application

import (
	"context"
	"strings"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
)

type ProductCase struct {
	txManager          database.TxManager
	accountsRepository domain.AccountsRepository
	productsRepository domain.ProductsRepository
	productLocker      domain.ProductLocker
	productWriter      domain.ProductWriter
}

func NewProductCase(
	txManager database.TxManager,
	accountsRepository domain.AccountsRepository,
	productsRepository domain.ProductsRepository,
	productLocker domain.ProductLocker,
	productWriter domain.ProductWriter,
) *ProductCase {
	return &ProductCase{
		txManager:          txManager,
		accountsRepository: accountsRepository,
		productsRepository: productsRepository,
		productLocker:      productLocker,
		productWriter:      productWriter,
	}
}

// ProductPatch carries optional updates; nil fields keep the stored value.
type ProductPatch struct {
	Name  *string
	Cost  *int
	Stock *int
}

func (pc *ProductCase) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	return pc.productsRepository.GetProduct(ctx, id)
}

func (pc *ProductCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return pc.productsRepository.ListProducts(ctx)
}

// CreateProduct registers a new catalog entry owned by the acting seller. The
// product id is caller-supplied; a collision fails with ProductExistsError.
func (pc *ProductCase) CreateProduct(ctx context.Context, actorID, productID uuid.UUID, name string, cost, stock int) (domain.Product, error) {
	actor, err := pc.accountsRepository.GetByID(ctx, actorID)
	if err != nil {
		return domain.Product{}, err
	}

	if actor.Role != domain.RoleSeller {
		return domain.Product{}, &domain.PermissionDeniedError{Msg: "only sellers can create products"}
	}

	if err := validateProductFields(name, stock); err != nil {
		return domain.Product{}, err
	}

	if err := domain.ValidateCost(cost); err != nil {
		return domain.Product{}, err
	}

	product := domain.Product{
		ID:      productID,
		Name:    name,
		Cost:    cost,
		Stock:   stock,
		OwnerID: actorID,
	}

	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		return pc.productWriter.InsertProduct(ctx, executor, product)
	})
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

// UpdateProduct patches a product owned by the acting seller.
func (pc *ProductCase) UpdateProduct(ctx context.Context, actorID, productID uuid.UUID, patch ProductPatch) (domain.Product, error) {
	var updated domain.Product
	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productLocker.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if product.OwnerID != actorID {
			return &domain.PermissionDeniedError{Msg: "can not update product of another seller"}
		}

		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Cost != nil {
			product.Cost = *patch.Cost
		}
		if patch.Stock != nil {
			product.Stock = *patch.Stock
		}

		if err := validateProductFields(product.Name, product.Stock); err != nil {
			return err
		}

		if err := domain.ValidateCost(product.Cost); err != nil {
			return err
		}

		if err := pc.productWriter.UpdateProduct(ctx, executor, product); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

// CreateOrUpdateProduct updates the product when the id already exists and
// creates it otherwise. A create racing another create for the same id loses
// with ProductExistsError from the unique constraint.
func (pc *ProductCase) CreateOrUpdateProduct(ctx context.Context, actorID, productID uuid.UUID, name string, cost, stock int) (domain.Product, error) {
	_, found, err := pc.productsRepository.TryGetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if found {
		return pc.UpdateProduct(ctx, actorID, productID, ProductPatch{
			Name:  &name,
			Cost:  &cost,
			Stock: &stock,
		})
	}

	return pc.CreateProduct(ctx, actorID, productID, name, cost, stock)
}

// DeleteProduct removes a product owned by the acting seller.
func (pc *ProductCase) DeleteProduct(ctx context.Context, actorID, productID uuid.UUID) error {
	return pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.productLocker.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		if product.OwnerID != actorID {
			return &domain.PermissionDeniedError{Msg: "can not delete product of another seller"}
		}

		return pc.productWriter.DeleteProduct(ctx, executor, productID)
	})
}

func validateProductFields(name string, stock int) error {
	if strings.TrimSpace(name) == "" {
		return &domain.InvalidArgumentsError{Msg: "product name must not be empty"}
	}

	if stock < 0 {
		return &domain.InvalidArgumentsError{Msg: "stock must not be negative"}
	}

	return nil
}
