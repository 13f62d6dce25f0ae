package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ProductsRepository struct {
	querier database.QueryExecuter
}

func NewProductsRepository(querier database.QueryExecuter) *ProductsRepository {
	return &ProductsRepository{
		querier: querier,
	}
}

func (r *ProductsRepository) TryGetProduct(ctx context.Context, id uuid.UUID) (domain.Product, bool, error) {
	querySQL := `SELECT id, name, cost, stock, owner_id FROM products WHERE id = $1`

	product, err := scanProduct(r.querier.QueryRow(ctx, querySQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, false, nil
		}

		return domain.Product{}, false, fmt.Errorf("failed to find product: %w", err)
	}

	return product, true, nil
}

func (r *ProductsRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	product, found, err := r.TryGetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	if !found {
		return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", id)}
	}

	return product, nil
}

func (r *ProductsRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	listSQL := `SELECT id, name, cost, stock, owner_id FROM products ORDER BY name, id`

	rows, err := r.querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		err = rows.Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product rows: %w", err)
	}

	return products, nil
}

func (r *ProductsRepository) LockProduct(ctx context.Context, querier database.Querier, id uuid.UUID) (domain.Product, error) {
	lockSQL := `SELECT id, name, cost, stock, owner_id FROM products WHERE id = $1 FOR UPDATE`

	product, err := scanProduct(querier.QueryRow(ctx, lockSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", id)}
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) InsertProduct(ctx context.Context, executor database.Executor, product domain.Product) error {
	insertSQL := `INSERT INTO products (id, name, cost, stock, owner_id) VALUES ($1, $2, $3, $4, $5)`

	_, err := executor.Exec(ctx, insertSQL,
		product.ID, product.Name, product.Cost, product.Stock, product.OwnerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return &domain.ProductExistsError{Msg: fmt.Sprintf("product %s already exists", product.ID)}
		}

		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

func (r *ProductsRepository) UpdateProduct(ctx context.Context, executor database.Executor, product domain.Product) error {
	updateSQL := `UPDATE products SET name = $1, cost = $2, stock = $3 WHERE id = $4`

	tag, err := executor.Exec(ctx, updateSQL, product.Name, product.Cost, product.Stock, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", product.ID)}
	}

	return nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, executor database.Executor, id uuid.UUID) error {
	deleteSQL := `DELETE FROM products WHERE id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", id)}
	}

	return nil
}

func (r *ProductsRepository) EraseByOwner(ctx context.Context, executor database.Executor, ownerID uuid.UUID) error {
	deleteSQL := `DELETE FROM products WHERE owner_id = $1`

	_, err := executor.Exec(ctx, deleteSQL, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete products of owner: %w", err)
	}

	return nil
}

func (r *ProductsRepository) DecrementStock(ctx context.Context, executor database.Executor, id uuid.UUID, quantity int) error {
	updateSQL := `UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1`

	tag, err := executor.Exec(ctx, updateSQL, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientStockError{Msg: "not enough products in stock"}
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var product domain.Product

	err := row.Scan(&product.ID, &product.Name, &product.Cost, &product.Stock, &product.OwnerID)
	if err != nil {
		return domain.Product{}, err
	}

	return product, nil
}
