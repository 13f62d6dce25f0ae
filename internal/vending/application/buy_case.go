package application

import (
	"context"
	"fmt"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
)

type BuyCase struct {
	txManager        database.TxManager
	accountLocker    domain.AccountLocker
	productLocker    domain.ProductLocker
	stockDecrementer domain.StockDecrementer
	balanceWriter    domain.BalanceWriter
}

func NewBuyCase(
	txManager database.TxManager,
	accountLocker domain.AccountLocker,
	productLocker domain.ProductLocker,
	stockDecrementer domain.StockDecrementer,
	balanceWriter domain.BalanceWriter,
) *BuyCase {
	return &BuyCase{
		txManager:        txManager,
		accountLocker:    accountLocker,
		productLocker:    productLocker,
		stockDecrementer: stockDecrementer,
		balanceWriter:    balanceWriter,
	}
}

// Buy purchases quantity units of a product from the buyer's balance. Stock
// decrement and balance debit happen in one transaction; the lock order is
// always account row first, then product row.
func (bc *BuyCase) Buy(ctx context.Context, accountID, productID uuid.UUID, quantity int) (domain.Receipt, error) {
	if quantity <= 0 {
		return domain.Receipt{}, &domain.InvalidArgumentsError{Msg: "quantity must be positive"}
	}

	var receipt domain.Receipt
	err := bc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := bc.accountLocker.LockAccount(ctx, executor, accountID)
		if err != nil {
			return err
		}

		if account.Role != domain.RoleBuyer {
			return &domain.PermissionDeniedError{Msg: "only buyers can buy products"}
		}

		product, err := bc.productLocker.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		total := product.Cost * quantity
		if account.Balance < total {
			return &domain.InsufficientFundsError{Msg: "insufficient balance"}
		}

		if product.Stock < quantity {
			return &domain.InsufficientStockError{
				Msg: fmt.Sprintf("only %d units of product %s in stock", product.Stock, product.ID),
			}
		}

		if err := bc.stockDecrementer.DecrementStock(ctx, executor, productID, quantity); err != nil {
			return err
		}

		if err := bc.balanceWriter.DebitBalance(ctx, executor, accountID, total); err != nil {
			return err
		}

		remainder := account.Balance - total
		change, err := domain.MakeChange(remainder)
		if err != nil {
			return err
		}

		product.Stock -= quantity
		receipt = domain.Receipt{
			Total:    total,
			Product:  product,
			Quantity: quantity,
			Change:   change,
		}
		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	return receipt, nil
}
