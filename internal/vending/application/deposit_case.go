package application

import (
	"context"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
)

type DepositCase struct {
	txManager     database.TxManager
	accountLocker domain.AccountLocker
	balanceWriter domain.BalanceWriter
}

func NewDepositCase(
	txManager database.TxManager,
	accountLocker domain.AccountLocker,
	balanceWriter domain.BalanceWriter,
) *DepositCase {
	return &DepositCase{
		txManager:     txManager,
		accountLocker: accountLocker,
		balanceWriter: balanceWriter,
	}
}

// Deposit adds the given coins to a buyer's balance. Every coin is validated
// up front, so an invalid coin rejects the whole deposit. An empty coin
// sequence is vacuously valid and leaves the balance unchanged.
func (dc *DepositCase) Deposit(ctx context.Context, accountID uuid.UUID, coins []int) (domain.Account, error) {
	if err := domain.ValidateCoins(coins); err != nil {
		return domain.Account{}, err
	}

	var updated domain.Account
	err := dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := dc.accountLocker.LockAccount(ctx, executor, accountID)
		if err != nil {
			return err
		}

		if account.Role != domain.RoleBuyer {
			return &domain.PermissionDeniedError{Msg: "only buyers can deposit coins"}
		}

		newBalance := account.Balance + domain.SumCoins(coins)
		if err := dc.balanceWriter.SetBalance(ctx, executor, accountID, newBalance); err != nil {
			return err
		}

		account.Balance = newBalance
		updated = account
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return updated, nil
}
