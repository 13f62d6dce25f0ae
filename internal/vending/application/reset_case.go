package application

import (
	"context"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
)

type ResetCase struct {
	txManager     database.TxManager
	accountLocker domain.AccountLocker
	balanceWriter domain.BalanceWriter
}

func NewResetCase(
	txManager database.TxManager,
	accountLocker domain.AccountLocker,
	balanceWriter domain.BalanceWriter,
) *ResetCase {
	return &ResetCase{
		txManager:     txManager,
		accountLocker: accountLocker,
		balanceWriter: balanceWriter,
	}
}

// Reset drops a buyer's balance back to zero, whatever it was before.
func (rc *ResetCase) Reset(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	var updated domain.Account
	err := rc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := rc.accountLocker.LockAccount(ctx, executor, accountID)
		if err != nil {
			return err
		}

		if account.Role != domain.RoleBuyer {
			return &domain.PermissionDeniedError{Msg: "only buyers can reset their deposit"}
		}

		if err := rc.balanceWriter.SetBalance(ctx, executor, accountID, 0); err != nil {
			return err
		}

		account.Balance = 0
		updated = account
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return updated, nil
}
