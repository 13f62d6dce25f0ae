package application

import (
	"context"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
)

type DeleteAccountCase struct {
	txManager          database.TxManager
	accountsRepository domain.AccountsRepository
	passwordHasher     domain.PasswordHasher
	productWriter      domain.ProductWriter
	accountEraser      domain.AccountEraser
}

func NewDeleteAccountCase(
	txManager database.TxManager,
	accountsRepository domain.AccountsRepository,
	passwordHasher domain.PasswordHasher,
	productWriter domain.ProductWriter,
	accountEraser domain.AccountEraser,
) *DeleteAccountCase {
	return &DeleteAccountCase{
		txManager:          txManager,
		accountsRepository: accountsRepository,
		passwordHasher:     passwordHasher,
		productWriter:      productWriter,
		accountEraser:      accountEraser,
	}
}

// DeleteAccount removes the acting account after re-verifying its password.
// Deleting a seller also removes every product it owns, in one transaction.
func (dc *DeleteAccountCase) DeleteAccount(ctx context.Context, accountID uuid.UUID, password string) error {
	account, err := dc.accountsRepository.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	valid, err := dc.passwordHasher.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return err
	}

	if !valid {
		return &domain.CredentialsMismatchError{Msg: "password confirmation does not match"}
	}

	return dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if err := dc.productWriter.EraseByOwner(ctx, executor, accountID); err != nil {
			return err
		}

		return dc.accountEraser.EraseAccount(ctx, executor, accountID)
	})
}
