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

const uniqueViolationCode = "23505"

type AccountsRepository struct {
	querier database.QueryExecuter
}

func NewAccountsRepository(querier database.QueryExecuter) *AccountsRepository {
	return &AccountsRepository{
		querier: querier,
	}
}

func (r *AccountsRepository) CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	creationSQL := `INSERT INTO accounts (id, username, password_hash, role, balance) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, creationSQL,
		account.ID, account.Username, account.PasswordHash, string(account.Role), account.Balance)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Account{}, &domain.AccountExistsError{
				Msg: fmt.Sprintf("account %s already exists", account.Username),
			}
		}

		return domain.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) TryGetByUsername(ctx context.Context, username string) (domain.Account, bool, error) {
	querySQL := `SELECT id, username, password_hash, role, balance FROM accounts WHERE username = $1`

	account, err := scanAccount(r.querier.QueryRow(ctx, querySQL, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, false, nil
		}

		return domain.Account{}, false, fmt.Errorf("failed to find account: %w", err)
	}

	return account, true, nil
}

func (r *AccountsRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	querySQL := `SELECT id, username, password_hash, role, balance FROM accounts WHERE id = $1`

	account, err := scanAccount(r.querier.QueryRow(ctx, querySQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", id)}
		}

		return domain.Account{}, fmt.Errorf("failed to find account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	updateSQL := `UPDATE accounts SET password_hash = $1 WHERE id = $2`

	tag, err := r.querier.Exec(ctx, updateSQL, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", id)}
	}

	return nil
}

func (r *AccountsRepository) LockAccount(ctx context.Context, querier database.Querier, id uuid.UUID) (domain.Account, error) {
	lockSQL := `SELECT id, username, password_hash, role, balance FROM accounts WHERE id = $1 FOR UPDATE`

	account, err := scanAccount(querier.QueryRow(ctx, lockSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", id)}
		}

		return domain.Account{}, fmt.Errorf("failed to lock account row: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) SetBalance(ctx context.Context, executor database.Executor, id uuid.UUID, balance int) error {
	updateSQL := `UPDATE accounts SET balance = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, updateSQL, balance, id)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", id)}
	}

	return nil
}

func (r *AccountsRepository) DebitBalance(ctx context.Context, executor database.Executor, id uuid.UUID, amount int) error {
	updateSQL := `UPDATE accounts SET balance = balance - $1 WHERE id = $2 AND balance >= $1`

	tag, err := executor.Exec(ctx, updateSQL, amount, id)
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientFundsError{Msg: "insufficient balance"}
	}

	return nil
}

func (r *AccountsRepository) EraseAccount(ctx context.Context, executor database.Executor, id uuid.UUID) error {
	deleteSQL := `DELETE FROM accounts WHERE id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", id)}
	}

	return nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var account domain.Account
	var role string

	err := row.Scan(&account.ID, &account.Username, &account.PasswordHash, &role, &account.Balance)
	if err != nil {
		return domain.Account{}, err
	}

	account.Role = domain.Role(role)
	return account, nil
}
