//go:generate mockgen
package application

import (
	"context"
	"testing"

	mocks "github.com/danielgruber/vending-store/gen/mocks/vending"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeleteAccountCase_DeleteAccount(t *testing.T) {
	t.Parallel()

	sellerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	type deps struct {
		accountsRepository *mocks.MockAccountsRepository
		passwordHasher     *mocks.MockPasswordHasher
		productWriter      *mocks.MockProductWriter
		accountEraser      *mocks.MockAccountEraser
	}

	type testCase struct {
		name     string
		password string

		prepareFn func(t *testing.T, d deps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "seller deletion cascades owned products",
			password: "Password123",
			prepareFn: func(t *testing.T, d deps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).Return(domain.Account{
					ID:           sellerID,
					Role:         domain.RoleSeller,
					PasswordHash: "stored_hash",
				}, nil)
				d.passwordHasher.EXPECT().VerifyPassword("Password123", "stored_hash").Return(true, nil)
				d.productWriter.EXPECT().EraseByOwner(gomock.Any(), gomock.Any(), sellerID).Return(nil)
				d.accountEraser.EXPECT().EraseAccount(gomock.Any(), gomock.Any(), sellerID).Return(nil)
			},
		},
		{
			name:     "wrong password keeps the account",
			password: "WrongPass1",
			prepareFn: func(t *testing.T, d deps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).Return(domain.Account{
					ID:           sellerID,
					Role:         domain.RoleSeller,
					PasswordHash: "stored_hash",
				}, nil)
				d.passwordHasher.EXPECT().VerifyPassword("WrongPass1", "stored_hash").Return(false, nil)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "unknown account",
			password: "Password123",
			prepareFn: func(t *testing.T, d deps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{}, &domain.AccountNotFoundError{})
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := deps{
				accountsRepository: mocks.NewMockAccountsRepository(ctrl),
				passwordHasher:     mocks.NewMockPasswordHasher(ctrl),
				productWriter:      mocks.NewMockProductWriter(ctrl),
				accountEraser:      mocks.NewMockAccountEraser(ctrl),
			}
			tt.prepareFn(t, d)

			deleteCase := NewDeleteAccountCase(passThroughTxManager(ctrl), d.accountsRepository, d.passwordHasher, d.productWriter, d.accountEraser)

			err := deleteCase.DeleteAccount(context.Background(), sellerID, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
