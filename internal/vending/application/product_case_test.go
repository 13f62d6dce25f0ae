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
	"github.com/stretchr/testify/require"
)

type productCaseDeps struct {
	accountsRepository *mocks.MockAccountsRepository
	productsRepository *mocks.MockProductsRepository
	productLocker      *mocks.MockProductLocker
	productWriter      *mocks.MockProductWriter
}

func newProductCaseDeps(ctrl *gomock.Controller) productCaseDeps {
	return productCaseDeps{
		accountsRepository: mocks.NewMockAccountsRepository(ctrl),
		productsRepository: mocks.NewMockProductsRepository(ctrl),
		productLocker:      mocks.NewMockProductLocker(ctrl),
		productWriter:      mocks.NewMockProductWriter(ctrl),
	}
}

func (d productCaseDeps) newCase(ctrl *gomock.Controller) *ProductCase {
	return NewProductCase(passThroughTxManager(ctrl), d.accountsRepository, d.productsRepository, d.productLocker, d.productWriter)
}

func TestProductCase_CreateProduct(t *testing.T) {
	t.Parallel()

	sellerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	type testCase struct {
		name        string
		productName string
		cost        int
		stock       int

		prepareFn func(t *testing.T, d productCaseDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:        "seller creates product",
			productName: "cola",
			cost:        10,
			stock:       5,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
				d.productWriter.EXPECT().InsertProduct(gomock.Any(), gomock.Any(), domain.Product{
					ID:      productID,
					Name:    "cola",
					Cost:    10,
					Stock:   5,
					OwnerID: sellerID,
				}).Return(nil)
			},
		},
		{
			name:        "buyer can not create product",
			productName: "cola",
			cost:        10,
			stock:       5,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleBuyer}, nil)
			},
			expectedErr: &domain.PermissionDeniedError{},
		},
		{
			name:        "cost must be a multiple of five",
			productName: "cola",
			cost:        7,
			stock:       5,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
			},
			expectedErr: &domain.InvalidCostError{},
		},
		{
			name:        "cost must be positive",
			productName: "cola",
			cost:        0,
			stock:       5,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
			},
			expectedErr: &domain.InvalidCostError{},
		},
		{
			name:        "empty name rejected",
			productName: "  ",
			cost:        10,
			stock:       5,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "negative stock rejected",
			productName: "cola",
			cost:        10,
			stock:       -1,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "duplicate id rejected",
			productName: "cola",
			cost:        10,
			stock:       5,
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
					Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
				d.productWriter.EXPECT().InsertProduct(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.ProductExistsError{})
			},
			expectedErr: &domain.ProductExistsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newProductCaseDeps(ctrl)
			tt.prepareFn(t, d)

			product, err := d.newCase(ctrl).CreateProduct(context.Background(), sellerID, productID, tt.productName, tt.cost, tt.stock)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sellerID, product.OwnerID)
			assert.Equal(t, tt.cost, product.Cost)
		})
	}
}

func TestProductCase_UpdateProduct(t *testing.T) {
	t.Parallel()

	sellerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	otherSellerID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	stored := domain.Product{
		ID:      productID,
		Name:    "cola",
		Cost:    10,
		Stock:   5,
		OwnerID: sellerID,
	}

	newName := "soda"
	newCost := 15
	badCost := 7

	type testCase struct {
		name  string
		actor uuid.UUID
		patch ProductPatch

		prepareFn func(t *testing.T, d productCaseDeps)

		expectedProduct domain.Product
		expectedErr     error
	}

	tests := []testCase{
		{
			name:  "owner patches name and cost",
			actor: sellerID,
			patch: ProductPatch{Name: &newName, Cost: &newCost},
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).Return(stored, nil)
				d.productWriter.EXPECT().UpdateProduct(gomock.Any(), gomock.Any(), domain.Product{
					ID:      productID,
					Name:    "soda",
					Cost:    15,
					Stock:   5,
					OwnerID: sellerID,
				}).Return(nil)
			},
			expectedProduct: domain.Product{ID: productID, Name: "soda", Cost: 15, Stock: 5, OwnerID: sellerID},
		},
		{
			name:  "other seller can not update",
			actor: otherSellerID,
			patch: ProductPatch{Name: &newName},
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).Return(stored, nil)
			},
			expectedErr: &domain.PermissionDeniedError{},
		},
		{
			name:  "patched cost must stay a multiple of five",
			actor: sellerID,
			patch: ProductPatch{Cost: &badCost},
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).Return(stored, nil)
			},
			expectedErr: &domain.InvalidCostError{},
		},
		{
			name:  "unknown product",
			actor: sellerID,
			patch: ProductPatch{Name: &newName},
			prepareFn: func(t *testing.T, d productCaseDeps) {
				d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).
					Return(domain.Product{}, &domain.ProductNotFoundError{})
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newProductCaseDeps(ctrl)
			tt.prepareFn(t, d)

			product, err := d.newCase(ctrl).UpdateProduct(context.Background(), tt.actor, productID, tt.patch)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedProduct, product)
		})
	}
}

func TestProductCase_CreateOrUpdateProduct(t *testing.T) {
	t.Parallel()

	sellerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	t.Run("creates when id is unknown", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d := newProductCaseDeps(ctrl)
		d.productsRepository.EXPECT().TryGetProduct(gomock.Any(), productID).
			Return(domain.Product{}, false, nil)
		d.accountsRepository.EXPECT().GetByID(gomock.Any(), sellerID).
			Return(domain.Account{ID: sellerID, Role: domain.RoleSeller}, nil)
		d.productWriter.EXPECT().InsertProduct(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := d.newCase(ctrl).CreateOrUpdateProduct(context.Background(), sellerID, productID, "cola", 10, 5)
		require.NoError(t, err)
	})

	t.Run("updates when id exists", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stored := domain.Product{ID: productID, Name: "cola", Cost: 10, Stock: 5, OwnerID: sellerID}

		d := newProductCaseDeps(ctrl)
		d.productsRepository.EXPECT().TryGetProduct(gomock.Any(), productID).
			Return(stored, true, nil)
		d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).Return(stored, nil)
		d.productWriter.EXPECT().UpdateProduct(gomock.Any(), gomock.Any(), domain.Product{
			ID:      productID,
			Name:    "soda",
			Cost:    20,
			Stock:   7,
			OwnerID: sellerID,
		}).Return(nil)

		product, err := d.newCase(ctrl).CreateOrUpdateProduct(context.Background(), sellerID, productID, "soda", 20, 7)
		require.NoError(t, err)
		assert.Equal(t, 20, product.Cost)
	})
}

func TestProductCase_DeleteProduct(t *testing.T) {
	t.Parallel()

	sellerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	otherSellerID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	stored := domain.Product{ID: productID, Name: "cola", Cost: 10, Stock: 5, OwnerID: sellerID}

	t.Run("owner deletes product", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d := newProductCaseDeps(ctrl)
		d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).Return(stored, nil)
		d.productWriter.EXPECT().DeleteProduct(gomock.Any(), gomock.Any(), productID).Return(nil)

		err := d.newCase(ctrl).DeleteProduct(context.Background(), sellerID, productID)
		assert.NoError(t, err)
	})

	t.Run("other seller can not delete", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d := newProductCaseDeps(ctrl)
		d.productLocker.EXPECT().LockProduct(gomock.Any(), gomock.Any(), productID).Return(stored, nil)

		err := d.newCase(ctrl).DeleteProduct(context.Background(), otherSellerID, productID)
		assert.ErrorIs(t, err, &domain.PermissionDeniedError{})
	})
}
