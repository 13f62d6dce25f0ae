package postgres

import (
	"testing"

	"github.com/danielgruber/vending-store/internal/vending/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepository_GetProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	ownerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedRes domain.Product
		expectedErr error
	}

	tests := []testCase{
		{
			name: "product found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "cost", "stock", "owner_id"}).
					AddRow(productID, "cola", 10, 5, ownerID)
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnRows(rows)
			},
			expectedRes: domain.Product{ID: productID, Name: "cola", Cost: 10, Stock: 5, OwnerID: ownerID},
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(productID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			res, err := repo.GetProduct(t.Context(), productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestProductsRepository_ListProducts(t *testing.T) {
	t.Parallel()

	firstID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	secondID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	ownerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedRes []domain.Product
		expectedErr error
	}

	tests := []testCase{
		{
			name: "products listed",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "cost", "stock", "owner_id"}).
					AddRow(firstID, "cola", 10, 5, ownerID).
					AddRow(secondID, "water", 5, 20, ownerID)
				mock.ExpectQuery("SELECT").
					WillReturnRows(rows)
			},
			expectedRes: []domain.Product{
				{ID: firstID, Name: "cola", Cost: 10, Stock: 5, OwnerID: ownerID},
				{ID: secondID, Name: "water", Cost: 5, Stock: 20, OwnerID: ownerID},
			},
		},
		{
			name: "empty catalog",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "name", "cost", "stock", "owner_id"})
				mock.ExpectQuery("SELECT").
					WillReturnRows(rows)
			},
			expectedRes: []domain.Product{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			res, err := repo.ListProducts(t.Context())

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestProductsRepository_InsertProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	ownerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	product := domain.Product{ID: productID, Name: "cola", Cost: 10, Stock: 5, OwnerID: ownerID}

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "product inserted",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("INSERT").
					WithArgs(productID, "cola", 10, 5, ownerID).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectedErr: nil,
		},
		{
			name: "duplicate product",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("INSERT").
					WithArgs(productID, "cola", 10, 5, ownerID).
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectedErr: &domain.ProductExistsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			err = repo.InsertProduct(t.Context(), mock, product)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductsRepository_DecrementStock(t *testing.T) {
	t.Parallel()

	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	type testCase struct {
		name     string
		quantity int

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "stock decremented",
			quantity: 4,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(4, productID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:     "guard rejects oversell",
			quantity: 6,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(6, productID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.InsufficientStockError{},
		},
		{
			name:     "database error",
			quantity: 4,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(4, productID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			err = repo.DecrementStock(t.Context(), mock, productID, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductsRepository_DeleteProduct(t *testing.T) {
	t.Parallel()

	productID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	type testCase struct {
		name string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedErr error
	}

	tests := []testCase{
		{
			name: "product deleted",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE").
					WithArgs(productID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectedErr: nil,
		},
		{
			name: "product not found",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("DELETE").
					WithArgs(productID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewProductsRepository(mock)
			err = repo.DeleteProduct(t.Context(), mock, productID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
