package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/pkg/jwt"
	"github.com/danielgruber/vending-store/internal/pkg/logging"
	"github.com/danielgruber/vending-store/internal/vending/application"
	"github.com/danielgruber/vending-store/internal/vending/domain"
	httpwrap "github.com/danielgruber/vending-store/internal/vending/infrastructure/http"
	"github.com/danielgruber/vending-store/internal/vending/infrastructure/postgres"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 5 * time.Second
)

type VendingApp struct {
	cfg    VendingConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewVendingApp(cfg VendingConfig, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *VendingApp) Run(ctx context.Context) error {
	logger := a.logger

	dbpool, err := pgxpool.New(ctx, a.cfg.DbSettings.GetUrl())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.dbpool = dbpool
	txManager := database.NewDelegateTxManager(dbpool, logger)

	accountsRepository := postgres.NewAccountsRepository(dbpool)
	productsRepository := postgres.NewProductsRepository(dbpool)

	passwordHasher := domain.NewArgonPasswordHasher()
	passwordPolicy := domain.NewStrengthPasswordPolicy()

	authCase := application.NewAuthCase(accountsRepository, passwordHasher, passwordPolicy, jwt.NewJWTTokenIssuer(), a.cfg.JwtSecret)
	deleteAccountCase := application.NewDeleteAccountCase(txManager, accountsRepository, passwordHasher, productsRepository, accountsRepository)
	depositCase := application.NewDepositCase(txManager, accountsRepository, accountsRepository)
	resetCase := application.NewResetCase(txManager, accountsRepository, accountsRepository)
	buyCase := application.NewBuyCase(txManager, accountsRepository, productsRepository, productsRepository, accountsRepository)
	productCase := application.NewProductCase(txManager, accountsRepository, productsRepository, productsRepository, productsRepository)

	authHandler := httpwrap.NewAuthHandler(authCase, deleteAccountCase)
	commerceHandler := httpwrap.NewCommerceHandler(&commerceFacade{
		depositCase: depositCase,
		buyCase:     buyCase,
		resetCase:   resetCase,
	})
	productHandler := httpwrap.NewProductHandler(productCase)

	router := gin.Default()

	authMiddleware := httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), []byte(a.cfg.JwtSecret))

	api := router.Group("/api")
	{
		api.POST("/user", authHandler.Register)
		api.POST("/auth", authHandler.Authenticate)

		api.GET("/product", productHandler.ListProducts)
		api.GET("/product/:"+httpwrap.ProductIDKey, productHandler.GetProduct)

		authenticated := api.Group("/", authMiddleware)
		{
			authenticated.GET("/user", authHandler.GetAccount)
			authenticated.DELETE("/user", authHandler.DeleteAccount)
			authenticated.GET("/user/:"+httpwrap.AccountUsernameKey, authHandler.GetAccountByName)
			authenticated.PUT("/user/:"+httpwrap.AccountUsernameKey, authHandler.UpdateAccount)

			authenticated.POST("/deposit", commerceHandler.Deposit)
			authenticated.POST("/buy", commerceHandler.Buy)
			authenticated.POST("/reset", commerceHandler.Reset)

			authenticated.POST("/product", productHandler.CreateProduct)
			authenticated.PUT("/product/:"+httpwrap.ProductIDKey, productHandler.PutProduct)
			authenticated.DELETE("/product/:"+httpwrap.ProductIDKey, productHandler.DeleteProduct)
		}
	}

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", a.cfg.HttpPort)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *VendingApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("http server stopped")
}

// commerceFacade joins the three buyer operations behind the single interface
// the http layer expects.
type commerceFacade struct {
	depositCase *application.DepositCase
	buyCase     *application.BuyCase
	resetCase   *application.ResetCase
}

func (f *commerceFacade) Deposit(ctx context.Context, accountID uuid.UUID, coins []int) (domain.Account, error) {
	return f.depositCase.Deposit(ctx, accountID, coins)
}

func (f *commerceFacade) Buy(ctx context.Context, accountID, productID uuid.UUID, quantity int) (domain.Receipt, error) {
	return f.buyCase.Buy(ctx, accountID, productID, quantity)
}

func (f *commerceFacade) Reset(ctx context.Context, accountID uuid.UUID) (domain.Account, error) {
	return f.resetCase.Reset(ctx, accountID)
}
