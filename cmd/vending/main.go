package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielgruber/vending-store/internal/pkg/database"
	"github.com/danielgruber/vending-store/internal/pkg/env"
	"github.com/danielgruber/vending-store/internal/pkg/logging"
	"github.com/danielgruber/vending-store/internal/vending/bootstrap"
	"github.com/danielgruber/vending-store/migrations"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	_ = godotenv.Load()

	httpPort := ":8080"
	jwtSecret := "dev-secret"
	dbSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "vending_db",
		SSlEnabled: false,
	}

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &jwtSecret)
	env.TrySetFromEnv(env.EnvDatabaseHost, &dbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &dbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &dbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &dbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &dbSettings.DBName)

	if err := database.MigrateDatabase(dbSettings.GetUrl(), migrations.FS, ".", "pgx", "postgres"); err != nil {
		defaultLogger.Error("failed to migrate database", "error", err.Error())
		return
	}

	app := bootstrap.NewVendingApp(bootstrap.VendingConfig{
		DbSettings: dbSettings,
		HttpPort:   httpPort,
		JwtSecret:  jwtSecret,
	}, defaultLogger)

	group, groupCtx := errgroup.WithContext(mainCtx)

	group.Go(func() error {
		return app.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		app.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil {
		defaultLogger.Error("application failed", "error", err.Error())
	}
}
