package bootstrap

import "github.com/danielgruber/vending-store/internal/pkg/database"

type VendingConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string
}
