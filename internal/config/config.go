// internal/config/config.go
package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Report ReportConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AppConfig struct {
	// WorkDir is the root under which every report request gets its own
	// isolated working directory. Nothing in it outlives the request.
	WorkDir string
}

type ReportConfig struct {
	// Positional fallbacks (1-indexed) for the inventory description and
	// department columns, used when the export carries no matching headers.
	// Columns 3 and 15 are where the stock-analysis export keeps them.
	InventoryDescriptionColumn int
	InventoryDepartmentColumn  int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 30)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 60)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("APP_WORK_DIR", "./data/work")
		viper.SetDefault("REPORT_INV_DESC_COL", 3)
		viper.SetDefault("REPORT_INV_DEPT_COL", 15)

		// Read from environment variables
		viper.AutomaticEnv()

		ensureDir(viper.GetString("APP_WORK_DIR"))

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			App: AppConfig{
				WorkDir: viper.GetString("APP_WORK_DIR"),
			},
			Report: ReportConfig{
				InventoryDescriptionColumn: viper.GetInt("REPORT_INV_DESC_COL"),
				InventoryDepartmentColumn:  viper.GetInt("REPORT_INV_DEPT_COL"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
