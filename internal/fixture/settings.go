package fixture

import (
	"net"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Settings holds the MySQL connection settings of the scratch database.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Prefix   string
}

// SettingsFromEnv reads DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and
// EZC_DB_PREFIX after loading envFile. A missing envFile is fine.
func SettingsFromEnv(envFile string) Settings {
	if envFile != "" {
		// .env might not exist, the environment alone is enough
		_ = godotenv.Load(envFile)
	}

	return Settings{
		Host:     getenv("DB_HOST", "127.0.0.1"),
		Port:     getenv("DB_PORT", "3306"),
		User:     getenv("DB_USERNAME", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Prefix:   getenv("EZC_DB_PREFIX", "ezc"),
	}
}

// ServerDSN returns a DSN for the server without selecting a database.
func (s Settings) ServerDSN() string {
	return s.DSN("")
}

// DSN returns a DSN selecting database name.
func (s Settings) DSN(name string) string {
	cfg := mysql.NewConfig()
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(s.Host, s.Port)
	cfg.DBName = name
	return cfg.FormatDSN()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
