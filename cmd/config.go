package cmd

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	JWTSecret string
	JWTTTL    time.Duration

	NatsURL     string
	NatsSubject string

	RedisAddr     string
	RedisPassword string
	// AuthRateLimit is the number of auth requests a client may make per minute.
	AuthRateLimit int

	NotifyWorkers int
	NotifyBuffer  int
}
