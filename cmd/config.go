package cmd

// Config holds every startup setting, loaded from the environment in
// cmd/app/main.go.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderServiceBaseURL is the order service root used by the billing
	// side for the existence check, e.g. http://order-ms:8080.
	OrderServiceBaseURL string

	// OrderServiceTimeoutSeconds bounds the existence-check request.
	// Zero or negative falls back to the orderclient default.
	OrderServiceTimeoutSeconds int
}
