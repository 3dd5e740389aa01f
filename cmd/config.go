package cmd

// Config carries everything the service reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret       string
	StripeSecretKey string

	// CashoutFlagWholeBatch controls whether a cashout request flags every
	// eligible parcel of the rider or only the one the request named.
	CashoutFlagWholeBatch bool

	// AssignmentJobSchedule is a six-field cron expression for the rider
	// assignment job.
	AssignmentJobSchedule string
}
