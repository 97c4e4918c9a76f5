package rest

import "time"

const (
	// DefaultBaseURL is the platform's default REST origin.
	DefaultBaseURL = "https://api.revolt.chat"
	// DefaultUserAgent is the value the REST client sends unless the
	// caller overrides it; the gateway client sends its own ("rive-gateway").
	DefaultUserAgent = "rive-rest (https://github.com/catuhana/rive)"

	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 25 * time.Second
	defaultBackoffFactor  = 2.0
	defaultJitter         = 2 * time.Millisecond
	defaultRetryCount     = 2
	defaultTimeout        = 12 * time.Second
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	UserAgent  string
	RetryCount int
	Timeout    time.Duration
}

// NewConfig returns a Config with the platform defaults.
func NewConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		UserAgent:  DefaultUserAgent,
		RetryCount: defaultRetryCount,
		Timeout:    defaultTimeout,
	}
}
