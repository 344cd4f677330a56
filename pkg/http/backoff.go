package http

import "time"

// BackoffConfig controls retries for failed requests. A nil BackoffConfig on
// both client and request means every request is attempted exactly once.
type BackoffConfig struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// Multiplier scales the delay after each retry.
	Multiplier float64
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// RetryableStatusCodes lists HTTP statuses worth retrying. Empty means
	// any 5xx status.
	RetryableStatusCodes []int
}

// NewBackoffConfig creates a backoff configuration with default values.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 200 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     5 * time.Second,
	}
}

// WithMaxRetries sets the number of retries.
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	b.MaxRetries = maxRetries
	return b
}

// WithInitialDelay sets the delay before the first retry.
func (b *BackoffConfig) WithInitialDelay(delay time.Duration) *BackoffConfig {
	b.InitialDelay = delay
	return b
}

// WithMultiplier sets the delay growth factor.
func (b *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	b.Multiplier = multiplier
	return b
}

// WithMaxDelay caps the delay between retries.
func (b *BackoffConfig) WithMaxDelay(maxDelay time.Duration) *BackoffConfig {
	b.MaxDelay = maxDelay
	return b
}

// WithRetryableStatusCodes sets the HTTP statuses worth retrying.
func (b *BackoffConfig) WithRetryableStatusCodes(codes ...int) *BackoffConfig {
	b.RetryableStatusCodes = codes
	return b
}

// retryableStatus reports whether a response status should trigger a retry.
func (b *BackoffConfig) retryableStatus(status int) bool {
	if len(b.RetryableStatusCodes) == 0 {
		return status >= 500
	}
	for _, code := range b.RetryableStatusCodes {
		if code == status {
			return true
		}
	}
	return false
}

// delayFor returns the delay preceding retry number attempt+1.
func (b *BackoffConfig) delayFor(attempt int) time.Duration {
	delay := b.InitialDelay
	for i := 0; i < attempt; i++ {
		delay = time.Duration(float64(delay) * b.Multiplier)
	}
	if b.MaxDelay > 0 && delay > b.MaxDelay {
		delay = b.MaxDelay
	}
	return delay
}
