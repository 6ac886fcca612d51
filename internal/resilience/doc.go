// Package resilience provides reliability and fault tolerance patterns for the engine.
// It includes implementations of circuit breakers and retry logic to keep the
// recommendation pipeline degrading gracefully when its backends misbehave.
//
// The package supports:
//   - Circuit breakers for the cache backend and other external stores
//   - Retry logic with exponential backoff and jitter for transient store errors
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.CacheConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return readFromCache()
//	})
//
//	retryConfig := retry.DBConfig()
//	err := retry.WithBackoff(ctx, retryConfig, func() error {
//	    return performQuery()
//	})
package resilience
