package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"wattpool/internal/platform/config"
	"wattpool/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORSOrigins []string
	// QuietPaths are probe paths whose access lines drop to debug
	QuietPaths []string
}

// StackFromConfig reads TIMEOUT, SLOW_REQUEST, CORS_ORIGINS and QUIET_PATHS from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		QuietPaths:  cfg.MayCSV("QUIET_PATHS", []string{"/api/v1/meta/health", "/api/v1/meta/ready"}),
	}
}

// CommonStack returns the baseline api middleware slice
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest, Quiet: o.QuietPaths}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
