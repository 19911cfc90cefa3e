package store

import (
	"time"

	"wattpool/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s

	AppName     string
	MaxConnIdle time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// PGFromConfig reads SERVICE_PGSQL_* style keys, the backend is enabled when DBURL is set
func PGFromConfig(c config.Conf) PGConfig {
	return PGConfig{
		Enabled:        c.Has("DBURL"),
		URL:            c.MayString("DBURL", ""),
		MaxConns:       int32(c.MayInt("MAX_CONNS", 4)),
		SlowQueryMs:    c.MayInt("SLOW_MS", 500),
		LogSQL:         c.MayBool("LOG_SQL", false),
		ConnectRetries: c.MayInt("CONNECT_RETRIES", 20),
		PingTimeout:    c.MayDuration("PING_TIMEOUT", 3*time.Second),
		AppName:        c.MayString("APP_NAME", "wattpool"),
		MaxConnIdle:    c.MayDuration("MAX_CONN_IDLE", 5*time.Minute),
	}
}

// CHFromConfig reads SERVICE_CLICKHOUSE_* style keys, the backend is enabled when DBURL is set
func CHFromConfig(c config.Conf, tag string) CHConfig {
	return CHConfig{
		Enabled:    c.Has("DBURL"),
		URL:        c.MayString("DBURL", ""),
		ClientName: "wattpool",
		ClientTag:  tag,
	}
}
