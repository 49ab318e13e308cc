package config

import "time"

// Config holds runtime settings for the CampusHub CLI.
//
// Fields:
//   - DatabaseDSN: SQLite DSN for the local collections database.
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - RealtimeEndpointAddr: websocket URL of the realtime change feed.
//   - OnlineCheckInterval: how often the client probes server reachability.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	DatabaseDSN          string
	ServerEndpointAddr   string
	RealtimeEndpointAddr string
	OnlineCheckInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "campushub.db"
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RealtimeEndpointAddr = "ws://127.0.0.1:8080/realtime"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
