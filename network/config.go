package network

import "time"

// Config holds snapshot feed settings
type Config struct {
	// Addr to bind, Path to serve the upgrade on
	Addr string
	Path string

	// Rate is snapshots per second
	Rate int

	MaxPeers int

	WriteTimeout    time.Duration
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns loopback-only defaults
func DefaultConfig() *Config {
	return &Config{
		Addr:            "127.0.0.1:8088",
		Path:            "/feed",
		Rate:            20,
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   8,
	}
}
