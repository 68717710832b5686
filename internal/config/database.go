package config

import "time"

// MongoDB holds document store connection settings.
type MongoDB struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Redis holds the event bus connection.
type Redis struct {
	Address  string
	Password string
	DB       int
}

// Events controls domain event publishing.
type Events struct {
	Enabled bool
	Channel string
}
