package config

import "time"

// Service identifies the running service.
type Service struct {
	Name        string
	Version     string
	Environment string
}

// Server holds HTTP server settings.
type Server struct {
	Port            string
	BasePath        string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// Address returns the listen address for Port.
func (s Server) Address() string {
	return ":" + s.Port
}

// Log holds logger settings.
type Log struct {
	Level       string
	Format      string
	Output      string
	Development bool
}
