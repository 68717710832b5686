package config

import (
	"github.com/workhoops/workhoops-api/pkg/config"
	"github.com/workhoops/workhoops-api/pkg/logger"
	"go.uber.org/zap"
)

const serviceName = "api"

// Config is the typed configuration of the API service.
type Config struct {
	Service Service
	Server  Server
	MongoDB MongoDB
	Redis   Redis
	Events  Events
	Log     Log
	Logger  *zap.Logger
}

// Load reads configuration through pkg/config and builds the service logger.
func Load() (*Config, error) {
	cfg, err := config.Load(serviceName, defaults()...)
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")
	appConfig.Service.Environment = cfg.GetString("service.environment")

	appConfig.Server.Port = cfg.GetString("server.port")
	appConfig.Server.BasePath = cfg.GetString("server.base_path")
	appConfig.Server.CORSOrigins = cfg.GetStringSlice("server.cors_origins")
	appConfig.Server.ShutdownTimeout = cfg.GetDuration("server.shutdown_timeout")

	appConfig.MongoDB.URI = cfg.GetString("mongodb.uri")
	appConfig.MongoDB.Database = cfg.GetString("mongodb.database")
	appConfig.MongoDB.ConnectTimeout = cfg.GetDuration("mongodb.connect_timeout")

	appConfig.Redis.Address = cfg.GetString("redis.address")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	appConfig.Events.Enabled = cfg.GetBool("events.enabled")
	appConfig.Events.Channel = cfg.GetString("events.channel")

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.Development = cfg.GetBool("log.development")

	appConfig.Logger, err = logger.NewZapLogger(logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		Development: appConfig.Log.Development,
		Service:     appConfig.Service.Name,
	})
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}

func defaults() []config.Option {
	return []config.Option{
		config.WithDefault("service.name", "WorkHoops API"),
		config.WithDefault("service.version", "1.0.0"),
		config.WithDefault("service.environment", "development"),
		config.WithDefault("server.port", "8001"),
		config.WithDefault("server.base_path", "/api"),
		config.WithDefault("server.cors_origins", []string{"*"}),
		config.WithDefault("server.shutdown_timeout", "10s"),
		config.WithDefault("mongodb.uri", "mongodb://localhost:27017"),
		config.WithDefault("mongodb.database", "workhoops"),
		config.WithDefault("mongodb.connect_timeout", "10s"),
		config.WithDefault("redis.address", "localhost:6379"),
		config.WithDefault("events.enabled", false),
		config.WithDefault("events.channel", "workhoops:events"),
		config.WithDefault("log.level", "info"),
		config.WithDefault("log.format", "json"),
		config.WithDefault("log.output", "stdout"),

		// Variable names used by existing deployments.
		config.WithEnvAlias("mongodb.uri", "MONGO_URL"),
		config.WithEnvAlias("mongodb.database", "DB_NAME"),
		config.WithEnvAlias("server.cors_origins", "CORS_ORIGINS"),
	}
}
