// Package configs manages application configuration: database, blob storage,
// upload policy, message queue and the HTTP server. Configuration may come
// from YAML, JSON, TOML or dotenv files and supports hot reload.
//
// Example:
//
//	import "github.com/cotishq/cloudnest/pkg/configs"
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	// AppName is the canonical service name used for logging, tracing and
	// object store client identification.
	AppName = "cloudnest"
	// AppVersion is reported to exporters and the object store client.
	AppVersion = "1.0.0"
)

type (
	// AppConfig is the root of all application configuration.
	AppConfig struct {
		Server         ServerConfig         `mapstructure:"server"`
		DB             DBConfig             `mapstructure:"db"`
		Blob           BlobConfig           `mapstructure:"blob"`
		Upload         UploadConfig         `mapstructure:"upload"`
		Auth           AuthConfig           `mapstructure:"auth"`
		Log            LogConfig            `mapstructure:"log"`
		KV             KVConfig             `mapstructure:"kv"`
		MQ             MQConfig             `mapstructure:"mq"`
		Events         EventsConfig         `mapstructure:"events"`
		Metrics        MetricsConfig        `mapstructure:"metrics"`
		RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
		CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
		Tracing        TracingConfig        `mapstructure:"tracing"`
	}
)

var (
	globalConfig AppConfig
	appViper     *viper.Viper
)

// InitConfig loads application configuration from the given file or directory,
// applies defaults and environment overrides, and optionally enables hot
// reload when server.reload_config is set.
func InitConfig(path string) error {
	appViper = viper.New()
	setAllDefaults(appViper)

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// A file path: viper detects the format from the extension.
		appViper.SetConfigFile(path)
	} else {
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("CLOUDNEST")

	if err := appViper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

func setAllDefaults(v *viper.Viper) {
	var (
		serverConfig         ServerConfig
		dbConfig             DBConfig
		blobConfig           BlobConfig
		uploadConfig         UploadConfig
		authConfig           AuthConfig
		logConfig            LogConfig
		kvConfig             KVConfig
		mqConfig             MQConfig
		eventsConfig         EventsConfig
		metricsConfig        MetricsConfig
		rateLimitConfig      RateLimitConfig
		circuitBreakerConfig CircuitBreakerConfig
		tracingConfig        TracingConfig
	)

	serverConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	blobConfig.setDefaults(v)
	uploadConfig.setDefaults(v)
	authConfig.setDefaults(v)
	logConfig.setDefaults(v)
	kvConfig.setDefaults(v)
	mqConfig.setDefaults(v)
	eventsConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
	circuitBreakerConfig.setDefaults(v)
	tracingConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig returns the global configuration instance.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
