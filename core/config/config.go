package config

import (
	"reflect"
	"strings"

	"github.com/weglide/flugfeld/core/logger"
	"github.com/weglide/flugfeld/core/storage"
	"github.com/weglide/flugfeld/feature/airport/nominatim"
	"github.com/weglide/flugfeld/feature/airport/openaip"
	"github.com/weglide/flugfeld/feature/airport/snapshot"
	"github.com/weglide/flugfeld/feature/airport/weglide"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Snapshot holds the paths of the published snapshot files.
	Snapshot snapshot.Config `mapstructure:"snapshot"`
	// OpenAIP holds configuration for the OpenAIP airport source.
	OpenAIP openaip.Config `mapstructure:"openaip"`
	// WeGlide holds configuration for the WeGlide launch statistics API.
	WeGlide weglide.Config `mapstructure:"weglide"`
	// Nominatim holds configuration for the reverse geocoder.
	Nominatim nominatim.Config `mapstructure:"nominatim"`
	// Storage holds configuration for the artifact storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. OPENAIP_API_KEY -> openaip.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
