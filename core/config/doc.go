// Package config provides configuration management for Flugfeld.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Snapshot: Paths of the CSV directory and the GeoJSON export
//   - OpenAIP: Airport source endpoint, API key, page size
//   - WeGlide: Launch statistics endpoint and request pacing
//   - Nominatim: Reverse geocoder endpoint and request pacing
//   - Storage: S3/MinIO credentials and bucket settings for publishing
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.OpenAIP.Endpoint)
package config
