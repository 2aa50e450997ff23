package snapshot

// Config holds the paths of the published snapshot files.
type Config struct {
	// CSVPath is the airport directory CSV file.
	CSVPath string `mapstructure:"csv_path" default:"airports.csv"`
	// GeoJSONPath is the GeoJSON export.
	GeoJSONPath string `mapstructure:"geojson_path" default:"airports.geojson"`
}
