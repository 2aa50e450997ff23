package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/models"
)

// columns is the stable CSV column order. Changing it breaks every consumer
// of the snapshot, including the WeGlide import.
var columns = []string{
	"weglide_id",
	"openaip_id",
	"weglide_name",
	"openaip_name",
	"kind",
	"longitude",
	"latitude",
	"elevation",
	"region",
	"continent",
	"timezone",
	"launches",
	"reign",
	"icao",
	"radio_frequency",
	"radio_type",
	"radio_description",
	"rwy_name",
	"rwy_sfc",
	"rwy_direction",
	"rwy_length",
	"rwy_width",
}

// Store reads and writes the persisted airport snapshot.
type Store struct {
	// CSVPath is the snapshot file rewritten throughout a run.
	CSVPath string
	// GeoJSONPath is the dump written once at the end of a run.
	GeoJSONPath string

	logger *zap.Logger
}

// NewStore creates a snapshot store for the given file locations.
func NewStore(csvPath, geojsonPath string, logger *zap.Logger) *Store {
	return &Store{CSVPath: csvPath, GeoJSONPath: geojsonPath, logger: logger}
}

// ReadCSV loads the persisted snapshot. A missing file yields an empty set,
// which is the bootstrap case for a first run.
func (s *Store) ReadCSV() ([]models.Airport, error) {
	file, err := os.Open(s.CSVPath)
	if os.IsNotExist(err) {
		s.logger.Info("No snapshot found, starting empty", zap.String("path", s.CSVPath))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", s.CSVPath, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	if len(header) != len(columns) {
		return nil, fmt.Errorf("snapshot %s has %d columns, want %d", s.CSVPath, len(header), len(columns))
	}

	airports := make([]models.Airport, 0, len(rows)-1)
	for n, row := range rows[1:] {
		airport, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s row %d: %w", s.CSVPath, n+2, err)
		}
		airports = append(airports, airport)
	}

	s.logger.Info("Read snapshot",
		zap.String("path", s.CSVPath),
		zap.Int("airports", len(airports)))
	return airports, nil
}

// WriteCSV persists the full set, replacing the previous snapshot. The write
// completes even if a termination signal arrives while it is in progress.
func (s *Store) WriteCSV(airports []models.Airport) error {
	return withSignalsDeferred(func() error {
		file, err := os.Create(s.CSVPath)
		if err != nil {
			return fmt.Errorf("failed to create snapshot: %w", err)
		}

		writer := csv.NewWriter(file)
		if err := writer.Write(columns); err != nil {
			file.Close()
			return fmt.Errorf("failed to write snapshot header: %w", err)
		}
		for _, airport := range airports {
			if err := writer.Write(toRow(airport)); err != nil {
				file.Close()
				return fmt.Errorf("failed to write snapshot row for %q: %w", airport.DisplayName(), err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			file.Close()
			return fmt.Errorf("failed to flush snapshot: %w", err)
		}
		return file.Close()
	})
}

func toRow(a models.Airport) []string {
	return []string{
		optInt(a.ID),
		a.OpenAIPID,
		optStr(a.Name),
		a.OpenAIPName,
		string(a.Kind),
		formatFloat(a.Longitude),
		formatFloat(a.Latitude),
		strconv.Itoa(a.Elevation),
		a.Region,
		a.Continent,
		optStr(a.Timezone),
		optInt(a.Launches),
		optInt(a.Reign),
		optStr(a.ICAO),
		optStr(a.RadioFrequency),
		optStr(a.RadioType),
		optStr(a.RadioDescription),
		optStr(a.RunwayName),
		optStr(a.RunwaySurface),
		optInt(a.RunwayDirection),
		optInt(a.RunwayLength),
		optInt(a.RunwayWidth),
	}
}

func fromRow(row []string) (models.Airport, error) {
	if len(row) != len(columns) {
		return models.Airport{}, fmt.Errorf("got %d fields, want %d", len(row), len(columns))
	}

	var (
		a   models.Airport
		err error
	)
	if a.ID, err = parseOptInt(row[0]); err != nil {
		return a, fmt.Errorf("weglide_id: %w", err)
	}
	a.OpenAIPID = row[1]
	a.Name = parseOptStr(row[2])
	a.OpenAIPName = row[3]
	a.Kind = models.Kind(row[4])
	if a.Longitude, err = strconv.ParseFloat(row[5], 64); err != nil {
		return a, fmt.Errorf("longitude: %w", err)
	}
	if a.Latitude, err = strconv.ParseFloat(row[6], 64); err != nil {
		return a, fmt.Errorf("latitude: %w", err)
	}
	if a.Elevation, err = strconv.Atoi(row[7]); err != nil {
		return a, fmt.Errorf("elevation: %w", err)
	}
	a.Region = row[8]
	a.Continent = row[9]
	a.Timezone = parseOptStr(row[10])
	if a.Launches, err = parseOptInt(row[11]); err != nil {
		return a, fmt.Errorf("launches: %w", err)
	}
	if a.Reign, err = parseOptInt(row[12]); err != nil {
		return a, fmt.Errorf("reign: %w", err)
	}
	a.ICAO = parseOptStr(row[13])
	a.RadioFrequency = parseOptStr(row[14])
	a.RadioType = parseOptStr(row[15])
	a.RadioDescription = parseOptStr(row[16])
	a.RunwayName = parseOptStr(row[17])
	a.RunwaySurface = parseOptStr(row[18])
	if a.RunwayDirection, err = parseOptInt(row[19]); err != nil {
		return a, fmt.Errorf("rwy_direction: %w", err)
	}
	if a.RunwayLength, err = parseOptInt(row[20]); err != nil {
		return a, fmt.Errorf("rwy_length: %w", err)
	}
	if a.RunwayWidth, err = parseOptInt(row[21]); err != nil {
		return a, fmt.Errorf("rwy_width: %w", err)
	}
	return a, nil
}

// formatFloat renders coordinates with the minimal digits that parse back to
// the identical value, so the snapshot round-trips exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func optStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func parseOptStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseOptInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
