package openaip

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/weglide/flugfeld/feature/airport/models"
)

var titleCaser = cases.Title(language.Und)

// unitMeter is the only measurement unit we accept from the feed. Any other
// unit code means the upstream schema changed under us.
const unitMeter = 0

type rawMeasure struct {
	Value float64 `json:"value"`
	Unit  int     `json:"unit"`
}

type rawFrequency struct {
	Value   string  `json:"value"`
	Type    int     `json:"type"`
	Name    *string `json:"name"`
	Primary bool    `json:"primary"`
}

type rawRunway struct {
	Designator  string  `json:"designator"`
	TrueHeading float64 `json:"trueHeading"`
	MainRunway  bool    `json:"mainRunway"`
	Surface     struct {
		MainComposite int `json:"mainComposite"`
	} `json:"surface"`
	Dimension struct {
		Length rawMeasure `json:"length"`
		Width  rawMeasure `json:"width"`
	} `json:"dimension"`
}

type rawItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Type     int     `json:"type"`
	ICAOCode *string `json:"icaoCode"`
	Country  string  `json:"country"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Elevation   rawMeasure     `json:"elevation"`
	Frequencies []rawFrequency `json:"frequencies"`
	Runways     []rawRunway    `json:"runways"`
}

// parseItem converts a raw OpenAIP airport into the internal representation:
// enum codes mapped exhaustively, units validated, main radio and runway
// selected (primary flag first, otherwise the first listed).
func parseItem(item rawItem) (models.Airport, error) {
	kind, err := models.KindFromCode(item.Type)
	if err != nil {
		return models.Airport{}, err
	}
	if len(item.Geometry.Coordinates) != 2 {
		return models.Airport{}, fmt.Errorf("geometry has %d coordinates, want 2", len(item.Geometry.Coordinates))
	}
	if item.Elevation.Unit != unitMeter {
		return models.Airport{}, fmt.Errorf("elevation in unexpected unit %d", item.Elevation.Unit)
	}

	airport := models.Airport{
		OpenAIPID:   item.ID,
		OpenAIPName: item.Name,
		Kind:        kind,
		Longitude:   item.Geometry.Coordinates[0],
		Latitude:    item.Geometry.Coordinates[1],
		Elevation:   int(item.Elevation.Value),
		Region:      item.Country,
		ICAO:        item.ICAOCode,
	}

	if len(item.Frequencies) > 0 {
		frequency := item.Frequencies[0]
		for _, f := range item.Frequencies {
			if f.Primary {
				frequency = f
				break
			}
		}
		radioType, err := models.RadioTypeFromCode(frequency.Type)
		if err != nil {
			return models.Airport{}, err
		}
		airport.RadioFrequency = models.Ptr(frequency.Value)
		airport.RadioType = models.Ptr(string(radioType))
		if frequency.Name != nil {
			airport.RadioDescription = models.Ptr(titleCaser.String(*frequency.Name))
		}
	}

	if len(item.Runways) > 0 {
		runway := item.Runways[0]
		for _, r := range item.Runways {
			if r.MainRunway {
				runway = r
				break
			}
		}
		if runway.Dimension.Length.Unit != unitMeter {
			return models.Airport{}, fmt.Errorf("runway length in unexpected unit %d", runway.Dimension.Length.Unit)
		}
		if runway.Dimension.Width.Unit != unitMeter {
			return models.Airport{}, fmt.Errorf("runway width in unexpected unit %d", runway.Dimension.Width.Unit)
		}
		if runway.TrueHeading > 360 {
			return models.Airport{}, fmt.Errorf("runway heading %f out of range", runway.TrueHeading)
		}
		surface, err := models.RunwaySurfaceFromCode(runway.Surface.MainComposite)
		if err != nil {
			return models.Airport{}, err
		}
		airport.RunwayName = models.Ptr(runway.Designator)
		airport.RunwaySurface = models.Ptr(string(surface))
		airport.RunwayDirection = models.Ptr(int(runway.TrueHeading))
		airport.RunwayLength = models.Ptr(int(runway.Dimension.Length.Value))
		airport.RunwayWidth = models.Ptr(int(runway.Dimension.Width.Value))
	}

	return airport, nil
}
