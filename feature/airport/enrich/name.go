package enrich

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/weglide/flugfeld/feature/airport/models"
)

var titleCaser = cases.Title(language.Und)

// nameReplacer strips airport synonyms and fixes common casing artifacts in
// provider names. Order matters: longer variants first so truncated feed
// values ("Airpor") still match.
var nameReplacer = strings.NewReplacer(
	"Airport", "",
	"Airpor", "",
	"Airpo", "",
	"Airpark", "",
	"Air Park", "",
	"Airfield", "",
	"Air Field", "",
	"Airstrip", "",
	"Air Strip", "",
	"Landing Strip", "",
	"Strip", "",
	"Field", "",
	"Ultralightport", "",
	"Ultralight", "",
	"Ultraligh", "",
	"Stolport", "",
	"Aviation", "",
	"Aerodrome", "",
	"Gliderport", "",
	"/Private/", "Private",
	" The ", " ",
	" And ", " and ",
	// French particles keep lower case.
	" L ", " l'",
	" D ", " d'",
	" Et ", " et ",
	" En ", " en ",
	" Des ", " des ",
	" De ", " de ",
	" Du ", " du ",
	" La ", " la ",
	" Le ", " le ",
	" Les ", " les ",
	" Sur ", " sur ",
	" / ", " - ",
)

// formatName cleans a title-cased provider name into a display name.
// Falls back to the input when stripping leaves next to nothing (an airport
// literally named "Airfield" should not become an empty string).
func formatName(original string) string {
	formatted := nameReplacer.Replace(original)
	formatted = strings.Join(strings.Fields(formatted), " ")
	if len(formatted) > 2 {
		return formatted
	}
	return original
}

// AssignNames derives a WeGlide display name for airports that have none,
// from the title-cased provider name. Curated names are never touched.
func AssignNames(airports []models.Airport) []models.Airport {
	airports = models.Clone(airports)
	for i := range airports {
		if airports[i].Name != nil {
			continue
		}
		derived := formatName(titleCaser.String(strings.ToLower(airports[i].OpenAIPName)))
		airports[i].Name = models.Ptr(derived)
	}
	return airports
}
