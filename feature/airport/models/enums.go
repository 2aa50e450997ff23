package models

import "fmt"

// Kind classifies an airport. OpenAIP delivers it as a small integer code;
// we store the symbolic name.
type Kind string

const (
	KindAirport           Kind = "AIRPORT"
	KindGliderSite        Kind = "GLIDER_SITE"
	KindAirfieldCivil     Kind = "AIRFIELD_CIVIL"
	KindInternational     Kind = "INTERNATIONAL"
	KindHeliportMilitary  Kind = "HELIPORT_MILITARY"
	KindMilitaryAerodrome Kind = "MILITARY_AERODROME"
	KindULFlyingSite      Kind = "UL_FLYING_SITE"
	KindHeliportCivil     Kind = "HELIPORT_CIVIL"
	KindAerodromeClosed   Kind = "AERODROME_CLOSED"
	KindAirportIFR        Kind = "AIRPORT_IFR"
	KindAirfieldWater     Kind = "AIRFIELD_WATER"
	KindLandingStrip      Kind = "LANDING_STRIP"
	KindAgriculturalStrip Kind = "AGRICULTURAL_STRIP"
	KindAltiport          Kind = "ALTIPORT"
)

var kindByCode = map[int]Kind{
	0:  KindAirport,
	1:  KindGliderSite,
	2:  KindAirfieldCivil,
	3:  KindInternational,
	4:  KindHeliportMilitary,
	5:  KindMilitaryAerodrome,
	6:  KindULFlyingSite,
	7:  KindHeliportCivil,
	8:  KindAerodromeClosed,
	9:  KindAirportIFR,
	10: KindAirfieldWater,
	11: KindLandingStrip,
	12: KindAgriculturalStrip,
	13: KindAltiport,
}

// KindFromCode maps an OpenAIP airport type code to its Kind.
// An unknown code means the upstream schema moved ahead of us and is a
// validation error, never a default.
func KindFromCode(code int) (Kind, error) {
	kind, ok := kindByCode[code]
	if !ok {
		return "", fmt.Errorf("unknown airport type code %d", code)
	}
	return kind, nil
}

// RadioType classifies the usage of an airport radio frequency.
type RadioType string

const (
	RadioApproach  RadioType = "Approach"
	RadioApron     RadioType = "APRON"
	RadioArrival   RadioType = "Arrival"
	RadioCenter    RadioType = "Center"
	RadioCTAF      RadioType = "CTAF"
	RadioDelivery  RadioType = "Delivery"
	RadioDeparture RadioType = "Departure"
	RadioFIS       RadioType = "FIS"
	RadioGliding   RadioType = "Gliding"
	RadioGround    RadioType = "Ground"
	RadioInfo      RadioType = "Info"
	RadioMulticom  RadioType = "Multicom"
	RadioUnicom    RadioType = "Unicom"
	RadioRadar     RadioType = "Radar"
	RadioTower     RadioType = "Tower"
	RadioATIS      RadioType = "ATIS"
	RadioRadio     RadioType = "Radio"
	RadioOther     RadioType = "Other"
	RadioAIRMET    RadioType = "AIRMET"
	RadioAWOS      RadioType = "AWOS"
	RadioLights    RadioType = "Lights"
	RadioVOLMET    RadioType = "VOLMET"
	RadioUnknown   RadioType = "Unknown"
)

var radioTypeByCode = map[int]RadioType{
	0:  RadioApproach,
	1:  RadioApron,
	2:  RadioArrival,
	3:  RadioCenter,
	4:  RadioCTAF,
	5:  RadioDelivery,
	6:  RadioDeparture,
	7:  RadioFIS,
	8:  RadioGliding,
	9:  RadioGround,
	10: RadioInfo,
	11: RadioMulticom,
	12: RadioUnicom,
	13: RadioRadar,
	14: RadioTower,
	15: RadioATIS,
	16: RadioRadio,
	17: RadioOther,
	18: RadioAIRMET,
	19: RadioAWOS,
	20: RadioLights,
	21: RadioVOLMET,
	22: RadioUnknown,
}

// RadioTypeFromCode maps an OpenAIP frequency type code to its RadioType.
func RadioTypeFromCode(code int) (RadioType, error) {
	rt, ok := radioTypeByCode[code]
	if !ok {
		return "", fmt.Errorf("unknown frequency type code %d", code)
	}
	return rt, nil
}

// RunwaySurface classifies the main composite of a runway surface.
type RunwaySurface string

const (
	SurfaceAsphalt           RunwaySurface = "Asphalt"
	SurfaceConcrete          RunwaySurface = "Concrete"
	SurfaceGrass             RunwaySurface = "Grass"
	SurfaceSand              RunwaySurface = "Sand"
	SurfaceWater             RunwaySurface = "Water"
	SurfaceEarthCement       RunwaySurface = "EarthCement"
	SurfaceBrick             RunwaySurface = "Brick"
	SurfaceMacadamOrTarmac   RunwaySurface = "MacadamOrTarmac"
	SurfaceStone             RunwaySurface = "Stone"
	SurfaceCoral             RunwaySurface = "Coral"
	SurfaceClay              RunwaySurface = "Clay"
	SurfaceLaterite          RunwaySurface = "Laterite"
	SurfaceGravel            RunwaySurface = "Gravel"
	SurfaceEarth             RunwaySurface = "Earth"
	SurfaceIce               RunwaySurface = "Ice"
	SurfaceSnow              RunwaySurface = "Snow"
	SurfaceLaminate          RunwaySurface = "ProtectiveLaminate"
	SurfaceMetal             RunwaySurface = "Metal"
	SurfaceLandingMat        RunwaySurface = "LandingMatPortableSystem"
	SurfaceSteelPlanking     RunwaySurface = "PiercedSteelPlanking"
	SurfaceWood              RunwaySurface = "Wood"
	SurfaceNonBituminousMix  RunwaySurface = "NonBituminousMix"
	SurfaceUnknown           RunwaySurface = "Unknown"
)

var runwaySurfaceByCode = map[int]RunwaySurface{
	0:  SurfaceAsphalt,
	1:  SurfaceConcrete,
	2:  SurfaceGrass,
	3:  SurfaceSand,
	4:  SurfaceWater,
	5:  SurfaceEarthCement,
	6:  SurfaceBrick,
	7:  SurfaceMacadamOrTarmac,
	8:  SurfaceStone,
	9:  SurfaceCoral,
	10: SurfaceClay,
	11: SurfaceLaterite,
	12: SurfaceGravel,
	13: SurfaceEarth,
	14: SurfaceIce,
	15: SurfaceSnow,
	16: SurfaceLaminate,
	17: SurfaceMetal,
	18: SurfaceLandingMat,
	19: SurfaceSteelPlanking,
	20: SurfaceWood,
	21: SurfaceNonBituminousMix,
	22: SurfaceUnknown,
}

// RunwaySurfaceFromCode maps an OpenAIP surface composite code to its RunwaySurface.
func RunwaySurfaceFromCode(code int) (RunwaySurface, error) {
	sfc, ok := runwaySurfaceByCode[code]
	if !ok {
		return "", fmt.Errorf("unknown runway surface code %d", code)
	}
	return sfc, nil
}
