package pricing

import "arborlove_quote/internal/domain/entities"

// RatesVersion identifies the published rate tables below. Bump it whenever a
// rate changes so logged breakdowns can be traced to the tables that produced them.
const RatesVersion = "2024.1"

// CommissionRate is applied to the running subtotal after every other adjustment.
const CommissionRate = 0.10

// Height buckets accepted by the height tables. "40-60" only exists in the
// Ficus/Carrotwood removal override table.
const (
	Height15     = "15"
	Height16To30 = "16-30"
	Height31To45 = "31-45"
	Height40To60 = "40-60"
	Height46To60 = "46-60"
	Height60Plus = "60+"
)

// RateProfile holds the pricing constants for one classification of one
// service type. Fields carry either a flat dollar amount or a multiplier of
// BaseRate depending on the service type; see Adjust for which is which.
//
// Profiles are built once at package init and only handed out by value, so
// nothing outside this package can mutate the shared tables.
type RateProfile struct {
	Classification Classification
	BaseRate       float64
	Surcharge      float64

	FrontYard float64
	BackYard  float64

	UtilityLines     float64
	StumpRemoval     float64
	FallenTree       float64
	PropertyFenced   float64
	EquipmentAccess  float64
	EmergencyCutting float64

	heightRates map[string]float64
}

// HeightRate returns the multiplier for a height bucket. Unknown buckets
// report false and contribute nothing.
func (p RateProfile) HeightRate(height string) (float64, bool) {
	r, ok := p.heightRates[height]
	return r, ok
}

type rateTable struct {
	standard    RateProfile
	nonStandard RateProfile
	others      RateProfile
}

func (t rateTable) profile(c Classification) RateProfile {
	switch c {
	case ClassificationNonStandard:
		return t.nonStandard
	case ClassificationOthers:
		return t.others
	default:
		return t.standard
	}
}

var removalRates = rateTable{
	standard: RateProfile{
		Classification: ClassificationStandard,
		BaseRate:       250,
		Surcharge:      0,
		FrontYard:      -0.1,
		BackYard:       0.1,
		// Flat fees.
		UtilityLines:     800,
		StumpRemoval:     345,
		EquipmentAccess:  345,
		EmergencyCutting: 500,
		// Multipliers.
		FallenTree:     -0.15,
		PropertyFenced: 0.25,
		heightRates: map[string]float64{
			Height15:     0.0,
			Height16To30: 0.6,
			Height31To45: 5.5,
			Height46To60: 7.5,
			Height60Plus: 13.0,
		},
	},
	nonStandard: RateProfile{
		Classification:   ClassificationNonStandard,
		BaseRate:         400,
		Surcharge:        150,
		FrontYard:        -0.1,
		BackYard:         0.1,
		UtilityLines:     800,
		StumpRemoval:     365,
		EquipmentAccess:  345,
		EmergencyCutting: 500,
		FallenTree:       -0.15,
		PropertyFenced:   0.25,
		heightRates: map[string]float64{
			Height15:     0.0,
			Height16To30: 0.75,
			Height31To45: 5.5,
			Height46To60: 8.0,
			Height60Plus: 14.0,
		},
	},
	others: RateProfile{
		Classification:   ClassificationOthers,
		BaseRate:         400,
		Surcharge:        150,
		FrontYard:        -0.1,
		BackYard:         0.1,
		UtilityLines:     800,
		StumpRemoval:     365,
		EquipmentAccess:  345,
		EmergencyCutting: 500,
		FallenTree:       -0.15,
		PropertyFenced:   0.25,
		heightRates: map[string]float64{
			Height15:     0.0,
			Height16To30: 0.45,
			Height31To45: 5.5,
			Height46To60: 8.0,
			Height60Plus: 14.0,
		},
	},
}

// Every trimming value is a multiplier of BaseRate.
var trimmingRates = rateTable{
	standard: RateProfile{
		Classification:   ClassificationStandard,
		BaseRate:         250,
		Surcharge:        0,
		FrontYard:        0.0,
		BackYard:         0.25,
		UtilityLines:     1,
		PropertyFenced:   0.25,
		EquipmentAccess:  -0.1,
		EmergencyCutting: 0.15,
		heightRates: map[string]float64{
			Height15:     0.0,
			Height16To30: 0.15,
			Height31To45: 0.3,
			Height46To60: 0.8,
			Height60Plus: 1.2,
		},
	},
	nonStandard: RateProfile{
		Classification:   ClassificationNonStandard,
		BaseRate:         275,
		Surcharge:        150,
		FrontYard:        0.0,
		BackYard:         0.3,
		UtilityLines:     1.5,
		PropertyFenced:   0.25,
		EquipmentAccess:  -0.1,
		EmergencyCutting: 0.15,
		heightRates: map[string]float64{
			Height15:     0.0,
			Height16To30: 0.2,
			Height31To45: 0.35,
			Height46To60: 0.85,
			Height60Plus: 1.25,
		},
	},
	others: RateProfile{
		Classification:   ClassificationOthers,
		BaseRate:         265,
		Surcharge:        150,
		FrontYard:        0.0,
		BackYard:         0.3,
		UtilityLines:     1.5,
		PropertyFenced:   0.25,
		EquipmentAccess:  -0.1,
		EmergencyCutting: 0.15,
		heightRates: map[string]float64{
			Height15:     0.0,
			Height16To30: 0.2,
			Height31To45: 0.35,
			Height46To60: 0.85,
			Height60Plus: 1.25,
		},
	},
}

// removalOverrideRates replaces the height table for Ficus and Carrotwood
// removals. Buckets are kept exactly as published, including "40-60", which
// overlaps "46-60" in the regular tables.
var removalOverrideRates = map[string]map[string]float64{
	Height15:     {TreeFicus: 0.0, TreeCarrotwood: 0.0},
	Height16To30: {TreeFicus: 0.75, TreeCarrotwood: 0.75},
	Height31To45: {TreeFicus: 5.5, TreeCarrotwood: 5.5},
	Height40To60: {TreeFicus: 9.0, TreeCarrotwood: 7.0},
	Height60Plus: {TreeFicus: 14.5, TreeCarrotwood: 14.0},
}

// ProfileFor returns the rate profile for a service type and classification.
func ProfileFor(serviceType entities.ServiceType, c Classification) (RateProfile, error) {
	switch serviceType {
	case entities.ServiceTypeTreeTrimming:
		return trimmingRates.profile(c), nil
	case entities.ServiceTypeTreeRemoval:
		return removalRates.profile(c), nil
	default:
		return RateProfile{}, ErrUnknownServiceType
	}
}

// RemovalOverrideRate looks up the Ficus/Carrotwood removal multiplier for a
// height bucket and species.
func RemovalOverrideRate(height, treeType string) (float64, bool) {
	bySpecies, ok := removalOverrideRates[height]
	if !ok {
		return 0, false
	}
	r, ok := bySpecies[treeType]
	return r, ok
}
