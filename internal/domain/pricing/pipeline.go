package pricing

import "arborlove_quote/internal/domain/entities"

// Breakdown records every term added while pricing one line item. Terms that
// did not apply are zero.
type Breakdown struct {
	BaseRate         float64 `json:"baseRate"`
	Height           float64 `json:"height"`
	HeightOverride   bool    `json:"heightOverride"`
	PropertyFenced   float64 `json:"propertyFenced"`
	StumpRemoval     float64 `json:"stumpRemoval"`
	FallenTree       float64 `json:"fallenTree"`
	Location         float64 `json:"location"`
	UtilityLines     float64 `json:"utilityLines"`
	EmergencyCutting float64 `json:"emergencyCutting"`
	EquipmentAccess  float64 `json:"equipmentAccess"`
	Surcharge        float64 `json:"surcharge"`
	Subtotal         float64 `json:"subtotal"`
	Commission       float64 `json:"commission"`
	Raw              float64 `json:"raw"`
}

// Adjust runs the adjustment pipeline for one line item against its profile.
//
// The order is fixed: rate-relative terms use BaseRate, flat terms follow, and
// the surcharge and commission apply to the running amount at the very end.
// The amount is accumulated term by term so results are bit-for-bit stable.
func Adjust(p RateProfile, s entities.ServiceRequest) Breakdown {
	removal := s.ServiceType == entities.ServiceTypeTreeRemoval
	b := Breakdown{BaseRate: p.BaseRate}
	amount := p.BaseRate

	add := func(term *float64, v float64) {
		*term = v
		amount += v
	}

	if r, ok := overrideRate(s); ok {
		b.HeightOverride = true
		add(&b.Height, p.BaseRate*r)
	} else {
		r, _ := p.HeightRate(s.TreeHeight)
		add(&b.Height, p.BaseRate*r)
	}

	if s.PropertyFenced {
		add(&b.PropertyFenced, p.BaseRate*p.PropertyFenced)
	}

	if removal {
		if s.StumpRemoval {
			add(&b.StumpRemoval, p.StumpRemoval)
		}
		if s.FallenDown {
			add(&b.FallenTree, p.BaseRate*p.FallenTree)
		}
	}

	switch s.TreeLocation {
	case entities.TreeLocationBackYard:
		add(&b.Location, p.BaseRate*p.BackYard)
	case entities.TreeLocationFrontYard:
		add(&b.Location, p.BaseRate*p.FrontYard)
	}

	// Removal charges utility lines and emergency work as flat fees, trimming
	// as a share of the base rate.
	if removal {
		if s.UtilityLines {
			add(&b.UtilityLines, p.UtilityLines)
		}
		if s.EmergencyCutting {
			add(&b.EmergencyCutting, p.EmergencyCutting)
		}
	} else {
		if s.UtilityLines {
			add(&b.UtilityLines, p.BaseRate*p.UtilityLines)
		}
		if s.EmergencyCutting {
			add(&b.EmergencyCutting, p.BaseRate*p.EmergencyCutting)
		}
	}

	// Removal pays a flat fee when equipment cannot reach the tree; trimming
	// gets a discount when it can.
	if removal && !s.EquipmentAccess {
		add(&b.EquipmentAccess, p.EquipmentAccess)
	}
	if s.ServiceType == entities.ServiceTypeTreeTrimming && s.EquipmentAccess {
		add(&b.EquipmentAccess, p.BaseRate*p.EquipmentAccess)
	}

	add(&b.Surcharge, p.Surcharge)
	b.Subtotal = amount

	add(&b.Commission, amount*CommissionRate)
	b.Raw = amount
	return b
}

// overrideRate returns the Ficus/Carrotwood removal multiplier when the line
// item has an entry in the override table. Heights without an entry fall back
// to the profile's own height table.
func overrideRate(s entities.ServiceRequest) (float64, bool) {
	if !usesRemovalOverride(s.TreeType, s.ServiceType) {
		return 0, false
	}
	return RemovalOverrideRate(s.TreeHeight, s.TreeType)
}
