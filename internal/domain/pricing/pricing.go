// Package pricing turns a tree service line item into a dollar amount.
//
// A line item is classified into a rate profile, run through the adjustment
// pipeline, and the raw result is snapped to the published price tiers. All
// functions are pure and safe for concurrent use; the rate tables are never
// written after init.
package pricing

import "arborlove_quote/internal/domain/entities"

// Result is the priced outcome of one line item.
type Result struct {
	Classification Classification `json:"classification"`
	Breakdown      Breakdown      `json:"breakdown"`
	Final          float64        `json:"final"`
}

// Calculate prices a single line item.
func Calculate(s entities.ServiceRequest) (Result, error) {
	profile, err := Classify(s.TreeType, s.ServiceType)
	if err != nil {
		return Result{}, err
	}
	b := Adjust(profile, s)
	return Result{
		Classification: profile.Classification,
		Breakdown:      b,
		Final:          Snap(b.Raw),
	}, nil
}
