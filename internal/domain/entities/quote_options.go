package entities

// Option categories published to the quote form.
const (
	OptionJobTypes        = "JOB_TYPES"
	OptionTreeLocations   = "TREE_LOCATIONS"
	OptionTreeTypes       = "TREE_TYPES"
	OptionTreeHeights     = "TREE_HEIGHTS"
	OptionJobTimings      = "JOB_TIMINGS"
	OptionTreeHealth      = "TREE_HEALTH"
	OptionServiceableArea = "SERVICEABLE_AREA"
)

// QuoteOptions maps an option category to its allowed values.
type QuoteOptions map[string][]string

// DefaultQuoteOptions returns the catalog used to seed the options store and
// served directly when options are configured as static.
func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{
		OptionJobTypes:      {string(ServiceTypeTreeTrimming), string(ServiceTypeTreeRemoval)},
		OptionTreeLocations: {TreeLocationFrontYard, TreeLocationBackYard},
		OptionTreeTypes: {
			"Pine",
			"Podocarpus",
			"Ficus",
			"Eucalyptus",
			"Carrotwood",
			"I am not sure what kind of tree I have",
			"My tree is not listed here",
		},
		OptionTreeHeights: {"1-15", "16-30", "31-45", "46-60", "60+"},
		OptionJobTimings:  {"Asap/Emergency", "In the next few days", "Flexible (14 days)"},
		OptionTreeHealth:  {"Pests", "Disease", "Fallen", "Healthy"},
		OptionServiceableArea: {
			"Access No",
			"Access Moderate",
			"No Obstruction",
		},
	}
}
