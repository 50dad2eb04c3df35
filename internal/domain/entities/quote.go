package entities

import "time"

// ServiceType is the kind of job requested for a tree.
type ServiceType string

const (
	ServiceTypeTreeTrimming ServiceType = "Tree Trimming"
	ServiceTypeTreeRemoval  ServiceType = "Tree Removal"
)

// Valid reports whether s is one of the priced service types.
func (s ServiceType) Valid() bool {
	return s == ServiceTypeTreeTrimming || s == ServiceTypeTreeRemoval
}

// Tree locations that carry a pricing adjustment. Any other value is accepted
// and priced without a location adjustment.
const (
	TreeLocationFrontYard = "Front Yard"
	TreeLocationBackYard  = "Back Yard"
)

// ClientDetails identifies the person requesting the quote.
type ClientDetails struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	PropertyOwner  bool   `json:"propertyOwner"`
	AdditionalInfo string `json:"additionalInfo"`
}

// ServiceRequest is one line item of a quote: a tree (or group of trees) and
// the job to be done on it. NumOfTrees and ImageURLs are informational only.
type ServiceRequest struct {
	ServiceType      ServiceType `json:"serviceType"`
	NumOfTrees       int         `json:"numOfTrees"`
	TreeLocation     string      `json:"treeLocation"`
	TreeType         string      `json:"treeType"`
	TreeHeight       string      `json:"treeHeight"`
	ImageURLs        []string    `json:"imageUrls,omitempty"`
	UtilityLines     bool        `json:"utilityLines"`
	StumpRemoval     bool        `json:"stumpRemoval"`
	FallenDown       bool        `json:"fallenDown"`
	PropertyFenced   bool        `json:"propertyFenced"`
	EquipmentAccess  bool        `json:"equipmentAccess"`
	EmergencyCutting bool        `json:"emergencyCutting"`
}

// Quote is a priced request persisted once and never updated.
//
// Storage model (DynamoDB):
//   - PK: quoteId
//
// Amount is the sum of the tier-snapped amount of every service line item.
type Quote struct {
	ID            string           `json:"quoteId"`
	ClientDetails ClientDetails    `json:"clientDetails"`
	Services      []ServiceRequest `json:"services"`
	Amount        float64          `json:"amount"`
	DateCreated   time.Time        `json:"dateCreated"`
}
