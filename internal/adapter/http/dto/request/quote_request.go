package request

import (
	"strings"

	"arborlove_quote/internal/domain/entities"
)

type ClientDetailsRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" binding:"required,email"`
	PropertyOwner  bool   `json:"propertyOwner"`
	AdditionalInfo string `json:"additionalInfo"`
}

type ServiceRequest struct {
	ServiceType      string   `json:"serviceType" binding:"required"`
	NumOfTrees       int      `json:"numOfTrees" binding:"min=0"`
	TreeLocation     string   `json:"treeLocation"`
	TreeType         string   `json:"treeType"`
	TreeHeight       string   `json:"treeHeight"`
	ImageURLs        []string `json:"imageUrls"`
	UtilityLines     bool     `json:"utilityLines"`
	StumpRemoval     bool     `json:"stumpRemoval"`
	FallenDown       bool     `json:"fallenDown"`
	PropertyFenced   bool     `json:"propertyFenced"`
	EquipmentAccess  bool     `json:"equipmentAccess"`
	EmergencyCutting bool     `json:"emergencyCutting"`
}

// CreateQuoteRequest is the payload of POST /quote/create.
type CreateQuoteRequest struct {
	ClientDetails ClientDetailsRequest `json:"clientDetails" binding:"required"`
	Services      []ServiceRequest     `json:"services" binding:"required,min=1,dive"`
}

// ToClientDetails trims the free text fields.
func (r CreateQuoteRequest) ToClientDetails() entities.ClientDetails {
	c := r.ClientDetails
	return entities.ClientDetails{
		Name:           strings.TrimSpace(c.Name),
		Address:        strings.TrimSpace(c.Address),
		Phone:          strings.TrimSpace(c.Phone),
		Email:          strings.TrimSpace(c.Email),
		PropertyOwner:  c.PropertyOwner,
		AdditionalInfo: strings.TrimSpace(c.AdditionalInfo),
	}
}

// ToServices maps the line items. Enumerated values are trimmed but not
// otherwise checked here; pricing decides what they mean.
func (r CreateQuoteRequest) ToServices() []entities.ServiceRequest {
	out := make([]entities.ServiceRequest, len(r.Services))
	for i, s := range r.Services {
		var urls []string
		for _, u := range s.ImageURLs {
			if u = strings.TrimSpace(u); u != "" {
				urls = append(urls, u)
			}
		}
		out[i] = entities.ServiceRequest{
			ServiceType:      entities.ServiceType(strings.TrimSpace(s.ServiceType)),
			NumOfTrees:       s.NumOfTrees,
			TreeLocation:     strings.TrimSpace(s.TreeLocation),
			TreeType:         strings.TrimSpace(s.TreeType),
			TreeHeight:       strings.TrimSpace(s.TreeHeight),
			ImageURLs:        urls,
			UtilityLines:     s.UtilityLines,
			StumpRemoval:     s.StumpRemoval,
			FallenDown:       s.FallenDown,
			PropertyFenced:   s.PropertyFenced,
			EquipmentAccess:  s.EquipmentAccess,
			EmergencyCutting: s.EmergencyCutting,
		}
	}
	return out
}
