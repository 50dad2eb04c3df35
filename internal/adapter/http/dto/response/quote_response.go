package response

import (
	"time"

	"arborlove_quote/internal/domain/entities"
)

// CreateQuoteResponse is returned by POST /quote/create.
type CreateQuoteResponse struct {
	Message  string  `json:"message"`
	QuoteID  string  `json:"quoteId"`
	Amount   float64 `json:"amount"`
	Notified bool    `json:"notified"`
}

const (
	msgQuoteCreated            = "Quote created successfully"
	msgQuoteCreatedNotNotified = "Quote created successfully, but the confirmation email could not be sent"
)

func FromCreatedQuote(q entities.Quote, notified bool) CreateQuoteResponse {
	msg := msgQuoteCreated
	if !notified {
		msg = msgQuoteCreatedNotNotified
	}
	return CreateQuoteResponse{
		Message:  msg,
		QuoteID:  q.ID,
		Amount:   q.Amount,
		Notified: notified,
	}
}

type ClientDetailsResponse struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	PropertyOwner  bool   `json:"propertyOwner"`
	AdditionalInfo string `json:"additionalInfo"`
}

type ServiceResponse struct {
	ServiceType      string   `json:"serviceType"`
	NumOfTrees       int      `json:"numOfTrees"`
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

// QuoteResponse is a stored quote as returned by the read endpoints.
type QuoteResponse struct {
	QuoteID       string                `json:"quoteId"`
	ClientDetails ClientDetailsResponse `json:"clientDetails"`
	Services      []ServiceResponse     `json:"services"`
	Amount        float64               `json:"amount"`
	DateCreated   time.Time             `json:"dateCreated"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	services := make([]ServiceResponse, len(q.Services))
	for i, s := range q.Services {
		urls := s.ImageURLs
		if urls == nil {
			urls = []string{}
		}
		services[i] = ServiceResponse{
			ServiceType:      string(s.ServiceType),
			NumOfTrees:       s.NumOfTrees,
			TreeLocation:     s.TreeLocation,
			TreeType:         s.TreeType,
			TreeHeight:       s.TreeHeight,
			ImageURLs:        urls,
			UtilityLines:     s.UtilityLines,
			StumpRemoval:     s.StumpRemoval,
			FallenDown:       s.FallenDown,
			PropertyFenced:   s.PropertyFenced,
			EquipmentAccess:  s.EquipmentAccess,
			EmergencyCutting: s.EmergencyCutting,
		}
	}
	c := q.ClientDetails
	return QuoteResponse{
		QuoteID: q.ID,
		ClientDetails: ClientDetailsResponse{
			Name:           c.Name,
			Address:        c.Address,
			Phone:          c.Phone,
			Email:          c.Email,
			PropertyOwner:  c.PropertyOwner,
			AdditionalInfo: c.AdditionalInfo,
		},
		Services:    services,
		Amount:      q.Amount,
		DateCreated: q.DateCreated,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(qs))
	for i, q := range qs {
		out[i] = FromQuote(q)
	}
	return out
}

// DeleteQuotesResponse is returned by DELETE /quote/all.
type DeleteQuotesResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

func FromDeletedQuotes(n int) DeleteQuotesResponse {
	return DeleteQuotesResponse{Message: "All quotes deleted successfully", Deleted: n}
}

// UploadImageResponse is returned by POST /upload.
type UploadImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}
