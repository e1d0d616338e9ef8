package models

import "time"

// BusinessProfile represents the matching profile of a business, one per user.
type BusinessProfile struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	BusinessName       string    `json:"businessName"`
	RegistrationNumber *string   `json:"registrationNumber,omitempty"`
	CIDBGrading        *string   `json:"cidbGrading,omitempty"`
	BBBEELevel         *string   `json:"bbbeeLevel,omitempty"`
	IndustryCategories []string  `json:"industryCategories"`
	PreferredValueMin  *float64  `json:"preferredValueMin,omitempty"`
	PreferredValueMax  *float64  `json:"preferredValueMax,omitempty"`
	Provinces          []string  `json:"provinces"`
	PhoneNumber        *string   `json:"phoneNumber,omitempty"`
	Language           string    `json:"language"`
	EmailNotifications bool      `json:"emailNotifications"`
	SMSNotifications   bool      `json:"smsNotifications"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// BusinessProfileRequest represents the request structure for creating or
// updating a business profile.
type BusinessProfileRequest struct {
	BusinessName       string   `json:"businessName" validate:"required"`
	RegistrationNumber *string  `json:"registrationNumber"`
	CIDBGrading        *string  `json:"cidbGrading"`
	BBBEELevel         *string  `json:"bbbeeLevel"`
	IndustryCategories []string `json:"industryCategories"`
	PreferredValueMin  *float64 `json:"preferredValueMin" validate:"omitempty,gte=0"`
	PreferredValueMax  *float64 `json:"preferredValueMax" validate:"omitempty,gte=0"`
	Provinces          []string `json:"provinces"`
	PhoneNumber        *string  `json:"phoneNumber"`
	Language           string   `json:"language"`
	EmailNotifications bool     `json:"emailNotifications"`
	SMSNotifications   bool     `json:"smsNotifications"`
}
