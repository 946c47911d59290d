// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is the service domain an internship belongs to. It matches the
// slug of the corresponding service page on the marketing site.
type Category string

const (
	CategoryMachineLearningEngineer Category = "machine-learning-engineer"
	CategoryDataScientist           Category = "data-scientist"
	CategoryDataAnalyst             Category = "data-analyst"
	CategoryWebDeveloper            Category = "web-developer"
	CategoryCybersecurityEngineer   Category = "cybersecurity-engineer"
	CategoryBlockchainEngineer      Category = "blockchain-engineer"
)

// Categories lists every accepted internship category.
var Categories = []Category{
	CategoryMachineLearningEngineer,
	CategoryDataScientist,
	CategoryDataAnalyst,
	CategoryWebDeveloper,
	CategoryCybersecurityEngineer,
	CategoryBlockchainEngineer,
}

// Valid reports whether c is one of [Categories].
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Internship is an internship offer managed from the admin area.
type Internship struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Category       Category  `json:"category"`
	Description    string    `json:"description"`
	Duration       string    `json:"duration"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	Skills         []string  `json:"skills"`
	GoogleFormLink string    `json:"googleFormLink"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

// InternshipUpdate is a partial update of an internship. Nil fields are left
// as is; a non-nil Skills replaces the whole list.
type InternshipUpdate struct {
	Title          *string   `json:"title,omitempty"`
	Category       *Category `json:"category,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Duration       *string   `json:"duration,omitempty"`
	TotalSeats     *int      `json:"totalSeats,omitempty"`
	AvailableSeats *int      `json:"availableSeats,omitempty"`
	Skills         *[]string `json:"skills,omitempty"`
	GoogleFormLink *string   `json:"googleFormLink,omitempty"`
	Active         *bool     `json:"active,omitempty"`
}

// Apply merges the non-nil fields of u onto i.
func (u InternshipUpdate) Apply(i *Internship) {
	setIfNotNil(&i.Title, u.Title)
	setIfNotNil(&i.Category, u.Category)
	setIfNotNil(&i.Description, u.Description)
	setIfNotNil(&i.Duration, u.Duration)
	setIfNotNil(&i.TotalSeats, u.TotalSeats)
	setIfNotNil(&i.AvailableSeats, u.AvailableSeats)
	setIfNotNil(&i.Skills, u.Skills)
	setIfNotNil(&i.GoogleFormLink, u.GoogleFormLink)
	setIfNotNil(&i.Active, u.Active)
}

// InternshipFilter narrows an internship listing.
type InternshipFilter struct {
	// ActiveOnly drops internships with Active == false.
	ActiveOnly bool
	// Category, when non-empty, keeps only internships of that category.
	Category Category
}
