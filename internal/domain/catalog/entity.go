// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"
)

// Prompt represents a purchasable prompt product
type Prompt struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Content       string    `json:"content,omitempty"`
	CategoryID    string    `json:"category_id"`
	Tags          []string  `json:"tags"`
	Price         int64     `json:"price"` // Price in cents
	OriginalPrice int64     `json:"original_price,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	IsBundle      bool      `json:"is_bundle"`
	DownloadCount int       `json:"download_count"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	Preview       string    `json:"preview,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Category represents a prompt category
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	PromptCount int    `json:"prompt_count"` // Informational only, not enforced
}

// Bundle represents a curated set of prompts sold together
type Bundle struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	PromptIDs     []string `json:"prompt_ids"`
	Price         int64    `json:"price"` // Price in cents
	OriginalPrice int64    `json:"original_price"`
	Savings       int64    `json:"savings"`
	IsFeatured    bool     `json:"is_featured"`
}

// GetFormattedPrice returns the price in currency units
func (p *Prompt) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

// GetDiscountPercentage returns the savings versus the original price
func (p *Prompt) GetDiscountPercentage() int {
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
	}
	return 0
}

// HasTag reports whether the prompt carries the given tag
func (p *Prompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the prompt matches a free-text search query.
// The match is a case-insensitive substring test against title, description
// and tags.
func (p *Prompt) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
