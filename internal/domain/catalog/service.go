// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sort"

	"github.com/your-org/promptshop-backend/internal/config"
)

// Store holds the immutable catalog fixture set with lookup indexes
type Store struct {
	prompts    []Prompt
	categories []Category
	bundles    []Bundle

	promptsByID      map[string]int
	promptsBySlug    map[string]int
	categoriesByID   map[string]int
	categoriesBySlug map[string]int
	bundlesByID      map[string]int
}

// NewStore builds a catalog store from a fixture set
func NewStore(fx Fixtures) *Store {
	s := &Store{
		prompts:          fx.Prompts,
		categories:       fx.Categories,
		bundles:          fx.Bundles,
		promptsByID:      make(map[string]int, len(fx.Prompts)),
		promptsBySlug:    make(map[string]int, len(fx.Prompts)),
		categoriesByID:   make(map[string]int, len(fx.Categories)),
		categoriesBySlug: make(map[string]int, len(fx.Categories)),
		bundlesByID:      make(map[string]int, len(fx.Bundles)),
	}
	for i := range fx.Prompts {
		s.promptsByID[fx.Prompts[i].ID] = i
		s.promptsBySlug[fx.Prompts[i].Slug] = i
	}
	for i := range fx.Categories {
		s.categoriesByID[fx.Categories[i].ID] = i
		s.categoriesBySlug[fx.Categories[i].Slug] = i
	}
	for i := range fx.Bundles {
		s.bundlesByID[fx.Bundles[i].ID] = i
	}
	return s
}

// Prompts returns the full fixture list in original order
func (s *Store) Prompts() []Prompt {
	return s.prompts
}

// Service handles catalog business logic
type Service struct {
	store  *Store
	config *config.Config
}

// NewService creates a new catalog service
func NewService(store *Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

// Sort keys accepted by ListRequest.SortBy
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
	SortPopular   = "popular"
	SortRating    = "rating"
)

// ListRequest represents catalog list query parameters
type ListRequest struct {
	Page       int      `form:"page,default=1"`
	PageSize   int      `form:"page_size,default=12"`
	Category   string   `form:"category"`
	MinPrice   int64    `form:"min_price"`
	MaxPrice   int64    `form:"max_price"`
	Tags       []string `form:"tags"`
	Search     string   `form:"search"`
	IsFeatured *bool    `form:"is_featured"`
	IsBundle   *bool    `form:"is_bundle"`
	SortBy     string   `form:"sort_by,default=popular"`
}

// ListResponse represents a paginated catalog page
type ListResponse struct {
	Prompts    []Prompt `json:"prompts"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// Query filters, sorts and paginates the prompt fixture list.
// All specified predicates are combined with AND; the tag predicate matches
// if any requested tag is present on the prompt. Sorting is stable, so ties
// keep fixture order.
func (s *Service) Query(req *ListRequest) *ListResponse {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = s.config.Catalog.DefaultPageSize
	}
	if pageSize > s.config.Catalog.MaxPageSize {
		pageSize = s.config.Catalog.MaxPageSize
	}

	matched := make([]Prompt, 0, len(s.store.prompts))
	for _, p := range s.store.prompts {
		if !matches(&p, req) {
			continue
		}
		matched = append(matched, p)
	}

	sortPrompts(matched, req.SortBy)

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ListResponse{
		Prompts:    matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func matches(p *Prompt, req *ListRequest) bool {
	if req.Category != "" && p.CategoryID != req.Category {
		return false
	}
	if req.MinPrice > 0 && p.Price < req.MinPrice {
		return false
	}
	if req.MaxPrice > 0 && p.Price > req.MaxPrice {
		return false
	}
	if len(req.Tags) > 0 {
		found := false
		for _, tag := range req.Tags {
			if p.HasTag(tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if req.Search != "" && !p.MatchesQuery(req.Search) {
		return false
	}
	if req.IsFeatured != nil && p.IsFeatured != *req.IsFeatured {
		return false
	}
	if req.IsBundle != nil && p.IsBundle != *req.IsBundle {
		return false
	}
	return true
}

func sortPrompts(prompts []Prompt, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Price < prompts[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Price > prompts[j].Price
		})
	case SortNewest:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].CreatedAt.After(prompts[j].CreatedAt)
		})
	case SortRating:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Rating > prompts[j].Rating
		})
	default: // popular
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].DownloadCount > prompts[j].DownloadCount
		})
	}
}

// GetPrompt retrieves a single prompt by ID
func (s *Service) GetPrompt(id string) (*Prompt, error) {
	i, ok := s.store.promptsByID[id]
	if !ok {
		return nil, fmt.Errorf("prompt not found")
	}
	return &s.store.prompts[i], nil
}

// GetPromptBySlug retrieves a single prompt by slug
func (s *Service) GetPromptBySlug(slug string) (*Prompt, error) {
	i, ok := s.store.promptsBySlug[slug]
	if !ok {
		return nil, fmt.Errorf("prompt not found")
	}
	return &s.store.prompts[i], nil
}

// GetFeaturedPrompts returns all featured prompts in fixture order
func (s *Service) GetFeaturedPrompts() []Prompt {
	var featured []Prompt
	for _, p := range s.store.prompts {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured
}

// GetPromptsByCategory returns all prompts in a category in fixture order
func (s *Service) GetPromptsByCategory(categoryID string) []Prompt {
	var result []Prompt
	for _, p := range s.store.prompts {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result
}

// GetCategories returns all categories
func (s *Service) GetCategories() []Category {
	return s.store.categories
}

// GetCategoryBySlug retrieves a category by slug
func (s *Service) GetCategoryBySlug(slug string) (*Category, error) {
	i, ok := s.store.categoriesBySlug[slug]
	if !ok {
		return nil, fmt.Errorf("category not found")
	}
	return &s.store.categories[i], nil
}

// GetBundles returns all bundles
func (s *Service) GetBundles() []Bundle {
	return s.store.bundles
}

// GetBundle retrieves a bundle by ID
func (s *Service) GetBundle(id string) (*Bundle, error) {
	i, ok := s.store.bundlesByID[id]
	if !ok {
		return nil, fmt.Errorf("bundle not found")
	}
	return &s.store.bundles[i], nil
}
