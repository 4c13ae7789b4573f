// internal/domain/analytics/service.go
package analytics

import (
	"sort"

	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
	"github.com/your-org/promptshop-backend/internal/domain/order"
	"github.com/your-org/promptshop-backend/internal/domain/user"
)

// Service computes dashboard and admin statistics over the live stores
type Service struct {
	orders  *order.Store
	users   *user.Service
	catalog *catalog.Service
	config  *config.Config
}

// NewService creates a new analytics service
func NewService(orders *order.Store, users *user.Service, catalogService *catalog.Service, cfg *config.Config) *Service {
	return &Service{
		orders:  orders,
		users:   users,
		catalog: catalogService,
		config:  cfg,
	}
}

// DashboardStats represents a user's account overview
type DashboardStats struct {
	TotalOrders   int   `json:"total_orders"`
	TotalSpent    int64 `json:"total_spent"` // In cents
	PromptsOwned  int   `json:"prompts_owned"`
	DownloadCount int   `json:"download_count"`
}

// SalesByDay represents revenue for a single day
type SalesByDay struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Amount int64  `json:"amount"`
	Orders int    `json:"orders"`
}

// AdminStats represents the storefront-wide overview
type AdminStats struct {
	TotalUsers   int              `json:"total_users"`
	TotalOrders  int              `json:"total_orders"`
	TotalRevenue int64            `json:"total_revenue"` // In cents
	TotalPrompts int              `json:"total_prompts"`
	RecentOrders []*order.Order   `json:"recent_orders"`
	TopPrompts   []catalog.Prompt `json:"top_prompts"`
	SalesByDay   []SalesByDay     `json:"sales_by_day"`
}

// GetDashboardStats computes the account overview for one user.
// Refunded and cancelled orders do not count towards spend.
func (s *Service) GetDashboardStats(userID uint) *DashboardStats {
	stats := &DashboardStats{}
	owned := make(map[string]struct{})

	for _, o := range s.orders.ListByUser(userID) {
		if o.Status != order.StatusCompleted {
			continue
		}
		stats.TotalOrders++
		stats.TotalSpent += o.Total
		for _, item := range o.Items {
			owned[item.PromptID] = struct{}{}
			stats.DownloadCount += item.DownloadCount
		}
	}

	stats.PromptsOwned = len(owned)
	return stats
}

// GetAdminStats computes the storefront-wide overview
func (s *Service) GetAdminStats() *AdminStats {
	all := s.orders.ListAll()

	stats := &AdminStats{
		TotalUsers:   s.users.Count(),
		TotalOrders:  len(all),
		TotalPrompts: s.catalog.Query(&catalog.ListRequest{Page: 1, PageSize: 1}).Total,
	}

	byDay := make(map[string]*SalesByDay)
	for _, o := range all {
		if o.Status != order.StatusCompleted {
			continue
		}
		stats.TotalRevenue += o.Total

		day := o.CreatedAt.Format("2006-01-02")
		bucket, ok := byDay[day]
		if !ok {
			bucket = &SalesByDay{Date: day}
			byDay[day] = bucket
		}
		bucket.Amount += o.Total
		bucket.Orders++
	}

	for _, bucket := range byDay {
		stats.SalesByDay = append(stats.SalesByDay, *bucket)
	}
	sort.Slice(stats.SalesByDay, func(i, j int) bool {
		return stats.SalesByDay[i].Date < stats.SalesByDay[j].Date
	})

	// Recent orders: at most the latest ten (ListAll is newest first)
	if len(all) > 10 {
		all = all[:10]
	}
	stats.RecentOrders = all

	stats.TopPrompts = s.topPrompts(5)

	return stats
}

// topPrompts returns the n most downloaded prompts
func (s *Service) topPrompts(n int) []catalog.Prompt {
	resp := s.catalog.Query(&catalog.ListRequest{
		Page:     1,
		PageSize: n,
		SortBy:   catalog.SortPopular,
	})
	return resp.Prompts
}
