// internal/domain/catalog/fixtures.go
package catalog

import "time"

// Fixtures holds the static catalog dataset loaded at startup. It stands in
// for a product database; nothing in the application mutates it.
type Fixtures struct {
	Prompts    []Prompt
	Categories []Category
	Bundles    []Bundle
}

// DefaultFixtures returns the built-in catalog dataset.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Prompts:    defaultPrompts(),
		Categories: defaultCategories(),
		Bundles:    defaultBundles(),
	}
}

func defaultCategories() []Category {
	return []Category{
		{
			ID:          "content-creation",
			Name:        "Content Creation",
			Slug:        "content-creation",
			Description: "Prompts for creating engaging blog posts, social media content, and marketing copy",
			Icon:        "FileText",
			PromptCount: 25,
		},
		{
			ID:          "business-strategy",
			Name:        "Business Strategy",
			Slug:        "business-strategy",
			Description: "Strategic planning, business analysis, and growth prompts",
			Icon:        "TrendingUp",
			PromptCount: 20,
		},
		{
			ID:          "coaching-consulting",
			Name:        "Coaching & Consulting",
			Slug:        "coaching-consulting",
			Description: "Client session frameworks, discovery calls, and coaching prompts",
			Icon:        "Users",
			PromptCount: 18,
		},
		{
			ID:          "sales-marketing",
			Name:        "Sales & Marketing",
			Slug:        "sales-marketing",
			Description: "Sales scripts, email sequences, and marketing campaign prompts",
			Icon:        "Target",
			PromptCount: 22,
		},
		{
			ID:          "productivity",
			Name:        "Productivity",
			Slug:        "productivity",
			Description: "Task management, planning, and workflow optimization prompts",
			Icon:        "Zap",
			PromptCount: 15,
		},
		{
			ID:          "education-training",
			Name:        "Education & Training",
			Slug:        "education-training",
			Description: "Course creation, lesson planning, and educational content prompts",
			Icon:        "GraduationCap",
			PromptCount: 15,
		},
		{
			ID:          "customer-service",
			Name:        "Customer Service",
			Slug:        "customer-service",
			Description: "Support responses, FAQ generation, and customer communication prompts",
			Icon:        "Headphones",
			PromptCount: 10,
		},
	}
}

func defaultPrompts() []Prompt {
	return []Prompt{
		{
			ID:            "prompt-001",
			Title:         "Ultimate Blog Post Generator",
			Slug:          "ultimate-blog-post-generator",
			Description:   "Generate comprehensive, SEO-optimized blog posts on any topic with proper structure, headings, and engaging content.",
			CategoryID:    "content-creation",
			Tags:          []string{"blog", "seo", "content", "writing"},
			Price:         999,
			OriginalPrice: 1499,
			IsFeatured:    true,
			DownloadCount: 1250,
			Rating:        4.8,
			ReviewCount:   89,
			Preview:       "You are an expert content writer. Create a comprehensive blog post about [TOPIC]...",
			CreatedAt:     date(2024, 1, 15),
			UpdatedAt:     date(2024, 12, 1),
		},
		{
			ID:            "prompt-002",
			Title:         "Social Media Content Calendar",
			Slug:          "social-media-content-calendar",
			Description:   "Create a full month of engaging social media content with post ideas, captions, and hashtag strategies.",
			CategoryID:    "content-creation",
			Tags:          []string{"social-media", "calendar", "marketing", "instagram"},
			Price:         1499,
			OriginalPrice: 2499,
			IsFeatured:    true,
			DownloadCount: 890,
			Rating:        4.9,
			ReviewCount:   67,
			Preview:       "Create a 30-day social media content calendar for [BRAND]...",
			CreatedAt:     date(2024, 2, 10),
			UpdatedAt:     date(2024, 11, 15),
		},
		{
			ID:            "prompt-003",
			Title:         "Email Newsletter Writer",
			Slug:          "email-newsletter-writer",
			Description:   "Craft engaging email newsletters that build connection with your audience and drive conversions.",
			CategoryID:    "content-creation",
			Tags:          []string{"email", "newsletter", "copywriting"},
			Price:         799,
			DownloadCount: 654,
			Rating:        4.7,
			ReviewCount:   45,
			Preview:       "Write an engaging email newsletter about [TOPIC]...",
			CreatedAt:     date(2024, 3, 5),
			UpdatedAt:     date(2024, 10, 20),
		},
		{
			ID:            "prompt-004",
			Title:         "Business Model Canvas Generator",
			Slug:          "business-model-canvas-generator",
			Description:   "Create a comprehensive Business Model Canvas analysis for any business idea or existing company.",
			CategoryID:    "business-strategy",
			Tags:          []string{"business-model", "strategy", "planning", "canvas"},
			Price:         1999,
			OriginalPrice: 2999,
			IsFeatured:    true,
			DownloadCount: 445,
			Rating:        4.9,
			ReviewCount:   34,
			Preview:       "Generate a complete Business Model Canvas for [BUSINESS_IDEA]...",
			CreatedAt:     date(2024, 1, 20),
			UpdatedAt:     date(2024, 11, 30),
		},
		{
			ID:            "prompt-005",
			Title:         "Competitor Analysis Framework",
			Slug:          "competitor-analysis-framework",
			Description:   "Deep-dive competitor analysis with actionable insights and strategic recommendations.",
			CategoryID:    "business-strategy",
			Tags:          []string{"competitor", "analysis", "strategy", "research"},
			Price:         1499,
			DownloadCount: 312,
			Rating:        4.6,
			ReviewCount:   28,
			Preview:       "Conduct a comprehensive competitor analysis...",
			CreatedAt:     date(2024, 4, 15),
			UpdatedAt:     date(2024, 10, 10),
		},
		{
			ID:            "prompt-006",
			Title:         "Discovery Call Script Generator",
			Slug:          "discovery-call-script-generator",
			Description:   "Create powerful discovery call scripts that qualify leads and convert prospects into clients.",
			CategoryID:    "coaching-consulting",
			Tags:          []string{"sales", "discovery", "coaching", "script"},
			Price:         2499,
			OriginalPrice: 3999,
			IsFeatured:    true,
			DownloadCount: 567,
			Rating:        4.9,
			ReviewCount:   52,
			Preview:       "Create a discovery call script for [YOUR_SERVICE]...",
			CreatedAt:     date(2024, 2, 28),
			UpdatedAt:     date(2024, 11, 5),
		},
		{
			ID:            "prompt-007",
			Title:         "Client Onboarding Sequence",
			Slug:          "client-onboarding-sequence",
			Description:   "Welcome new clients with a professional onboarding email sequence and process documentation.",
			CategoryID:    "coaching-consulting",
			Tags:          []string{"onboarding", "email-sequence", "client-experience"},
			Price:         1999,
			DownloadCount: 423,
			Rating:        4.8,
			ReviewCount:   38,
			Preview:       "Create a client onboarding sequence for [SERVICE_TYPE]...",
			CreatedAt:     date(2024, 3, 20),
			UpdatedAt:     date(2024, 10, 25),
		},
		{
			ID:            "prompt-008",
			Title:         "Sales Page Copy Generator",
			Slug:          "sales-page-copy-generator",
			Description:   "Create high-converting sales page copy with proven frameworks and persuasive elements.",
			CategoryID:    "sales-marketing",
			Tags:          []string{"sales-page", "copywriting", "conversion", "landing-page"},
			Price:         2999,
			OriginalPrice: 4999,
			IsFeatured:    true,
			DownloadCount: 789,
			Rating:        4.9,
			ReviewCount:   73,
			Preview:       "Write a high-converting sales page for [PRODUCT/SERVICE]...",
			CreatedAt:     date(2024, 1, 10),
			UpdatedAt:     date(2024, 12, 5),
		},
		{
			ID:            "prompt-009",
			Title:         "Email Sales Sequence (7-Day)",
			Slug:          "email-sales-sequence-7-day",
			Description:   "A complete 7-day email sequence designed to nurture leads and drive sales.",
			CategoryID:    "sales-marketing",
			Tags:          []string{"email-sequence", "sales", "nurture", "automation"},
			Price:         2499,
			DownloadCount: 534,
			Rating:        4.7,
			ReviewCount:   41,
			Preview:       "Create a 7-day email sales sequence for [PRODUCT]...",
			CreatedAt:     date(2024, 4, 1),
			UpdatedAt:     date(2024, 11, 10),
		},
		{
			ID:            "prompt-010",
			Title:         "Weekly Planning System",
			Slug:          "weekly-planning-system",
			Description:   "A comprehensive weekly planning prompt that helps you prioritize, schedule, and execute effectively.",
			CategoryID:    "productivity",
			Tags:          []string{"planning", "productivity", "time-management", "weekly-review"},
			Price:         999,
			IsFeatured:    true,
			DownloadCount: 876,
			Rating:        4.8,
			ReviewCount:   63,
			Preview:       "Help me plan my week for maximum productivity...",
			CreatedAt:     date(2024, 2, 15),
			UpdatedAt:     date(2024, 11, 20),
		},
		{
			ID:            "prompt-011",
			Title:         "Course Outline Generator",
			Slug:          "course-outline-generator",
			Description:   "Create a comprehensive online course outline with modules, lessons, and learning objectives.",
			CategoryID:    "education-training",
			Tags:          []string{"course-creation", "curriculum", "teaching", "online-course"},
			Price:         1999,
			OriginalPrice: 3499,
			IsFeatured:    true,
			DownloadCount: 445,
			Rating:        4.9,
			ReviewCount:   38,
			Preview:       "Create a comprehensive online course outline...",
			CreatedAt:     date(2024, 3, 10),
			UpdatedAt:     date(2024, 10, 30),
		},
		{
			ID:            "prompt-012",
			Title:         "Customer Support Response Templates",
			Slug:          "customer-support-response-templates",
			Description:   "Professional, empathetic customer support responses for common scenarios.",
			CategoryID:    "customer-service",
			Tags:          []string{"customer-service", "templates", "support", "communication"},
			Price:         1499,
			DownloadCount: 334,
			Rating:        4.7,
			ReviewCount:   29,
			Preview:       "Create customer support response templates...",
			CreatedAt:     date(2024, 4, 20),
			UpdatedAt:     date(2024, 11, 25),
		},
	}
}

func defaultBundles() []Bundle {
	return []Bundle{
		{
			ID:            "bundle-001",
			Title:         "Content Creator Complete Kit",
			Description:   "Everything you need to create consistent, engaging content across all platforms.",
			PromptIDs:     []string{"prompt-001", "prompt-002", "prompt-003"},
			Price:         2999,
			OriginalPrice: 4797,
			Savings:       1798,
			IsFeatured:    true,
		},
		{
			ID:            "bundle-002",
			Title:         "Coaching Business Starter Pack",
			Description:   "Launch your coaching business with client-getting scripts and systems.",
			PromptIDs:     []string{"prompt-006", "prompt-007"},
			Price:         3999,
			OriginalPrice: 6498,
			Savings:       2499,
			IsFeatured:    true,
		},
		{
			ID:            "bundle-003",
			Title:         "Sales & Marketing Mega Bundle",
			Description:   "Complete sales and marketing system with pages, emails, and strategies.",
			PromptIDs:     []string{"prompt-008", "prompt-009"},
			Price:         4999,
			OriginalPrice: 7998,
			Savings:       2999,
			IsFeatured:    true,
		},
		{
			ID:            "bundle-004",
			Title:         "Ultimate Prompt Library (125+ Prompts)",
			Description:   "Get access to our entire library of 125+ professionally crafted prompts.",
			PromptIDs: []string{
				"prompt-001", "prompt-002", "prompt-003", "prompt-004", "prompt-005", "prompt-006",
				"prompt-007", "prompt-008", "prompt-009", "prompt-010", "prompt-011", "prompt-012",
			},
			Price:         9900,
			OriginalPrice: 19900,
			Savings:       10000,
			IsFeatured:    true,
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
