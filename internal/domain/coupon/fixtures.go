// internal/domain/coupon/fixtures.go
package coupon

// DefaultBook returns the built-in coupon fixture set.
func DefaultBook() *Book {
	return NewBook([]Coupon{
		{
			ID:          "coupon-1",
			Code:        "SAVE20",
			Kind:        KindPercentage,
			Value:       20,
			MinPurchase: 2000, // $20
			MaxUses:     100,
			UsedCount:   45,
			IsActive:    true,
		},
		{
			ID:       "coupon-2",
			Code:     "WELCOME10",
			Kind:     KindPercentage,
			Value:    10,
			IsActive: true,
		},
		{
			ID:          "coupon-3",
			Code:        "FLAT15",
			Kind:        KindFixed,
			Value:       15,
			MinPurchase: 5000, // $50
			IsActive:    true,
		},
	})
}
