package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// SampleEvents is the demo catalog written on first start when no
// catalog exists yet.
func SampleEvents() []Event {
	return []Event{
		{
			ID:          "1",
			Title:       "Concert at Gorky Park",
			Date:        time.Date(2025, 1, 15, 19, 0, 0, 0, time.UTC),
			Location:    "Gorky Park, Moscow",
			Price:       decimal.NewFromInt(2500),
			Available:   150,
			Category:    "music",
			ImageURL:    "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400",
			Description: "Unforgettable evening of live music under the open sky",
		},
		{
			ID:          "2",
			Title:       "Technology Conference",
			Date:        time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC),
			Location:    "Expocenter, Moscow",
			Price:       decimal.Zero,
			Available:   300,
			Category:    "business",
			ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=400",
			Description: "Future of technology: AI, blockchain and machine learning",
		},
		{
			ID:          "3",
			Title:       "Food Festival",
			Date:        time.Date(2025, 1, 25, 12, 0, 0, 0, time.UTC),
			Location:    "VDNKh, Moscow",
			Price:       decimal.NewFromInt(1500),
			Available:   200,
			Category:    "food",
			ImageURL:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400",
			Description: "A gastronomic journey through world cuisines",
		},
		{
			ID:          "4",
			Title:       "Startup Meetup",
			Date:        time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC),
			Location:    "Skolkovo Technopark",
			Price:       decimal.Zero,
			Available:   100,
			Category:    "business",
			ImageURL:    "https://images.unsplash.com/photo-1559223607-a43c990c692c?w=400",
			Description: "Networking for founders and investors",
		},
		{
			ID:          "5",
			Title:       "Contemporary Art Exhibition",
			Date:        time.Date(2025, 2, 10, 11, 0, 0, 0, time.UTC),
			Location:    "Tretyakov Gallery",
			Price:       decimal.NewFromInt(800),
			Available:   80,
			Category:    "art",
			ImageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400",
			Description: "New names in contemporary art",
		},
	}
}
