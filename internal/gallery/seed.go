package gallery

import "time"

// SampleAttendedEvents is the demo gallery written on first start when
// the store is empty.
func SampleAttendedEvents() []AttendedEvent {
	return []AttendedEvent{
		{
			ID:       "attended_1",
			Title:    "Konsert i Gamla Stan",
			Date:     time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			Location: "Gamla Stan, Stockholm",
			Photos: []Photo{
				{URL: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop", Caption: "Fantastisk konsert!"},
				{URL: "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=400&h=400&fit=crop", Caption: "Publiken var fantastisk"},
				{URL: "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?w=400&h=400&fit=crop", Caption: "Scenen var magisk"},
			},
		},
		{
			ID:       "attended_2",
			Title:    "Konstutställning",
			Date:     time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			Location: "Moderna Museet, Stockholm",
			Photos: []Photo{
				{URL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop", Caption: "Vacker konst"},
				{URL: "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=400&h=400&fit=crop", Caption: "Inspirerande utställning"},
			},
		},
		{
			ID:       "attended_3",
			Title:    "Matfestival",
			Date:     time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC),
			Location: "Östermalms Saluhall, Stockholm",
			Photos: []Photo{
				{URL: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=400&fit=crop", Caption: "Läcker mat"},
				{URL: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=400&h=400&fit=crop", Caption: "Så många smaker"},
				{URL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=400&fit=crop", Caption: "Perfekt presentation"},
				{URL: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400&h=400&fit=crop", Caption: "Fantastiska desserter"},
			},
		},
	}
}
