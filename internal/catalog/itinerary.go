package catalog

import "github.com/guttosm/tour-service/internal/domain/model"

// DefaultItinerary returns the two-day Bangkok to Ayutthaya schedule.
func DefaultItinerary() []model.ItineraryDay {
	return []model.ItineraryDay{
		{
			Day: "Day 1",
			Blocks: []model.ItineraryBlock{
				{Time: "07:00 - 09:30", Items: []string{"Depart Bangkok for Ayutthaya"}},
				{Time: "09:30 - 11:30", Items: []string{"Wat Chaiwatthanaram", "Wat Mahathat"}},
				{Time: "12:00 - 13:00", Items: []string{"Riverside lunch at Baan Watcharachai / Ayutthaya riverside restaurant"}},
				{Time: "13:30 - 16:00", Items: []string{"Wat Phra Si Sanphet", "Wat Lokayasutharam", "The Summer House Ayutthaya cafe"}},
				{Time: "17:00 - 19:00", Items: []string{"Hotel check-in (Sala Ayutthaya / iuDia Hotel)", "Riverside dinner"}},
			},
		},
		{
			Day: "Day 2",
			Blocks: []model.ItineraryBlock{
				{Time: "08:00 - 09:30", Items: []string{"Ayothaya Floating Market"}},
				{Time: "09:30 - 11:00", Items: []string{"Wat Phutthaisawan"}},
				{Time: "12:00 - 13:00", Items: []string{"Boat noodles / roti sai mai lunch", "Busaba Cafe & Bake Lab"}},
				{Time: "13:30 - 16:30", Items: []string{"Wat Yai Chai Mongkhon", "Ayutthaya Retreat cafe"}},
				{Time: "16:30 - 18:00", Items: []string{"Return to Bangkok"}},
			},
		},
	}
}
