package model

// ItineraryBlock is one time slot of a tour day.
type ItineraryBlock struct {
	Time  string   `json:"time" example:"07:00 - 09:30"`
	Items []string `json:"items"`
}

// ItineraryDay groups the blocks of a single day.
type ItineraryDay struct {
	Day    string           `json:"day" example:"Day 1"`
	Blocks []ItineraryBlock `json:"blocks"`
}
