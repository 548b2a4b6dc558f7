package types

// TripItemType tags the variant of a TripItem.
type TripItemType string

const (
	TripItemFlight   TripItemType = "flight"
	TripItemHotel    TripItemType = "hotel"
	TripItemActivity TripItemType = "activity"
)

// Valid reports whether t is one of the known item tags.
func (t TripItemType) Valid() bool {
	switch t {
	case TripItemFlight, TripItemHotel, TripItemActivity:
		return true
	}
	return false
}

// TripItem is a tagged union of flight, hotel and activity entries.
// Two items are the same trip entry iff both ID and Type match.
type TripItem struct {
	ID      string       `json:"id"`
	Type    TripItemType `json:"type"`
	Name    string       `json:"name"`
	Details string       `json:"details,omitempty"`
	Date    string       `json:"date,omitempty"`
	Price   int          `json:"price"`
}

// Key returns the identity key used for itinerary deduplication.
func (i TripItem) Key() string {
	return i.ID + "|" + string(i.Type)
}

// Itinerary is the UI-facing view of a session's trip: insertion-ordered
// items plus a total recomputed from the current sequence.
type Itinerary struct {
	Items []TripItem `json:"items"`
	Total int        `json:"total"`
	Count int        `json:"count"`
}
