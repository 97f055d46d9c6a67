package domain

import "slices"

// Order is a proof-of-play booking. StartDate and EndDate are unix seconds.
type Order struct {
	StartDate      int64    `json:"start_date"`
	EndDate        int64    `json:"end_date"`
	TotalSpots     uint32   `json:"total_spots"`
	TotalAudiences uint32   `json:"total_audiences"`
	CreativeList   []string `json:"creative_list"`
}

// HasCreative reports whether creativeID is booked on the order.
func (o Order) HasCreative(creativeID string) bool {
	return slices.Contains(o.CreativeList, creativeID)
}

// Covers reports whether ts lies inside the order period, bounds inclusive.
func (o Order) Covers(ts int64) bool {
	return ts >= o.StartDate && ts <= o.EndDate
}

// Billboard is one screen of an order's inventory.
type Billboard struct {
	ID                  string `json:"id"`
	SpotDuration        uint32 `json:"spot_duration"`
	SpotsPerHour        uint32 `json:"spots_per_hour"`
	TotalSpots          uint32 `json:"total_spots"`
	ImpMultiplierPerDay uint32 `json:"imp_multiplier_per_day"`
}

// OrderData is an order together with its target inventory, as submitted.
type OrderData struct {
	Order
	TargetInventory []Billboard `json:"target_inventory"`
}

// SessionData reports that a creative played on a billboard.
type SessionData struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	BillboardID string `json:"billboard_id"`
	CreativeID  string `json:"creative_id"`
	Timestamp   int64  `json:"timestamp"`
	Date        string `json:"date"`
	Duration    uint32 `json:"duration"`
}

// SpotKey returns the verified spot the session accumulates into.
func (s SessionData) SpotKey() SpotKey {
	return SpotKey{OrderID: s.OrderID, Date: s.Date, BillboardID: s.BillboardID}
}

// SpotKey addresses the verified audience of one billboard on one day.
type SpotKey struct {
	OrderID     string `json:"order_id"`
	Date        string `json:"date"`
	BillboardID string `json:"billboard_id"`
}

func (k SpotKey) String() string {
	return k.OrderID + "/" + k.Date + "/" + k.BillboardID
}

// VerifiedSpot accumulates the audience verified for a SpotKey.
type VerifiedSpot struct {
	VerifiedAudience uint32 `json:"verified_audience"`
}
