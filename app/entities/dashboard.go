package entities

// DashboardData summarises room occupancy for one date at its current slot.
type DashboardData struct {
	Date          string           `json:"date"`
	CurrentSlot   string           `json:"currentSlot"`
	TotalRooms    int              `json:"totalRooms"`
	OccupiedRooms int              `json:"occupiedRooms"`
	FreeRooms     int              `json:"freeRooms"`
	Floors        []FloorOccupancy `json:"floors"`
}

type FloorOccupancy struct {
	Floor    string `json:"floor"`
	Total    int    `json:"total"`
	Occupied int    `json:"occupied"`
}
