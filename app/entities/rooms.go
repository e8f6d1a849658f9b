package entities

import "time"

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Floor     string    `json:"floor"`
	Capacity  int       `json:"capacity"`
	Type      string    `json:"type"` // classroom, lab, office
	CreatedAt time.Time `json:"createdAt"`
}

type RoomRequest struct {
	Name     string `json:"name" validate:"required"`
	Number   string `json:"number" validate:"required"`
	Floor    string `json:"floor" validate:"required"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

type RoomPatch struct {
	Name     *string `json:"name"`
	Number   *string `json:"number"`
	Floor    *string `json:"floor"`
	Capacity *int    `json:"capacity"`
	Type     *string `json:"type"`
}

type Floor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Building  string    `json:"building"`
	CreatedAt time.Time `json:"createdAt"`
}

type FloorRequest struct {
	Name     string `json:"name" validate:"required"`
	Number   string `json:"number" validate:"required"`
	Building string `json:"building"`
}

type FloorPatch struct {
	Name     *string `json:"name"`
	Number   *string `json:"number"`
	Building *string `json:"building"`
}
