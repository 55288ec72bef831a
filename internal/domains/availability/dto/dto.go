package dto

type SearchRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	CheckIn    string `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out"    validate:"required,datetime=2006-01-02"`
	Rooms      *int   `json:"rooms"        validate:"omitempty,min=1"`
}

type DayAvailability struct {
	Date      string `json:"date"`
	Available int    `json:"available"`
}

type AvailabilityResponse struct {
	RoomTypeID     string            `json:"room_type_id"`
	CheckIn        string            `json:"check_in"`
	CheckOut       string            `json:"check_out"`
	RequestedRooms int               `json:"requested_rooms"`
	TotalRooms     int               `json:"total_rooms"`
	Days           []DayAvailability `json:"days"`
	MinAvailable   int               `json:"min_available"`
	CanAccommodate bool              `json:"can_accommodate"`
}
