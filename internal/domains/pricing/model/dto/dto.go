package dto

type RoomQuoteRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests"    validate:"required,min=1"`
}

type GardenQuoteRequest struct {
	GardenID string `json:"garden_id" validate:"required"`
	Date     string `json:"date"      validate:"required"`
	Guests   int    `json:"guests"    validate:"required,min=1"`
}

type RoomQuoteResponse struct {
	RoomID     string  `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

type GardenQuoteResponse struct {
	GardenID   string  `json:"garden_id"`
	Date       string  `json:"date"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"total_price"`
}
