package dto

import (
	"atithi/internal/domains/room/model"
	"atithi/shared"
	gDto "atithi/shared/dto"
)

type RoomResponse struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Capacity    int      `json:"capacity"`
	BasePrice   float64  `json:"base_price"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
	Floor       int      `json:"floor"`
	Description string   `json:"description"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Category = model.Category
	r.Capacity = model.Capacity
	r.BasePrice = model.BasePrice
	r.Amenities = model.Amenities
	r.Status = model.Status
	r.Floor = model.Floor
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type SetRoomStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=available occupied maintenance reserved"`
}
