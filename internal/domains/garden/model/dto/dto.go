package dto

import (
	"atithi/internal/domains/garden/model"
	"atithi/shared"
	gDto "atithi/shared/dto"
)

type GardenResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Capacity    int      `json:"capacity"`
	BasePrice   float64  `json:"base_price"`
	Area        float64  `json:"area"`
	Amenities   []string `json:"amenities"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	gDto.Metadata
}

func (r *GardenResponse) FromModel(model model.Garden) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.BasePrice = model.BasePrice
	r.Area = model.Area
	r.Amenities = model.Amenities
	r.Status = model.Status
	r.Features = model.Features
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetGardensResponse struct {
	Gardens   []GardenResponse `json:"gardens"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetGardensResponse) FromModels(models []model.Garden, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Gardens = make([]GardenResponse, len(models))
	for i, mod := range models {
		r.Gardens[i].FromModel(mod)
	}
}

type SetGardenStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=available booked maintenance"`
}
