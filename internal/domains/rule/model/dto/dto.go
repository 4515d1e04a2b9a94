package dto

import (
	"atithi/internal/domains/rule/model"
	gDto "atithi/shared/dto"
)

type ValidateBookingRequest struct {
	Type         string `json:"type"          validate:"required,oneof=HOTEL_ROOM MARRIAGE_GARDEN EVENT_HALL RESTAURANT_TABLE"`
	BusinessUnit string `json:"business_unit" validate:"required,oneof=hotel garden"`
	CheckIn      string `json:"check_in"      validate:"required"`
	CheckOut     string `json:"check_out"     validate:"omitempty"`
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type RuleResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	BusinessUnit string `json:"business_unit"`
	Rule         string `json:"rule"`
	Value        int    `json:"value"`
	Description  string `json:"description"`
	gDto.Metadata
}

func (r *RuleResponse) FromModel(model model.Rule) {
	r.ID = model.ID
	r.Type = model.Type
	r.BusinessUnit = model.BusinessUnit
	r.Rule = model.Rule
	r.Value = model.Value
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

func (r *GetRulesResponse) FromModels(models []model.Rule) {
	r.Rules = make([]RuleResponse, len(models))
	for i, mod := range models {
		r.Rules[i].FromModel(mod)
	}
}
