package dto

import (
	"lodge/internal/domains/roomtype/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Code        string `json:"code"         validate:"required,max=20"`
	Name        string `json:"name"         validate:"required,max=100"`
	Description string `json:"description"  validate:"omitempty,max=500"`
	MaxAdults   int    `json:"max_adults"   validate:"required,min=1"`
	MaxChildren int    `json:"max_children" validate:"omitempty,min=0"`
	Active      *bool  `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomType{
		ID:          uuid.NewString(),
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		MaxAdults:   c.MaxAdults,
		MaxChildren: c.MaxChildren,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Description string `db:"description"  json:"description"  validate:"omitempty,max=500"`
	MaxAdults   *int   `db:"max_adults"   json:"max_adults"   validate:"omitempty,min=1"`
	MaxChildren *int   `db:"max_children" json:"max_children" validate:"omitempty,min=0"`
	Active      *bool  `db:"active"       json:"active"       validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxAdults   int    `json:"max_adults"`
	MaxChildren int    `json:"max_children"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.Description = model.Description
	r.MaxAdults = model.MaxAdults
	r.MaxChildren = model.MaxChildren
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
