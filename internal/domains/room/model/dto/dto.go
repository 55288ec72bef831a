package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Number     string `json:"number"       validate:"required,max=10"`
	Floor      int    `json:"floor"        validate:"omitempty"`
	Status     string `json:"status"       validate:"omitempty,oneof=vacant occupied out_of_order out_of_service"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusVacant
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomTypeID: c.RoomTypeID,
		Number:     c.Number,
		Floor:      c.Floor,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number string `db:"number" json:"number" validate:"omitempty,max=10"`
	Floor  *int   `db:"floor"  json:"floor"  validate:"omitempty"`
	Status string `db:"status" json:"status" validate:"omitempty,oneof=vacant occupied out_of_order out_of_service"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"room_type_id"`
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.Number = model.Number
	r.Floor = model.Floor
	r.Status = model.Status
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
