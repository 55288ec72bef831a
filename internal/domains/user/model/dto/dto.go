package dto

import (
	"lodge/internal/domains/user/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"     validate:"required,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     string  `json:"role"      validate:"omitempty,oneof=superadmin manager frontdesk"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Email:    c.Email,
		Password: hashedPassword,
		Role:     RoleOrDefault(c.Role),
		FullName: c.FullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	FullName *string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string  `db:"role"      json:"role"      validate:"omitempty,oneof=superadmin manager frontdesk"`
	Active   *bool   `db:"active"    json:"active"    validate:"omitempty"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name"`
	LastLogin *string `json:"last_login"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Email = model.Email
	u.Role = model.Role
	u.FullName = model.FullName
	u.Active = model.Active
	u.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := model.LastLogin.Format(time.RFC3339)
		u.LastLogin = &lastLogin
	}
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		g.Users[i].FromModel(mod)
	}
}

// RoleOrDefault keeps new accounts on the least-privileged role.
func RoleOrDefault(role string) string {
	if role == constant.Empty {
		return constant.RoleFrontDesk
	}

	return role
}
