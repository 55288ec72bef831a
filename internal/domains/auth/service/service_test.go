package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/jwt"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel/mocks"
	"lodge/internal/domains/auth/model/dto"
	"lodge/internal/domains/auth/service"
	userMocks "lodge/internal/domains/user/mocks"
	userModel "lodge/internal/domains/user/model"
	"lodge/shared/failure"
)

// bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type authFixture struct {
	userRepo *userMocks.MockUser
	jwt      *jwtMocks.MockJWT
	svc      service.Auth
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authFixture{
		userRepo: userMocks.NewMockUser(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.userRepo, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func activeUser() userModel.User {
	return userModel.User{
		ID:       "2d3e4f5a-6b7c-4d8e-9f0a-1b2c3d4e5f6a",
		Email:    "ada@example.com",
		Password: passwordHash,
		Role:     "frontdesk",
		Active:   true,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
	}

	t.Run("registers a new user", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.userRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, req.Email, user.Email)
				assert.NotEqual(t, req.Password, user.Password)
				assert.True(t, user.Active)

				return nil
			})

		assert.NoError(t, f.svc.Register(context.Background(), req))
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, errors.New("db down"))

		assert.Error(t, f.svc.Register(context.Background(), req))
	})
}

func TestAuthService_Login(t *testing.T) {
	req := dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "password",
	}

	t.Run("returns a token pair and records the login", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		f.jwt.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(tokenPair(), nil)

		f.userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, "refresh-token", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("unknown email fails without leaking existence", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := f.svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("wrong password fails with the same message", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    req.Email,
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()
		user.Active = false

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		_, err := f.svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("propagates token generation errors", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		f.jwt.EXPECT().
			GenerateTokenPair(user.ID, user.Email, user.Role).
			Return(nil, errors.New("signing failed"))

		_, err := f.svc.Login(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the token pair", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			RefreshTokens("refresh-token").
			Return(tokenPair(), nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
	})

	t.Run("invalid refresh token is unauthorized", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			RefreshTokens("stale-token").
			Return(nil, errors.New("token is expired"))

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale-token"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	req := dto.ChangePasswordRequest{
		CurrentPassword: "password",
		NewPassword:     "new-password-123",
	}
	userID := activeUser().ID

	t.Run("rehashes and stores the new password", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)

		f.userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				hashed, _ := fields[userModel.FieldPassword].(string)
				assert.NotEmpty(t, hashed)
				assert.NotEqual(t, req.NewPassword, hashed)

				return nil
			})

		assert.NoError(t, f.svc.ChangePassword(context.Background(), req, userID))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := f.svc.ChangePassword(context.Background(), req, userID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		f := newAuthFixture(t)

		f.userRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(), nil)

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     req.NewPassword,
		}, userID)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}
