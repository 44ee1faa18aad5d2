package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
	"parking_transit/internal/repository/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		svc := NewAuthService(repo, "secret", time.Hour)

		repo.EXPECT().FindByUsername(gomock.Any(), "mario").Return(nil, repository.ErrNotFound)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				if u.Role != domain.RoleDriver {
					t.Errorf("role = %s, want driver", u.Role)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password1")); err != nil {
					t.Errorf("stored password is not a valid hash: %v", err)
				}
				u.ID = 1
				return u, nil
			})

		user, err := svc.Register(context.Background(), domain.RegisterUserDTO{
			Username: "mario", Password: "password1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Password != "" {
			t.Error("password hash must not be returned")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		svc := NewAuthService(repo, "secret", time.Hour)

		repo.EXPECT().FindByUsername(gomock.Any(), "mario").
			Return(&domain.User{ID: 1, Username: "mario"}, nil)

		_, err := svc.Register(context.Background(), domain.RegisterUserDTO{
			Username: "mario", Password: "password1",
		})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("expected ErrUserAlreadyExists, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	stored := &domain.User{ID: 1, Username: "mario", Password: string(hash), Role: domain.RoleOperator}

	t.Run("issues a token that validates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		svc := NewAuthService(repo, "secret", time.Hour)

		repo.EXPECT().FindByUsername(gomock.Any(), "mario").Return(stored, nil)

		resp, err := svc.Login(context.Background(), domain.LoginUserDTO{Username: "mario", Password: "password1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, claims, err := svc.ValidateToken(resp.Token)
		if err != nil {
			t.Fatalf("token should validate: %v", err)
		}
		if claims["role"] != domain.RoleOperator || claims["username"] != "mario" {
			t.Errorf("unexpected claims: %v", claims)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		svc := NewAuthService(repo, "secret", time.Hour)

		repo.EXPECT().FindByUsername(gomock.Any(), "mario").Return(stored, nil)

		_, err := svc.Login(context.Background(), domain.LoginUserDTO{Username: "mario", Password: "nope"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user looks like bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		svc := NewAuthService(repo, "secret", time.Hour)

		repo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, repository.ErrNotFound)

		_, err := svc.Login(context.Background(), domain.LoginUserDTO{Username: "ghost", Password: "password1"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
