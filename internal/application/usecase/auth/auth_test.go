package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// fakeUserRepo is a stateful in-memory user store.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakePasswordService hashes by prefixing, verifies by comparison.
type fakePasswordService struct{}

func (s fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// fakeTokenService issues counted tokens and tracks invalidations.
type fakeTokenService struct {
	issued      int
	invalidated map[string]bool
	claims      map[string]*adapter.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		claims:      make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.issued++
	refresh := fmt.Sprintf("refresh-%d", s.issued)
	s.claims[refresh] = &adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.issued),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	t.Run("registers and issues a token pair", func(t *testing.T) {
		userRepo := &fakeUserRepo{}
		uc := NewRegisterUserUseCase(userRepo, fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "correct-horse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.PasswordHash != "hashed:correct-horse" {
			t.Errorf("PasswordHash = %s", output.User.PasswordHash)
		}
		if !output.User.EmailNotifications {
			t.Error("expected notifications enabled by default")
		}
		if len(userRepo.users) != 1 {
			t.Errorf("stored %d users, want 1", len(userRepo.users))
		}
	})

	tests := []struct {
		name    string
		input   RegisterUserInput
		wantErr error
	}{
		{
			name:    "malformed email",
			input:   RegisterUserInput{Email: "not-an-email", Name: "Ana", Password: "correct-horse"},
			wantErr: domainerror.ErrInvalidEmail,
		},
		{
			name:    "blank name",
			input:   RegisterUserInput{Email: "ana@example.com", Name: " ", Password: "correct-horse"},
			wantErr: domainerror.ErrMissingAuthFields,
		},
		{
			name:    "weak password",
			input:   RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "short"},
			wantErr: domainerror.ErrWeakPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(&fakeUserRepo{}, fakePasswordService{}, newFakeTokenService())
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		existing := entity.NewUser("ana@example.com", "Ana", "hash")
		userRepo := &fakeUserRepo{users: []*entity.User{existing}}
		uc := NewRegisterUserUseCase(userRepo, fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "correct-horse",
		})
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	user := entity.NewUser("ana@example.com", "Ana", "hashed:correct-horse")
	userRepo := &fakeUserRepo{users: []*entity.User{user}}

	t.Run("valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(userRepo, fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		if output.User.LastLoginAt == nil {
			t.Error("expected last login to be recorded")
		}
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		uc := NewLoginUserUseCase(userRepo, fakePasswordService{}, newFakeTokenService())

		_, errWrongPassword := uc.Execute(context.Background(), LoginUserInput{Email: "ana@example.com", Password: "nope"})
		_, errUnknownEmail := uc.Execute(context.Background(), LoginUserInput{Email: "bob@example.com", Password: "correct-horse"})

		for _, err := range []error{errWrongPassword, errUnknownEmail} {
			if !errors.Is(err, domainerror.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		}
		if errWrongPassword.Error() != errUnknownEmail.Error() {
			t.Error("credential failures must be indistinguishable")
		}
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("rotates the pair", func(t *testing.T) {
		tokenService := newFakeTokenService()
		pair, _ := tokenService.GenerateTokenPair(context.Background(), userID, "ana@example.com")
		uc := NewRefreshTokenUseCase(tokenService)

		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RefreshToken == pair.RefreshToken {
			t.Error("expected a new refresh token")
		}
		if !tokenService.invalidated[pair.RefreshToken] {
			t.Error("expected the old refresh token to be invalidated")
		}
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		tokenService := newFakeTokenService()
		pair, _ := tokenService.GenerateTokenPair(context.Background(), userID, "ana@example.com")
		tokenService.invalidated[pair.RefreshToken] = true
		uc := NewRefreshTokenUseCase(tokenService)

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "forged"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	tokenService := newFakeTokenService()
	pair, _ := tokenService.GenerateTokenPair(context.Background(), uuid.New(), "ana@example.com")
	uc := NewLogoutUserUseCase(tokenService)

	if _, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: pair.RefreshToken}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tokenService.invalidated[pair.RefreshToken] {
		t.Error("expected the refresh token to be invalidated")
	}
}
