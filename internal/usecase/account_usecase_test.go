package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"
	mock_interfaces "wascrap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	passwordHashCost = bcrypt.MinCost
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAccountUseCase_Register(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		uc := NewAccountUseCase(nil, nil, nil, nil)
		_, err := uc.Register(context.Background(), AccountInput{Email: "a@b.co", Username: "asha", Password: "123"})
		if !errors.Is(err, ErrInvalidAccountInput) {
			t.Fatalf("expected ErrInvalidAccountInput, got %v", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "a@b.co").Return(entities.Account{}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(entities.Account{ID: "other"}, nil)

		_, err := uc.Register(context.Background(), AccountInput{Email: "a@b.co", Username: "asha", Password: "secret1"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("duplicate email on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Account{}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(entities.Account{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Account{}, interfaces.ErrDuplicate)

		_, err := uc.Register(context.Background(), AccountInput{Email: "a@b.co", Username: "asha", Password: "secret1"})
		if !errors.Is(err, ErrAccountAlreadyExists) {
			t.Fatalf("expected ErrAccountAlreadyExists, got %v", err)
		}
	})

	t.Run("admin email gets admin role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo, nil, nil, func(email string) bool { return email == "ops@wascrap.in" })

		repo.EXPECT().GetByEmail(gomock.Any(), "ops@wascrap.in").Return(entities.Account{}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "ops").Return(entities.Account{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				if a.Role != entities.RoleAdmin || !a.EmailConfirmed {
					t.Fatalf("unexpected account: %+v", a)
				}
				if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret1")) != nil {
					t.Fatalf("password was not hashed correctly")
				}
				return a, nil
			},
		)

		_, err := uc.Register(context.Background(), AccountInput{Email: "ops@wascrap.in", Username: "ops", Password: "secret1", EmailConfirmed: true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestAccountUseCase_GetEmailByUsername(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		uc := NewAccountUseCase(nil, nil, nil, nil)
		if _, err := uc.GetEmailByUsername(context.Background(), " "); !errors.Is(err, ErrUsernameRequired) {
			t.Fatalf("expected ErrUsernameRequired, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.Account{}, nil)

		if _, err := uc.GetEmailByUsername(context.Background(), "ghost"); !errors.Is(err, ErrUsernameNotFound) {
			t.Fatalf("expected ErrUsernameNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(entities.Account{ID: "a-1", Email: "asha@example.com"}, nil)

		email, err := uc.GetEmailByUsername(context.Background(), "asha")
		if err != nil || email != "asha@example.com" {
			t.Fatalf("unexpected result: %q err=%v", email, err)
		}
	})
}

func TestAccountUseCase_SignIn(t *testing.T) {
	account := entities.Account{ID: "a-1", Username: "asha", Email: "asha@example.com", PasswordHash: hashed(t, "secret1")}
	exp := fixedNow.Add(time.Hour)

	t.Run("username resolves and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		uc := NewAccountUseCase(repo, nil, tokens, nil)

		repo.EXPECT().GetByUsername(gomock.Any(), "asha").Return(account, nil)
		tokens.EXPECT().Issue(account).Return("jwt", exp, nil)

		s, err := uc.SignIn(context.Background(), "asha", "secret1", entities.PortalCustomer)
		if err != nil || s.AccessToken != "jwt" || !s.ExpiresAt.Equal(exp) {
			t.Fatalf("unexpected session: %+v err=%v", s, err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAccountUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(account, nil)

		if _, err := uc.SignIn(context.Background(), "Asha@Example.com", "nope", entities.PortalCustomer); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("buyer portal requires buyer profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAccountRepository(ctrl)
		buyers := mock_interfaces.NewMockIScrapBuyerRepository(ctrl)
		uc := NewAccountUseCase(repo, buyers, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(account, nil)
		buyers.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(entities.ScrapBuyer{}, nil)

		if _, err := uc.SignIn(context.Background(), "asha@example.com", "secret1", entities.PortalBuyer); !errors.Is(err, ErrNotABuyer) {
			t.Fatalf("expected ErrNotABuyer, got %v", err)
		}
	})
}
