package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameRequired     = errors.New("username is required")
	ErrUsernameNotFound     = errors.New("username not found")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidAccountInput  = errors.New("invalid account")
	ErrAccountAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid login credentials")
)

const minPasswordLength = 6

// passwordHashCost is lowered by tests.
var passwordHashCost = bcrypt.DefaultCost

type AccountInput struct {
	Email          string
	Username       string
	Password       string
	FullName       string
	Phone          string
	EmailConfirmed bool
}

type IAccountUseCase interface {
	Register(ctx context.Context, in AccountInput) (entities.Account, error)
	GetEmailByUsername(ctx context.Context, username string) (string, error)
	SignIn(ctx context.Context, identifier, password string, portal entities.Portal) (entities.Session, error)
}

type AccountUseCase struct {
	repo    interfaces.IAccountRepository
	buyers  interfaces.IScrapBuyerRepository
	tokens  interfaces.ITokenIssuer
	isAdmin func(email string) bool
	now     func() time.Time
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(
	repo interfaces.IAccountRepository,
	buyers interfaces.IScrapBuyerRepository,
	tokens interfaces.ITokenIssuer,
	isAdmin func(email string) bool,
) *AccountUseCase {
	return &AccountUseCase{
		repo:    repo,
		buyers:  buyers,
		tokens:  tokens,
		isAdmin: isAdmin,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *AccountUseCase) Register(ctx context.Context, in AccountInput) (entities.Account, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return entities.Account{}, fmt.Errorf("%w: email is not valid", ErrInvalidAccountInput)
	}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return entities.Account{}, ErrUsernameRequired
	}
	if strings.Contains(username, "@") {
		return entities.Account{}, fmt.Errorf("%w: username must not contain @", ErrInvalidAccountInput)
	}
	if len(in.Password) < minPasswordLength {
		return entities.Account{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidAccountInput, minPasswordLength)
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.Account{}, err
	} else if existing.ID != "" {
		return entities.Account{}, ErrAccountAlreadyExists
	}
	if existing, err := u.repo.GetByUsername(ctx, username); err != nil {
		return entities.Account{}, err
	} else if existing.ID != "" {
		return entities.Account{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
	if err != nil {
		return entities.Account{}, err
	}

	role := entities.RoleCustomer
	if u.isAdmin != nil && u.isAdmin(email) {
		role = entities.RoleAdmin
	}
	a := entities.Account{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		FullName:       strings.TrimSpace(in.FullName),
		Phone:          strings.TrimSpace(in.Phone),
		EmailConfirmed: in.EmailConfirmed,
		CreatedAt:      u.now(),
	}
	created, err := u.repo.Create(ctx, a)
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.Account{}, ErrAccountAlreadyExists
	}
	if err != nil {
		return entities.Account{}, err
	}
	log.Printf("[account][usecase] registered account_id=%s username=%s role=%s", created.ID, created.Username, created.Role)
	return created, nil
}

func (u *AccountUseCase) GetEmailByUsername(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrUsernameRequired
	}
	a, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if a.ID == "" {
		return "", ErrUsernameNotFound
	}
	return a.Email, nil
}

// SignIn accepts either an e-mail or a username. The buyer portal also
// requires a registered scrap buyer profile for the account's e-mail.
func (u *AccountUseCase) SignIn(ctx context.Context, identifier, password string, portal entities.Portal) (entities.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	var (
		a   entities.Account
		err error
	)
	if strings.Contains(identifier, "@") {
		a, err = u.repo.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		a, err = u.repo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		return entities.Session{}, err
	}
	if a.ID == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		log.Printf("[account][usecase] signin rejected account_id=%s", a.ID)
		return entities.Session{}, ErrInvalidCredentials
	}

	if portal == entities.PortalBuyer && u.buyers != nil {
		b, err := u.buyers.GetByEmail(ctx, a.Email)
		if err != nil {
			return entities.Session{}, err
		}
		if b.ID == "" {
			return entities.Session{}, ErrNotABuyer
		}
	}

	token, exp, err := u.tokens.Issue(a)
	if err != nil {
		return entities.Session{}, err
	}
	log.Printf("[account][usecase] signin ok account_id=%s portal=%s", a.ID, portal)
	return entities.Session{AccessToken: token, ExpiresAt: exp, Account: a}, nil
}
