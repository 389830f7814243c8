package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/application/usecase"
	"github.com/jhoicas/progarden-crm/internal/domain"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
	"github.com/jhoicas/progarden-crm/pkg/jwt"
	"github.com/jhoicas/progarden-crm/pkg/logger"
)

// TokenType value of token_type in /token responses.
const TokenType = "bearer"

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// LoginNotifier tells the account owner that someone signed in.
type LoginNotifier interface {
	NotifyLogin(ctx context.Context, email, username string, at time.Time) error
}

// AuthUseCase login and current-user lookup.
type AuthUseCase struct {
	users    repository.UserRepository
	jwtCfg   JWTConfig
	notifier LoginNotifier
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase builds the use case. notifier may be nil.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig, notifier LoginNotifier, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, notifier: notifier, log: log, now: time.Now}
}

// Login checks username/password and issues a bearer token. Unknown users and
// wrong passwords both return domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.TokenRequest) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil && user.Email != nil && *user.Email != "" {
		go uc.notify(*user.Email, user.Username, uc.now())
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: TokenType}, nil
}

// notify runs detached from the request; a failed mail never fails the login.
func (uc *AuthUseCase) notify(email, username string, at time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := uc.notifier.NotifyLogin(ctx, email, username, at); err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("login notification failed")
	}
}

// Me returns the user behind a validated token.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	resp := usecase.ToUserResponse(user)
	return &resp, nil
}
