package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	logger "github.com/Happykiller/DraftDream-sub004/logging"
	"github.com/Happykiller/DraftDream-sub004/model"
)

// UserFinder is the slice of the user store the login flow needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// IAuthService issues and verifies the tokens the middleware builds sessions
// from.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ParseToken(tokenStr string) (model.Session, error)
}

// AuthService is the simple password/JWT check: bcrypt compare, HS256 token
// carrying the user id and role.
type AuthService struct {
	users  UserFinder
	secret []byte
	ttl    time.Duration
}

var _ IAuthService = &AuthService{}

func NewAuthService(users UserFinder, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// Claims carried by every access token.
type Claims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Login authenticates the credentials and returns a signed token. Unknown
// email is USER_NOT_FOUND; a bad password is INVALID_CREDENTIALS.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Error(fmt.Sprintf("LoginUsecase#execute => %v", err))
		return "", nil, draft_errors.Usecase("LOGIN", "USER", err)
	}
	if user == nil {
		return "", nil, draft_errors.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, draft_errors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error(fmt.Sprintf("LoginUsecase#execute => %v", err))
		return "", nil, draft_errors.Usecase("LOGIN", "USER", err)
	}
	return token, user, nil
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.IDHex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// ParseToken verifies the token and builds the request session. A token
// missing the subject or role yields UNAUTHENTICATED: the transport never
// proceeds with a partial session.
func (s *AuthService) ParseToken(tokenStr string) (model.Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return model.Session{}, draft_errors.ErrUnauthenticated
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return model.Session{}, draft_errors.ErrUnauthenticated
	}

	session := model.Session{UserID: claims.Subject, Role: claims.Role}
	if !session.Complete() {
		return model.Session{}, draft_errors.ErrUnauthenticated
	}
	return session, nil
}
