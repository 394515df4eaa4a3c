package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/service"
)

type stubUserFinder struct {
	user *model.User
	err  error
}

func (f *stubUserFinder) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.user, f.err
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	coach := &model.User{Email: "coach@example.com", PasswordHash: string(hash), Role: model.RoleCoach}
	coach.SetID(primitive.NewObjectID())

	t.Run("ValidCredentials", func(t *testing.T) {
		svc := service.NewAuthService(&stubUserFinder{user: coach}, "test-secret", time.Hour)

		token, user, err := svc.Login(ctx, "coach@example.com", "s3cret")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, coach, user)

		session, err := svc.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, coach.IDHex(), session.UserID)
		assert.Equal(t, model.RoleCoach, session.Role)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc := service.NewAuthService(&stubUserFinder{}, "test-secret", time.Hour)

		_, _, err := svc.Login(ctx, "ghost@example.com", "s3cret")
		assert.ErrorIs(t, err, draft_errors.ErrUserNotFound)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := service.NewAuthService(&stubUserFinder{user: coach}, "test-secret", time.Hour)

		_, _, err := svc.Login(ctx, "coach@example.com", "wrong")
		assert.ErrorIs(t, err, draft_errors.ErrInvalidCredentials)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc := service.NewAuthService(&stubUserFinder{err: errors.New("timeout")}, "test-secret", time.Hour)

		_, _, err := svc.Login(ctx, "coach@example.com", "s3cret")
		assert.Equal(t, "LOGIN_USER_USECASE", draft_errors.Code(err))
	})
}

func TestAuthServiceParseToken(t *testing.T) {
	svc := service.NewAuthService(&stubUserFinder{}, "test-secret", time.Hour)

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := svc.ParseToken("not-a-token")
		assert.ErrorIs(t, err, draft_errors.ErrUnauthenticated)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		coach := &model.User{Email: "coach@example.com", PasswordHash: string(hash), Role: model.RoleCoach}
		coach.SetID(primitive.NewObjectID())

		other := service.NewAuthService(&stubUserFinder{user: coach}, "other-secret", time.Hour)
		token, _, err := other.Login(context.Background(), "coach@example.com", "s3cret")
		assert.NoError(t, err)

		_, err = svc.ParseToken(token)
		assert.ErrorIs(t, err, draft_errors.ErrUnauthenticated)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		coach := &model.User{Email: "coach@example.com", PasswordHash: string(hash), Role: model.RoleCoach}
		coach.SetID(primitive.NewObjectID())

		expired := service.NewAuthService(&stubUserFinder{user: coach}, "test-secret", -time.Minute)
		token, _, err := expired.Login(context.Background(), "coach@example.com", "s3cret")
		assert.NoError(t, err)

		stillExpired := service.NewAuthService(&stubUserFinder{}, "test-secret", time.Hour)
		_, err = stillExpired.ParseToken(token)
		assert.ErrorIs(t, err, draft_errors.ErrUnauthenticated)
	})
}
