// test/mock/service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/service"
)

// MockCrudService is a mock implementation of service.ICrudService
type MockCrudService[T any] struct {
	mock.Mock
}

func (m *MockCrudService[T]) Create(ctx context.Context, session model.Session, doc *T) (*T, error) {
	args := m.Called(ctx, session, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCrudService[T]) Get(ctx context.Context, session model.Session, id string) (*T, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCrudService[T]) List(ctx context.Context, session model.Session, query service.ListQuery) (*model.Page[T], error) {
	args := m.Called(ctx, session, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[T]), args.Error(1)
}

func (m *MockCrudService[T]) Update(ctx context.Context, session model.Session, id string, patch service.Patcher) (*T, error) {
	args := m.Called(ctx, session, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCrudService[T]) Delete(ctx context.Context, session model.Session, id string) (bool, error) {
	args := m.Called(ctx, session, id)
	return args.Bool(0), args.Error(1)
}

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) ParseToken(tokenStr string) (model.Session, error) {
	args := m.Called(tokenStr)
	return args.Get(0).(model.Session), args.Error(1)
}
