package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutormock/internal/model"
)

type MockFixtureService struct {
	mock.Mock
}

func (m *MockFixtureService) Health(ctx context.Context) (*model.Health, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Health), args.Error(1)
}

func (m *MockFixtureService) CurrentUser(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockFixtureService) Login(ctx context.Context) (*model.AuthToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthToken), args.Error(1)
}

func (m *MockFixtureService) Logout(ctx context.Context) (*model.Logout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Logout), args.Error(1)
}

func (m *MockFixtureService) Subjects(ctx context.Context) ([]model.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

func (m *MockFixtureService) Conversations(ctx context.Context) ([]model.Conversation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *MockFixtureService) Sessions(ctx context.Context) ([]model.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Session), args.Error(1)
}

func (m *MockFixtureService) HelpRequests(ctx context.Context) ([]model.HelpRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HelpRequest), args.Error(1)
}
