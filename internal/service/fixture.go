package service

import (
	"context"

	"tutormock/internal/fixture"
	"tutormock/internal/model"
	"tutormock/internal/process"
)

const (
	statusHealthy   = "healthy"
	statusConnected = "connected"
)

// FixtureService resolves the canned payload for each mock endpoint.
type FixtureService interface {
	// Health reports uptime and version with static dependency indicators.
	Health(ctx context.Context) (*model.Health, error)

	// CurrentUser returns the signed-in user.
	CurrentUser(ctx context.Context) (*model.User, error)

	// Login returns a canned token. Credentials are not inspected.
	Login(ctx context.Context) (*model.AuthToken, error)

	// Logout always succeeds.
	Logout(ctx context.Context) (*model.Logout, error)

	Subjects(ctx context.Context) ([]model.Subject, error)
	Conversations(ctx context.Context) ([]model.Conversation, error)
	Sessions(ctx context.Context) ([]model.Session, error)
	HelpRequests(ctx context.Context) ([]model.HelpRequest, error)
}

// fixtureService is the concrete FixtureService backed by package fixture.
type fixtureService struct {
	proc *process.Process
}

// NewFixtureService constructs a FixtureService reading time from proc.
func NewFixtureService(proc *process.Process) FixtureService {
	return &fixtureService{proc: proc}
}

func (s *fixtureService) Health(ctx context.Context) (*model.Health, error) {
	return &model.Health{
		Status:      statusHealthy,
		Timestamp:   model.Timestamp(s.proc.Now()),
		Uptime:      s.proc.Uptime(),
		Environment: s.proc.Environment,
		Version:     s.proc.Version,
		Database:    statusConnected,
		Redis:       statusConnected,
	}, nil
}

func (s *fixtureService) CurrentUser(ctx context.Context) (*model.User, error) {
	u := fixture.CurrentUser()
	return &u, nil
}

func (s *fixtureService) Login(ctx context.Context) (*model.AuthToken, error) {
	tok := fixture.Login(s.proc.Now())
	return &tok, nil
}

func (s *fixtureService) Logout(ctx context.Context) (*model.Logout, error) {
	return &model.Logout{LoggedOut: true}, nil
}

func (s *fixtureService) Subjects(ctx context.Context) ([]model.Subject, error) {
	return fixture.Subjects(), nil
}

func (s *fixtureService) Conversations(ctx context.Context) ([]model.Conversation, error) {
	return fixture.Conversations(s.proc.Now()), nil
}

func (s *fixtureService) Sessions(ctx context.Context) ([]model.Session, error) {
	return fixture.Sessions(s.proc.Now()), nil
}

func (s *fixtureService) HelpRequests(ctx context.Context) ([]model.HelpRequest, error) {
	return fixture.HelpRequests(s.proc.Now()), nil
}
