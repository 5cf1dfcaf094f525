package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/veridian-labs/identity-core/internal/core/domain"
	"github.com/veridian-labs/identity-core/internal/core/ports/driven/mocks"
	"github.com/veridian-labs/identity-core/internal/core/ports/driving"
)

// signInScenario carries state across the steps of one scenario.
type signInScenario struct {
	users   driving.UserManager[string]
	signIn  driving.SignInManager
	clock   time.Time
	nextID  int
	lastRes domain.SignInResult
}

func newSignInScenario() *signInScenario {
	s := &signInScenario{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	seq := 0
	newKey := func() string {
		seq++
		return fmt.Sprintf("claim-%d", seq)
	}

	s.users = NewUserManager[string](
		mocks.NewMockUserStore[string](),
		mocks.NewMockUserClaimStore[string](newKey),
		mocks.NewMockUserRoleStore[string](),
		mocks.NewMockRoleStore[string](),
		mocks.NewMockPasswordHasher[string](),
		upperNormalizer{},
		NewErrorDescriber(),
		domain.DefaultOptions(),
		WithClock[string](func() time.Time { return s.clock }),
	)
	s.signIn = NewSignInManager(s.users)
	return s
}

func (s *signInScenario) aUserWithPassword(name, password string) error {
	s.nextID++
	user := &domain.User[string]{ID: fmt.Sprintf("u%d", s.nextID), UserName: name}
	result, err := s.users.Create(context.Background(), user, password)
	if err != nil {
		return err
	}
	if !result.Succeeded {
		return fmt.Errorf("create user: %s", result)
	}
	return nil
}

func (s *signInScenario) signsInWith(name, password string) error {
	result, err := s.signIn.PasswordSignIn(context.Background(), name, password)
	if err != nil {
		return err
	}
	s.lastRes = result
	return nil
}

func (s *signInScenario) signsInWithTimes(name, password string, times int) error {
	for i := 0; i < times; i++ {
		if err := s.signsInWith(name, password); err != nil {
			return err
		}
	}
	return nil
}

func (s *signInScenario) minutesPass(minutes int) error {
	s.clock = s.clock.Add(time.Duration(minutes) * time.Minute)
	return nil
}

func (s *signInScenario) theResultIs(expected string) error {
	if string(s.lastRes) != expected {
		return fmt.Errorf("expected result %q, got %q", expected, s.lastRes)
	}
	return nil
}

func InitializeSignInScenario(sc *godog.ScenarioContext) {
	var s *signInScenario

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s = newSignInScenario()
		return ctx, nil
	})

	sc.Step(`^a user "([^"]*)" with password "([^"]*)"$`, func(name, password string) error {
		return s.aUserWithPassword(name, password)
	})
	sc.Step(`^"([^"]*)" signs in with password "([^"]*)"$`, func(name, password string) error {
		return s.signsInWith(name, password)
	})
	sc.Step(`^"([^"]*)" signs in with password "([^"]*)" (\d+) times$`, func(name, password string, times int) error {
		return s.signsInWithTimes(name, password, times)
	})
	sc.Step(`^(\d+) minutes pass$`, func(minutes int) error {
		return s.minutesPass(minutes)
	})
	sc.Step(`^the sign-in result is "([^"]*)"$`, func(expected string) error {
		return s.theResultIs(expected)
	})
}

func TestSignInScenarios(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeSignInScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("sign-in feature suite failed")
	}
}
