package account

import (
	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// TestContext is the slice of the shared context the account steps need.
type TestContext interface {
	POST(path string, body any) error
	SetVar(key, value string)
	Var(key string) (string, error)
}

// RegisterSteps registers signup and login step definitions. Each scenario
// works with a generated email so runs against a persistent server stay
// independent.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &accountSteps{tc: tc}

	ctx.Step(`^I sign up with a new account$`, steps.signupNewAccount)
	ctx.Step(`^I sign up with the same account again$`, steps.signupSameAccount)
	ctx.Step(`^I log in with the correct password$`, steps.loginCorrectPassword)
	ctx.Step(`^I log in with a wrong password$`, steps.loginWrongPassword)
}

type accountSteps struct {
	tc TestContext
}

func (s *accountSteps) signupNewAccount() error {
	email := "e2e-" + uuid.NewString() + "@example.com"
	s.tc.SetVar("email", email)
	s.tc.SetVar("password", "hunter22")
	return s.signupSameAccount()
}

func (s *accountSteps) signupSameAccount() error {
	email, err := s.tc.Var("email")
	if err != nil {
		return err
	}
	password, err := s.tc.Var("password")
	if err != nil {
		return err
	}
	return s.tc.POST("/auth/signup", map[string]string{"email": email, "password": password})
}

func (s *accountSteps) loginCorrectPassword() error {
	email, err := s.tc.Var("email")
	if err != nil {
		return err
	}
	password, err := s.tc.Var("password")
	if err != nil {
		return err
	}
	return s.tc.POST("/auth/login", map[string]string{"email": email, "password": password})
}

func (s *accountSteps) loginWrongPassword() error {
	email, err := s.tc.Var("email")
	if err != nil {
		return err
	}
	return s.tc.POST("/auth/login", map[string]string{"email": email, "password": "not-the-password"})
}
