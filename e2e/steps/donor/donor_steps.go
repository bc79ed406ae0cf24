package donor

import (
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext is the slice of the shared context the donor steps need.
type TestContext interface {
	POST(path string, body any) error
	GET(path string) error
	DELETE(path string) error
	ResponseField(name string) (any, error)
	SetVar(key, value string)
	Var(key string) (string, error)
}

// RegisterSteps registers donor lifecycle step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &donorSteps{tc: tc}

	ctx.Step(`^I register a donor with blood group "([^"]*)"$`, steps.registerDonor)
	ctx.Step(`^I register a donor aged (\d+)$`, steps.registerDonorAged)
	ctx.Step(`^I save the donor id$`, steps.saveDonorID)
	ctx.Step(`^I fetch the saved donor$`, steps.fetchSavedDonor)
	ctx.Step(`^I delete the saved donor$`, steps.deleteSavedDonor)
}

type donorSteps struct {
	tc TestContext
}

func submission(age int, bloodGroup string) map[string]any {
	return map[string]any{
		"name":            "Jane Doe",
		"age":             age,
		"gender":          "female",
		"bloodGroup":      bloodGroup,
		"phone":           "9876543210",
		"email":           "jane@example.com",
		"address":         "1 Main St",
		"city":            "Metropolis",
		"state":           "NY",
		"ageConfirmation": true,
	}
}

func (s *donorSteps) registerDonor(bloodGroup string) error {
	return s.tc.POST("/donors", submission(30, bloodGroup))
}

func (s *donorSteps) registerDonorAged(age int) error {
	return s.tc.POST("/donors", submission(age, "O-"))
}

func (s *donorSteps) saveDonorID() error {
	record, err := s.tc.ResponseField("donor")
	if err != nil {
		return err
	}
	fields, ok := record.(map[string]any)
	if !ok {
		return fmt.Errorf("donor field is not an object: %v", record)
	}
	id, ok := fields["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("donor id missing: %v", fields)
	}
	s.tc.SetVar("donor_id", id)
	return nil
}

func (s *donorSteps) fetchSavedDonor() error {
	id, err := s.tc.Var("donor_id")
	if err != nil {
		return err
	}
	return s.tc.GET("/donors/" + id)
}

func (s *donorSteps) deleteSavedDonor() error {
	id, err := s.tc.Var("donor_id")
	if err != nil {
		return err
	}
	return s.tc.DELETE("/donors/" + id)
}
