package e2e

import (
	"github.com/cucumber/godog"

	"hemobank/e2e/steps/account"
	"hemobank/e2e/steps/common"
	"hemobank/e2e/steps/donor"
)

// RegisterSteps registers all step definitions from the modular packages.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	donor.RegisterSteps(ctx, tc)
	account.RegisterSteps(ctx, tc)
}
