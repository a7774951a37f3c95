package steps

import (
	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
)

// Wizard subtitles shown under the banner.
const (
	CompanySubtitle   = "Registro de empresas"
	ContractsSubtitle = "Emisión de contratos"
)

// CompanyWizard returns the steps of the company registration wizard.
func CompanyWizard(env Env, registry company.Registry) []tui.Step {
	return []tui.Step{
		NewCuitStep(env, registry),
		NewCompanyStep(env, registry),
		NewRegistrationSuccessStep(env),
	}
}

// ContractsWizard returns the steps of the contract emission wizard.
func ContractsWizard(env Env, emitter contracts.Emitter) []tui.Step {
	return []tui.Step{
		NewProjectStep(env, emitter),
		NewConfirmEmissionStep(env, emitter),
		NewEmissionResultStep(env),
	}
}
