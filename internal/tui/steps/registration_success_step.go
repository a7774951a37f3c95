package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
)

// RegistrationSuccessStep shows the registered company and offers to start
// over with a new one.
type RegistrationSuccessStep struct {
	env  Env
	data *company.Data
}

// NewRegistrationSuccessStep creates the final step of the company wizard.
func NewRegistrationSuccessStep(env Env) *RegistrationSuccessStep {
	return &RegistrationSuccessStep{env: env}
}

func (s *RegistrationSuccessStep) Title() string { return "Empresa registrada" }
func (s *RegistrationSuccessStep) Icon() string  { return "✅" }

func (s *RegistrationSuccessStep) Prepare(ctx *tui.WizardContext) {
	s.data = ctx.Company
}

func (s *RegistrationSuccessStep) Init() tea.Cmd { return nil }

func (s *RegistrationSuccessStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "n":
			s.env.logger().Info("new registration requested", nil)
			return s, func() tea.Msg { return tui.WizardResetMsg{} }
		}
	}
	return s, nil
}

func (s *RegistrationSuccessStep) View(width int) string {
	if s.data == nil {
		return ""
	}
	banner := s.env.Styles.SuccessTxt.Bold(true).Render("✓ ¡Empresa registrada correctamente!") + "\n" +
		s.env.Styles.SecondaryTxt.Render("La empresa ha sido registrada exitosamente en el sistema")
	out := "  " + s.env.Styles.SuccessBox.Width(boxWidth(width)).Render(banner) + "\n\n"

	box := s.env.summaryBox("Información de la Empresa", []components.SummaryRow{
		{Key: "Nombre de la Empresa", Value: s.data.LegalName},
		{Key: "CUIT", Value: company.DisplayCUIT(s.data.TaxID)},
		{Key: "Teléfono", Value: s.data.PhoneNumber},
		{Key: "Dirección", Value: s.data.Address},
		{Key: "Código Postal", Value: s.data.PostalCode},
	})
	out += box.View(width) + "\n\n"
	out += s.env.hints([]components.KeyBinding{
		{Key: "⏎", Desc: "registrar nueva empresa"},
		{Key: "esc", Desc: "salir"},
	})
	return out
}

// Complete is always false: the step only ends by resetting the wizard.
func (s *RegistrationSuccessStep) Complete() bool { return false }

func (s *RegistrationSuccessStep) Summary() string {
	if s.data == nil {
		return ""
	}
	return s.data.LegalName
}

func (s *RegistrationSuccessStep) Apply(*tui.WizardContext) {}

func (s *RegistrationSuccessStep) Reset() {
	s.data = nil
}

func boxWidth(width int) int {
	if width-8 < 30 {
		return 30
	}
	return width - 8
}
