package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
)

const (
	companyInvalidMessage  = "Datos ingresados inconsistentes. Intente nuevamente"
	companyRegisterMessage = "Error al registrar la empresa. Intente nuevamente."
)

// Form field order.
const (
	fieldLegalName = iota
	fieldAddress
	fieldPostalCode
	fieldPhone
)

type companyRegisteredMsg struct {
	attempt int
	data    *company.Data
	err     error
}

// CompanyStep collects the additional company details and registers the
// company.
type CompanyStep struct {
	env      Env
	registry company.Registry
	form     components.Form
	flash    tui.Flash
	call     call
	taxID    string
	data     *company.Data
	complete bool
}

// NewCompanyStep creates the company details step.
func NewCompanyStep(env Env, registry company.Registry) *CompanyStep {
	s := &CompanyStep{
		env:      env,
		registry: registry,
		flash:    env.newFlash(),
		call:     newCall(env.Styles.Theme.Accent),
	}
	s.form = s.newForm()
	return s
}

func (s *CompanyStep) newForm() components.Form {
	return components.NewForm(
		s.env.newInput("Nombre de la Empresa", "Ej: TechCorp S.A.", 120, nil),
		s.env.newInput("Dirección", "Ej: Av. Corrientes 1234", 120, nil),
		s.env.newInput("Código Postal", "Ej: 1043", company.PostalCodeLength, company.FilterPostalCode),
		s.env.newInput("Número de Teléfono", "Ej: 11-1234-5678", 20, nil),
	)
}

func (s *CompanyStep) Title() string { return "Datos adicionales" }
func (s *CompanyStep) Icon() string  { return "📋" }

// Prepare picks up the CUIT checked by the previous step.
func (s *CompanyStep) Prepare(ctx *tui.WizardContext) {
	s.taxID = ctx.TaxID
}

func (s *CompanyStep) Init() tea.Cmd {
	return s.form.Init()
}

func (s *CompanyStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.flash.Update(msg) {
		return s, nil
	}
	if cmd, ok := s.call.update(msg); ok {
		return s, cmd
	}

	switch msg := msg.(type) {
	case companyRegisteredMsg:
		return s, s.handleRegistered(msg)
	case tea.KeyMsg:
		if s.complete || s.call.pending() {
			return s, nil
		}
		switch msg.String() {
		case "ctrl+b":
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			if s.form.OnLastField() {
				return s, s.submit()
			}
			return s, s.form.FocusIndex(s.form.Focus() + 1)
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *CompanyStep) details() company.Details {
	v := s.form.Values()
	return company.Details{
		LegalName:   v[fieldLegalName],
		Address:     v[fieldAddress],
		PostalCode:  v[fieldPostalCode],
		PhoneNumber: v[fieldPhone],
	}
}

func (s *CompanyStep) submit() tea.Cmd {
	details := s.details()
	if err := details.Validate(); err != nil {
		return s.fail(err, companyInvalidMessage)
	}

	s.flash.Clear()
	s.form.Blur()
	ctx, attempt := s.call.start()
	registry := s.registry
	taxID := s.taxID
	s.env.logger().Debug("registering company", map[string]any{"cuit": taxID, "attempt": attempt})

	return tea.Batch(s.call.tick(), func() tea.Msg {
		data, err := registry.Register(ctx, taxID, details)
		return companyRegisteredMsg{attempt: attempt, data: data, err: err}
	})
}

func (s *CompanyStep) handleRegistered(msg companyRegisteredMsg) tea.Cmd {
	if !s.call.finish(msg.attempt) {
		return nil
	}
	if msg.err != nil {
		return s.fail(msg.err, companyRegisterMessage)
	}
	s.data = msg.data
	s.complete = true
	s.env.logger().Info("company registered", map[string]any{"cuit": msg.data.TaxID})
	return func() tea.Msg { return tui.StepCompleteMsg{} }
}

// fail empties every field and shows text.
func (s *CompanyStep) fail(err error, text string) tea.Cmd {
	s.env.logger().Info("company rejected", map[string]any{"reason": string(failure.KindOf(err)), "error": err.Error()})
	return tea.Batch(s.form.ClearAll(), s.flash.Show(text))
}

func (s *CompanyStep) View(width int) string {
	out := s.env.header("Datos Adicionales de la Empresa", "CUIT: "+company.DisplayCUIT(s.taxID))
	out += s.form.View(width)
	out += s.env.errorAlert(s.flash, width)
	out += "\n"
	if s.call.pending() {
		out += s.call.view("Registrando empresa...", s.env.Styles.AccentTxt)
	} else {
		out += s.env.hints(components.FormHints())
	}
	return out
}

func (s *CompanyStep) Complete() bool {
	return s.complete
}

func (s *CompanyStep) Summary() string {
	if s.data == nil {
		return ""
	}
	return s.data.LegalName
}

func (s *CompanyStep) Apply(ctx *tui.WizardContext) {
	ctx.Company = s.data
}

func (s *CompanyStep) Reset() {
	s.call.abort()
	s.flash.Clear()
	s.form = s.newForm()
	s.taxID = ""
	s.data = nil
	s.complete = false
}
