package steps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
)

type cuitCheckedMsg struct {
	attempt int
	taxID   string
	err     error
}

var cuitSamples = []string{
	"Ingrese cualquier CUIT válido para continuar.",
	"Ingrese texto o números incompletos para simular datos no válidos.",
	`Ingrese "11-11111111-1" para simular empresa ya registrada.`,
}

// CuitStep collects the company CUIT and checks it against the registry.
type CuitStep struct {
	env      Env
	registry company.Registry
	input    components.TextInput
	flash    tui.Flash
	call     call
	taxID    string
	complete bool
}

// NewCuitStep creates the CUIT entry step.
func NewCuitStep(env Env, registry company.Registry) *CuitStep {
	s := &CuitStep{
		env:      env,
		registry: registry,
		flash:    env.newFlash(),
		call:     newCall(env.Styles.Theme.Accent),
	}
	s.input = s.newInput()
	return s
}

func (s *CuitStep) newInput() components.TextInput {
	return s.env.newInput("CUIT de la Empresa", "Ej: 20-12345678-9", company.CUITInputMaxLen, company.FormatCUITInput)
}

func (s *CuitStep) Title() string { return "CUIT de la empresa" }
func (s *CuitStep) Icon() string  { return "🏢" }

func (s *CuitStep) Init() tea.Cmd {
	return s.input.Init()
}

func (s *CuitStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.flash.Update(msg) {
		return s, nil
	}
	if cmd, ok := s.call.update(msg); ok {
		return s, cmd
	}

	switch msg := msg.(type) {
	case cuitCheckedMsg:
		return s, s.handleChecked(msg)
	case tea.KeyMsg:
		if s.complete || s.call.pending() {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *CuitStep) submit() tea.Cmd {
	raw := s.input.Value()
	if strings.TrimSpace(raw) == "" {
		return s.fail(failure.New(failure.InvalidInput), false)
	}
	if !company.ValidCUIT(raw) {
		return s.fail(failure.New(failure.InvalidInput), true)
	}

	s.flash.Clear()
	s.input.Blur()
	taxID := company.StripCUIT(raw)
	ctx, attempt := s.call.start()
	registry := s.registry
	s.env.logger().Debug("checking cuit", map[string]any{"cuit": taxID, "attempt": attempt})

	return tea.Batch(s.call.tick(), func() tea.Msg {
		err := registry.CheckTaxID(ctx, taxID)
		return cuitCheckedMsg{attempt: attempt, taxID: taxID, err: err}
	})
}

func (s *CuitStep) handleChecked(msg cuitCheckedMsg) tea.Cmd {
	if !s.call.finish(msg.attempt) {
		return nil
	}
	if msg.err != nil {
		return tea.Batch(s.input.Focus(), s.fail(msg.err, true))
	}
	s.taxID = msg.taxID
	s.complete = true
	return func() tea.Msg { return tui.StepCompleteMsg{} }
}

// fail shows the message for err's kind, clearing the field when asked.
func (s *CuitStep) fail(err error, clearInput bool) tea.Cmd {
	if clearInput {
		s.input.Clear()
	}
	kind := failure.KindOf(err)
	s.env.logger().Info("cuit rejected", map[string]any{"reason": string(kind), "error": err.Error()})
	return s.flash.Show(failure.Message(kind))
}

func (s *CuitStep) View(width int) string {
	out := s.env.header("Registrar Empresa", "Ingrese el CUIT de la empresa")
	out += s.input.View(width)
	out += s.env.errorAlert(s.flash, width)
	out += "\n"
	if s.call.pending() {
		out += s.call.view("Verificando CUIT...", s.env.Styles.AccentTxt)
	} else {
		out += s.env.hints(components.InputHints())
	}
	out += "\n" + s.env.notice("Ejemplos para prueba:", cuitSamples).View(width) + "\n"
	return out
}

func (s *CuitStep) Complete() bool {
	return s.complete
}

func (s *CuitStep) Summary() string {
	return company.DisplayCUIT(s.taxID)
}

func (s *CuitStep) Apply(ctx *tui.WizardContext) {
	ctx.TaxID = s.taxID
}

func (s *CuitStep) Reset() {
	s.call.abort()
	s.flash.Clear()
	s.input = s.newInput()
	s.taxID = ""
	s.complete = false
}
