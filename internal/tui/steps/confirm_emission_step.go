package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
)

type contractsEmittedMsg struct {
	attempt  int
	emission *contracts.Emission
	err      error
}

// ConfirmEmissionStep reviews the project and issues its contracts on
// confirmation.
type ConfirmEmissionStep struct {
	env      Env
	emitter  contracts.Emitter
	call     call
	project  *contracts.Project
	emission *contracts.Emission
	complete bool
}

// NewConfirmEmissionStep creates the emission review step.
func NewConfirmEmissionStep(env Env, emitter contracts.Emitter) *ConfirmEmissionStep {
	return &ConfirmEmissionStep{
		env:     env,
		emitter: emitter,
		call:    newCall(env.Styles.Theme.Accent),
	}
}

func (s *ConfirmEmissionStep) Title() string { return "Confirmar emisión" }
func (s *ConfirmEmissionStep) Icon() string  { return "📝" }

func (s *ConfirmEmissionStep) Prepare(ctx *tui.WizardContext) {
	s.project = ctx.Project
}

func (s *ConfirmEmissionStep) Init() tea.Cmd { return nil }

func (s *ConfirmEmissionStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if cmd, ok := s.call.update(msg); ok {
		return s, cmd
	}

	switch msg := msg.(type) {
	case contractsEmittedMsg:
		return s, s.handleEmitted(msg)
	case tea.KeyMsg:
		if s.complete || s.call.pending() {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.emit()
		case "backspace", "ctrl+b":
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		}
	}
	return s, nil
}

func (s *ConfirmEmissionStep) emit() tea.Cmd {
	if s.project == nil {
		return nil
	}
	ctx, attempt := s.call.start()
	emitter := s.emitter
	project := s.project
	s.env.logger().Debug("emitting contracts", map[string]any{"project": project.Number, "attempt": attempt})

	return tea.Batch(s.call.tick(), func() tea.Msg {
		e, err := emitter.EmitContracts(ctx, project)
		return contractsEmittedMsg{attempt: attempt, emission: e, err: err}
	})
}

func (s *ConfirmEmissionStep) handleEmitted(msg contractsEmittedMsg) tea.Cmd {
	if !s.call.finish(msg.attempt) {
		return nil
	}
	if msg.err != nil {
		s.env.logger().Error("contract emission failed", map[string]any{"project": s.project.Number, "error": msg.err.Error()})
		return nil
	}
	s.emission = msg.emission
	s.complete = true
	s.env.logger().Info("contracts emitted", map[string]any{
		"project":   msg.emission.ProjectNumber,
		"batch_id":  msg.emission.BatchID,
		"contracts": len(msg.emission.ContractIDs),
	})
	return func() tea.Msg { return tui.StepCompleteMsg{} }
}

func (s *ConfirmEmissionStep) View(width int) string {
	if s.project == nil {
		return ""
	}
	p := s.project
	styles := s.env.Styles

	out := s.env.header("Confirmar Emisión de Contratos", "Revise la información antes de proceder con la emisión")

	out += s.env.summaryBox("Información del Proyecto", []components.SummaryRow{
		{Key: "Número de Proyecto", Value: p.Number},
		{Key: "Nombre del Proyecto", Value: p.Name},
		{Key: "Empresa", Value: p.CompanyName},
		{Key: "Estado", Value: styles.StatusBadge.Render("✓ " + p.State)},
	}).View(width) + "\n\n"

	out += "  " + styles.Title.Render(fmt.Sprintf("Estudiantes Confirmados (%d)", len(p.Students))) + "\n"
	out += "  " + styles.SecondaryTxt.Render("Los siguientes estudiantes tienen postulaciones confirmadas y recibirán contratos") + "\n"
	items := make([]components.CardItem, len(p.Students))
	for i, st := range p.Students {
		items[i] = components.CardItem{
			Icon:        "🎓",
			Label:       st.FullName,
			Badge:       st.ApplicationID,
			Description: fmt.Sprintf("DNI: %s  ·  %s  ·  %s", st.NationalID, st.InstitutionalEmail, st.Major),
		}
	}
	out += s.env.cardList(items, false).View(width) + "\n"

	notice := fmt.Sprintf("Se emitirán %d contratos para los estudiantes confirmados del proyecto %s. Esta acción no se puede deshacer.",
		len(p.Students), p.Number)
	out += components.Alert(notice, "ℹ", styles.InfoBox, width) + "\n"

	if s.call.pending() {
		out += s.call.view("Emitiendo contratos...", styles.AccentTxt)
	} else {
		out += s.env.hints(components.ReviewHints())
	}
	return out
}

func (s *ConfirmEmissionStep) Complete() bool {
	return s.complete
}

func (s *ConfirmEmissionStep) Summary() string {
	if s.emission == nil {
		return ""
	}
	return fmt.Sprintf("%d contratos emitidos", len(s.emission.ContractIDs))
}

func (s *ConfirmEmissionStep) Apply(ctx *tui.WizardContext) {
	ctx.Emission = s.emission
}

func (s *ConfirmEmissionStep) Reset() {
	s.call.abort()
	s.project = nil
	s.emission = nil
	s.complete = false
}
