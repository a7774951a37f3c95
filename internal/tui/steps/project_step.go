package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
)

type projectLoadedMsg struct {
	attempt int
	project *contracts.Project
	err     error
}

var projectSamples = []string{
	"Ingrese cualquier número válido (ej: 12345) para ver un proyecto válido",
	`Ingrese 555 para simular que el proyecto no está en estado "En evaluación"`,
	"Ingrese 999 para simular que el proyecto no se encuentra",
	`Ingrese 777 para simular que el proceso de selección no está en estado "Definitivo"`,
	`Ingrese 444 para simular que la postulación no está en estado "Confirmado"`,
	"Ingrese letras o caracteres especiales para simular datos inconsistentes",
}

// ProjectStep collects a project number and looks the project up. Failed
// attempts keep whatever the user typed.
type ProjectStep struct {
	env      Env
	emitter  contracts.Emitter
	input    components.TextInput
	flash    tui.Flash
	call     call
	project  *contracts.Project
	complete bool
}

// NewProjectStep creates the project entry step.
func NewProjectStep(env Env, emitter contracts.Emitter) *ProjectStep {
	s := &ProjectStep{
		env:     env,
		emitter: emitter,
		flash:   env.newFlash(),
		call:    newCall(env.Styles.Theme.Accent),
	}
	s.input = s.newInput()
	return s
}

func (s *ProjectStep) newInput() components.TextInput {
	return s.env.newInput("Número de Proyecto", "Ej: 12345", 32, nil)
}

func (s *ProjectStep) Title() string { return "Proyecto" }
func (s *ProjectStep) Icon() string  { return "📁" }

func (s *ProjectStep) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ProjectStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.flash.Update(msg) {
		return s, nil
	}
	if cmd, ok := s.call.update(msg); ok {
		return s, cmd
	}

	switch msg := msg.(type) {
	case projectLoadedMsg:
		return s, s.handleLoaded(msg)
	case tea.KeyMsg:
		if s.complete || s.call.pending() {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "ctrl+l":
			s.input.Clear()
			s.flash.Clear()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ProjectStep) submit() tea.Cmd {
	number := s.input.Value()
	if !contracts.ValidProjectNumber(number) {
		return s.fail(failure.New(failure.InvalidInput))
	}

	s.flash.Clear()
	s.input.Blur()
	ctx, attempt := s.call.start()
	emitter := s.emitter
	s.env.logger().Debug("looking up project", map[string]any{"project": number, "attempt": attempt})

	return tea.Batch(s.call.tick(), func() tea.Msg {
		p, err := emitter.LookupProject(ctx, number)
		return projectLoadedMsg{attempt: attempt, project: p, err: err}
	})
}

func (s *ProjectStep) handleLoaded(msg projectLoadedMsg) tea.Cmd {
	if !s.call.finish(msg.attempt) {
		return nil
	}
	if msg.err != nil {
		return tea.Batch(s.input.Focus(), s.fail(msg.err))
	}
	s.project = msg.project
	s.complete = true
	return func() tea.Msg { return tui.StepCompleteMsg{} }
}

func (s *ProjectStep) fail(err error) tea.Cmd {
	kind := failure.KindOf(err)
	s.env.logger().Info("project rejected", map[string]any{"reason": string(kind), "error": err.Error()})
	return s.flash.Show(failure.Message(kind))
}

func (s *ProjectStep) View(width int) string {
	out := s.env.header("Emitir Contrato", "Ingrese el número del proyecto")
	out += s.input.View(width)
	out += s.env.errorAlert(s.flash, width)
	out += "\n"
	if s.call.pending() {
		out += s.call.view("Validando proyecto...", s.env.Styles.AccentTxt)
	} else {
		out += s.env.hints([]components.KeyBinding{
			{Key: "⏎", Desc: "buscar proyecto"},
			{Key: "ctrl+l", Desc: "limpiar"},
			{Key: "esc", Desc: "salir"},
		})
	}
	out += "\n" + s.env.notice("Ejemplos para prueba:", projectSamples).View(width) + "\n"
	return out
}

func (s *ProjectStep) Complete() bool {
	return s.complete
}

func (s *ProjectStep) Summary() string {
	if s.project == nil {
		return ""
	}
	return s.project.Number + " · " + s.project.Name
}

func (s *ProjectStep) Apply(ctx *tui.WizardContext) {
	ctx.Project = s.project
}

func (s *ProjectStep) Reset() {
	s.call.abort()
	s.flash.Clear()
	s.input = s.newInput()
	s.project = nil
	s.complete = false
}
