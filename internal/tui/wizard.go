package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/logging"
)

// WizardContext accumulates the payload handed from one step to the next.
type WizardContext struct {
	TaxID    string
	Company  *company.Data
	Project  *contracts.Project
	Emission *contracts.Emission
}

// NewWizardContext creates an empty WizardContext.
func NewWizardContext() *WizardContext {
	return &WizardContext{}
}

// WizardModel is the top-level bubbletea model that orchestrates the wizard.
// It only tracks which step is active and the payload built so far; all
// validation lives in the steps.
type WizardModel struct {
	styles   *StyleSet
	subtitle string
	steps    []Step
	current  int
	ctx      *WizardContext
	log      logging.Logger
	width    int
	height   int
	done     bool
	err      error
	version  string
}

// NewWizardModel creates a new wizard with the given steps.
func NewWizardModel(styles *StyleSet, subtitle string, steps []Step, version string, log logging.Logger) WizardModel {
	if log == nil {
		log = logging.Nop{}
	}
	return WizardModel{
		styles:   styles,
		subtitle: subtitle,
		steps:    steps,
		ctx:      NewWizardContext(),
		log:      log,
		width:    80,
		height:   24,
		version:  version,
	}
}

// Init initializes the first step.
func (w WizardModel) Init() tea.Cmd {
	if len(w.steps) > 0 {
		return w.steps[0].Init()
	}
	return nil
}

// advanceStep applies the current step's data and moves to the next one.
func (w *WizardModel) advanceStep() tea.Cmd {
	if w.current < len(w.steps) {
		w.steps[w.current].Apply(w.ctx)
		w.log.Debug("step completed", map[string]any{"step": w.steps[w.current].Title()})
	}

	w.current++
	if w.current >= len(w.steps) {
		w.done = true
		return tea.Quit
	}

	return w.enterStep()
}

// retreatStep drops the active step's state and returns to the previous one.
// The context is rebuilt from the steps still behind the cursor so nothing
// built further ahead survives.
func (w *WizardModel) retreatStep() tea.Cmd {
	if w.current == 0 {
		return nil
	}
	w.steps[w.current].Reset()
	w.current--
	w.steps[w.current].Reset()

	w.ctx = NewWizardContext()
	for i := 0; i < w.current; i++ {
		w.steps[i].Apply(w.ctx)
	}
	w.log.Debug("step back", map[string]any{"step": w.steps[w.current].Title()})
	return w.enterStep()
}

// restart resets every step and starts a new session.
func (w *WizardModel) restart() tea.Cmd {
	for _, s := range w.steps {
		s.Reset()
	}
	w.current = 0
	w.done = false
	w.ctx = NewWizardContext()
	w.log.Info("wizard restarted", map[string]any{"wizard": w.subtitle})
	if len(w.steps) == 0 {
		return nil
	}
	return w.enterStep()
}

func (w *WizardModel) enterStep() tea.Cmd {
	if preparer, ok := w.steps[w.current].(Preparer); ok {
		preparer.Prepare(w.ctx)
	}
	return w.steps[w.current].Init()
}

// Update handles messages for the wizard.
func (w WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			w.err = fmt.Errorf("wizard cancelled")
			return w, tea.Quit
		}

	case StepBackMsg:
		return w, w.retreatStep()

	case StepCompleteMsg:
		// This is the sole path for step advancement.
		return w, w.advanceStep()

	case WizardResetMsg:
		return w, w.restart()
	}

	// Delegate to current step
	if w.current < len(w.steps) {
		updated, cmd := w.steps[w.current].Update(msg)
		w.steps[w.current] = updated
		return w, cmd
	}

	return w, nil
}

// View renders the entire wizard UI.
func (w WizardModel) View() string {
	var out string

	out += "\n" + RenderBanner(w.styles, w.version, w.subtitle, w.width)
	out += "\n"

	out += RenderProgress(w.steps, w.current, w.styles, w.width)
	out += "\n"

	if w.current < len(w.steps) {
		out += w.steps[w.current].View(w.width)
	}
	out += "\n"

	return out
}

// Context returns the accumulated wizard context.
func (w WizardModel) Context() *WizardContext {
	return w.ctx
}

// Current returns the index of the active step.
func (w WizardModel) Current() int {
	return w.current
}

// Err returns any error that occurred during the wizard.
func (w WizardModel) Err() error {
	return w.err
}

// Done returns true if the wizard completed successfully.
func (w WizardModel) Done() bool {
	return w.done
}
