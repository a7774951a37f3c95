package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/config"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/steps"
	"github.com/initializ/practicas/logging"
)

var errNoTerminal = errors.New("interactive mode needs a terminal; rerun with --non-interactive")

// runtimeEnv is everything a command needs once flags and config are
// resolved.
type runtimeEnv struct {
	cfg      *config.Config
	delays   config.Delays
	theme    string
	logFile  string
	registry *company.MockRegistry
	emitter  *contracts.MockEmitter
}

// loadRuntime reads the config file and applies flag overrides on top.
func loadRuntime(path, themeFlag, logFileFlag string) (*runtimeEnv, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rt := &runtimeEnv{
		cfg:     cfg,
		delays:  cfg.Delays(),
		theme:   cfg.Theme,
		logFile: cfg.LogFile,
	}
	if themeFlag != "" {
		rt.theme = themeFlag
	}
	if logFileFlag != "" {
		rt.logFile = logFileFlag
	}
	rt.registry = company.NewMockRegistry(rt.delays.CUITCheck, rt.delays.CompanyRegister)
	rt.emitter = contracts.NewMockEmitter(rt.delays.ProjectLookup, rt.delays.ContractEmission)
	return rt, nil
}

func currentRuntime() (*runtimeEnv, error) {
	return loadRuntime(cfgFile, themeOverride, logFile)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// stepEnv builds the shared step dependencies.
func (rt *runtimeEnv) stepEnv(log logging.Logger) steps.Env {
	return steps.Env{
		Styles:       tui.NewStyleSet(tui.DetectTheme(rt.theme)),
		ErrorDisplay: rt.delays.ErrorDisplay,
		Log:          log,
	}
}

// openTrace opens the interactive trace file for appending.
func (rt *runtimeEnv) openTrace() (io.WriteCloser, error) {
	f, err := os.OpenFile(rt.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	return f, nil
}

// runWizard runs a wizard full screen until the user leaves it. Leaving
// with esc or ctrl+c is the normal way out.
func runWizard(rt *runtimeEnv, subtitle string, build func(steps.Env) []tui.Step) error {
	if !isTerminal() {
		return errNoTerminal
	}

	trace, err := rt.openTrace()
	if err != nil {
		return err
	}
	defer trace.Close() //nolint:errcheck

	log := logging.NewJSONLogger(trace, verbose)
	env := rt.stepEnv(log)
	model := tui.NewWizardModel(env.Styles, subtitle, build(env), appVersion, log)

	log.Info("wizard started", map[string]any{"wizard": subtitle})
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	if wm, ok := final.(tui.WizardModel); ok {
		log.Info("wizard closed", map[string]any{"wizard": subtitle, "step": wm.Current()})
	}
	return nil
}
