package steps

import (
	"context"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
)

const testErrorDisplay = 5 * time.Second

type scheduled struct {
	d   time.Duration
	msg tea.Msg
}

// recorder is a tui.Scheduler that never fires; tests deliver the
// recorded messages themselves.
type recorder struct {
	calls []scheduled
}

func (r *recorder) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	r.calls = append(r.calls, scheduled{d, msg})
	return nil
}

func (r *recorder) last() scheduled {
	if len(r.calls) == 0 {
		return scheduled{}
	}
	return r.calls[len(r.calls)-1]
}

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	entries []entry
}

func (l *recordingLogger) add(level, msg string, fields map[string]any) {
	l.entries = append(l.entries, entry{level, msg, fields})
}

func (l *recordingLogger) Info(msg string, f map[string]any)  { l.add("info", msg, f) }
func (l *recordingLogger) Warn(msg string, f map[string]any)  { l.add("warn", msg, f) }
func (l *recordingLogger) Error(msg string, f map[string]any) { l.add("error", msg, f) }
func (l *recordingLogger) Debug(msg string, f map[string]any) { l.add("debug", msg, f) }

func (l *recordingLogger) find(msg string) (entry, bool) {
	for _, e := range l.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return entry{}, false
}

func testEnv() (Env, *recorder, *recordingLogger) {
	r := &recorder{}
	log := &recordingLogger{}
	return Env{
		Styles:       tui.NewStyleSet(tui.DarkTheme),
		ErrorDisplay: testErrorDisplay,
		Schedule:     r.schedule,
		Log:          log,
	}, r, log
}

type failingRegistry struct{ err error }

func (r failingRegistry) CheckTaxID(context.Context, string) error { return r.err }
func (r failingRegistry) Register(context.Context, string, company.Details) (*company.Data, error) {
	return nil, r.err
}

type failingEmitter struct{ err error }

func (e failingEmitter) LookupProject(context.Context, string) (*contracts.Project, error) {
	return nil, e.err
}
func (e failingEmitter) EmitContracts(context.Context, *contracts.Project) (*contracts.Emission, error) {
	return nil, e.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeKeys feeds text to step one rune at a time, discarding commands.
func typeKeys(step tui.Step, text string) {
	for _, r := range text {
		step.Update(runes(string(r)))
	}
}

// settle runs cmd and everything it batches, returning the messages this
// package and the wizard care about. Commands still blocked after a short
// grace period, such as cursor blinks, are abandoned.
func settle(cmd tea.Cmd) []tea.Msg {
	var (
		mu  sync.Mutex
		out []tea.Msg
		wg  sync.WaitGroup
	)
	var launch func(tea.Cmd)
	launch = func(c tea.Cmd) {
		if c == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					launch(sub)
				}
				return
			}
			if interesting(msg) {
				mu.Lock()
				out = append(out, msg)
				mu.Unlock()
			}
		}()
	}
	launch(cmd)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(300 * time.Millisecond):
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]tea.Msg(nil), out...)
}

func interesting(msg tea.Msg) bool {
	switch msg.(type) {
	case cuitCheckedMsg, companyRegisteredMsg, projectLoadedMsg, contractsEmittedMsg,
		tui.StepCompleteMsg, tui.StepBackMsg, tui.WizardResetMsg, tui.FlashExpiredMsg:
		return true
	}
	return false
}

// only returns the single message settle produced for cmd.
func only(cmd tea.Cmd) tea.Msg {
	msgs := settle(cmd)
	if len(msgs) != 1 {
		return nil
	}
	return msgs[0]
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
