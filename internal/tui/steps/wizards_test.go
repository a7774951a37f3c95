package steps

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
)

// press feeds msgs to the wizard and discards the commands they return.
func press(w tui.WizardModel, msgs ...tea.Msg) tui.WizardModel {
	for _, msg := range msgs {
		m, _ := w.Update(msg)
		w = m.(tui.WizardModel)
	}
	return w
}

// typeText presses one key per rune of text.
func typeText(w tui.WizardModel, text string) tui.WizardModel {
	for _, r := range text {
		w = press(w, runes(string(r)))
	}
	return w
}

// drive feeds msgs to the wizard and keeps feeding it whatever their
// commands produce until nothing is left.
func drive(w tui.WizardModel, msgs ...tea.Msg) tui.WizardModel {
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		m, cmd := w.Update(msg)
		w = m.(tui.WizardModel)
		queue = append(queue, settle(cmd)...)
	}
	return w
}

func newCompanyWizard() (tui.WizardModel, *recorder) {
	env, rec, log := testEnv()
	steps := CompanyWizard(env, company.NewMockRegistry(0, 0))
	return tui.NewWizardModel(env.Styles, CompanySubtitle, steps, "test", log), rec
}

func newContractsWizard() tui.WizardModel {
	env, _, log := testEnv()
	steps := ContractsWizard(env, contracts.NewMockEmitter(0, 0))
	return tui.NewWizardModel(env.Styles, ContractsSubtitle, steps, "test", log)
}

func fillCompanyWizard(w tui.WizardModel) tui.WizardModel {
	w = typeText(w, "TechCorp S.A.")
	w = press(w, key(tea.KeyTab))
	w = typeText(w, "Av. Corrientes 1234")
	w = press(w, key(tea.KeyTab))
	w = typeText(w, "1043")
	w = press(w, key(tea.KeyTab))
	return typeText(w, "11-1234-5678")
}

func TestCompanyWizardEndToEnd(t *testing.T) {
	w, _ := newCompanyWizard()

	w = typeText(w, "20123456789")
	w = drive(w, key(tea.KeyEnter))
	if w.Current() != 1 {
		t.Fatalf("after CUIT: current = %d, want 1", w.Current())
	}
	if w.Context().TaxID != "20123456789" {
		t.Errorf("TaxID = %q", w.Context().TaxID)
	}

	w = fillCompanyWizard(w)
	w = drive(w, key(tea.KeyEnter))
	if w.Current() != 2 {
		t.Fatalf("after details: current = %d, want 2", w.Current())
	}

	c := w.Context().Company
	if c == nil || c.TaxID != "20123456789" || c.LegalName != "TechCorp S.A." || c.PostalCode != "1043" {
		t.Errorf("company = %+v", c)
	}
	if view := w.View(); !containsAll(view, "20-12345678-9", "¡Empresa registrada correctamente!") {
		t.Errorf("success view:\n%s", view)
	}

	w = drive(w, runes("n"))
	if w.Current() != 0 || w.Context().TaxID != "" || w.Context().Company != nil {
		t.Errorf("reset left current=%d ctx=%+v", w.Current(), w.Context())
	}
}

func TestCompanyWizardRegisteredCUITStays(t *testing.T) {
	w, rec := newCompanyWizard()

	w = typeText(w, "11-11111111-1")
	w = drive(w, key(tea.KeyEnter))

	if w.Current() != 0 {
		t.Fatalf("current = %d, want 0", w.Current())
	}
	if rec.last().d != testErrorDisplay {
		t.Errorf("error display = %v, want %v", rec.last().d, testErrorDisplay)
	}
	if view := w.View(); !containsAll(view, "La empresa ya se encuentra registrada en el sistema") {
		t.Errorf("view:\n%s", view)
	}

	w = drive(w, rec.last().msg)
	if view := w.View(); containsAll(view, "La empresa ya se encuentra registrada") {
		t.Error("error still visible after expiry")
	}
}

func TestCompanyWizardBackDiscardsForwardState(t *testing.T) {
	w, _ := newCompanyWizard()
	w = typeText(w, "20123456789")
	w = drive(w, key(tea.KeyEnter))
	w = typeText(w, "Acme")

	w = drive(w, key(tea.KeyCtrlB))
	if w.Current() != 0 {
		t.Fatalf("current = %d, want 0", w.Current())
	}
	if w.Context().TaxID != "" {
		t.Errorf("back kept TaxID %q", w.Context().TaxID)
	}

	w = typeText(w, "30712345671")
	w = drive(w, key(tea.KeyEnter))
	if w.Current() != 1 || w.Context().TaxID != "30712345671" {
		t.Fatalf("re-entry: current=%d taxID=%q", w.Current(), w.Context().TaxID)
	}
	if view := w.View(); containsAll(view, "Acme") || !containsAll(view, "CUIT: 30-71234567-1") {
		t.Errorf("details step was not rebuilt:\n%s", view)
	}
}

func TestContractsWizardEndToEnd(t *testing.T) {
	w := newContractsWizard()

	w = typeText(w, "12345")
	w = drive(w, key(tea.KeyEnter))
	if w.Current() != 1 {
		t.Fatalf("after lookup: current = %d, want 1", w.Current())
	}

	w = drive(w, key(tea.KeyEnter))
	if w.Current() != 2 {
		t.Fatalf("after emission: current = %d, want 2", w.Current())
	}

	e := w.Context().Emission
	want := []string{"CONT-12345-001", "CONT-12345-002", "CONT-12345-003"}
	if e == nil || len(e.ContractIDs) != len(want) {
		t.Fatalf("emission = %+v", e)
	}
	for i := range want {
		if e.ContractIDs[i] != want[i] {
			t.Errorf("contract %d = %q, want %q", i, e.ContractIDs[i], want[i])
		}
	}
	if view := w.View(); !containsAll(view, "CONT-12345-002") {
		t.Errorf("result view:\n%s", view)
	}

	w = drive(w, runes("n"))
	if w.Current() != 0 || w.Context().Project != nil || w.Context().Emission != nil {
		t.Errorf("reset left current=%d ctx=%+v", w.Current(), w.Context())
	}
}

func TestContractsWizardBackFromConfirm(t *testing.T) {
	w := newContractsWizard()
	w = typeText(w, "12345")
	w = drive(w, key(tea.KeyEnter))

	w = drive(w, key(tea.KeyBackspace))
	if w.Current() != 0 || w.Context().Project != nil {
		t.Errorf("back left current=%d project=%+v", w.Current(), w.Context().Project)
	}
}

func TestContractsWizardSentinelStays(t *testing.T) {
	w := newContractsWizard()
	w = typeText(w, "555")
	w = drive(w, key(tea.KeyEnter))
	if w.Current() != 0 {
		t.Errorf("current = %d, want 0", w.Current())
	}
	if view := w.View(); !containsAll(view, `El proyecto no está en estado "En evaluación".`) {
		t.Errorf("view:\n%s", view)
	}
}
