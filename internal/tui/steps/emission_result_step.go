package steps

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/components"
)

const issuedAtLayout = "02/01/2006 15:04"

// EmissionResultStep lists the issued contracts. Download and e-mail
// actions are placeholders that only leave a trace in the log.
type EmissionResultStep struct {
	env      Env
	emission *contracts.Emission
	list     components.CardList
}

// NewEmissionResultStep creates the final step of the contracts wizard.
func NewEmissionResultStep(env Env) *EmissionResultStep {
	return &EmissionResultStep{env: env}
}

func (s *EmissionResultStep) Title() string { return "Contratos emitidos" }
func (s *EmissionResultStep) Icon() string  { return "✅" }

func (s *EmissionResultStep) Prepare(ctx *tui.WizardContext) {
	s.emission = ctx.Emission
	var items []components.CardItem
	if s.emission != nil {
		for _, id := range s.emission.ContractIDs {
			items = append(items, components.CardItem{
				Icon:        "📄",
				Label:       id,
				Description: "Contrato de Prácticas Profesionales",
			})
		}
	}
	s.list = s.env.cardList(items, true)
}

func (s *EmissionResultStep) Init() tea.Cmd { return nil }

func (s *EmissionResultStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || s.emission == nil {
		return s, nil
	}

	switch key.String() {
	case "n":
		s.env.logger().Info("new emission requested", nil)
		return s, func() tea.Msg { return tui.WizardResetMsg{} }
	case "d":
		s.trace("downloading contract", s.selected())
	case "m":
		s.trace("sending contract by email", s.selected())
	case "D":
		s.trace("downloading all contracts", "")
	case "M":
		s.trace("sending all contracts by email", "")
	default:
		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *EmissionResultStep) selected() string {
	ids := s.emission.ContractIDs
	if len(ids) == 0 {
		return ""
	}
	return ids[s.list.Cursor()]
}

func (s *EmissionResultStep) trace(action, contractID string) {
	fields := map[string]any{"batch_id": s.emission.BatchID, "project": s.emission.ProjectNumber}
	if contractID != "" {
		fields["contract"] = contractID
	} else {
		fields["contracts"] = len(s.emission.ContractIDs)
	}
	s.env.logger().Info(action, fields)
}

func (s *EmissionResultStep) View(width int) string {
	if s.emission == nil {
		return ""
	}
	styles := s.env.Styles
	count := len(s.emission.ContractIDs)

	banner := styles.SuccessTxt.Bold(true).Render("✓ ¡Contratos Emitidos Exitosamente!") + "\n" +
		styles.SecondaryTxt.Render(fmt.Sprintf("Se han emitido %d contratos correctamente", count))
	out := "  " + styles.SuccessBox.Width(boxWidth(width)).Render(banner) + "\n\n"

	issued := s.emission.IssuedAt.Format(issuedAtLayout)
	out += s.env.summaryBox("Detalles de la Emisión", []components.SummaryRow{
		{Key: "Fecha de Emisión", Value: issued},
		{Key: "Contratos Emitidos", Value: strconv.Itoa(count)},
		{Key: "Estado", Value: styles.StatusBadge.Render("✓ Emitidos")},
		{Key: "Fecha de Inicio", Value: issued},
		{Key: "Lote", Value: s.emission.BatchID},
	}).View(width) + "\n\n"

	out += "  " + styles.Title.Render("Contratos Generados") + "\n"
	out += "  " + styles.SecondaryTxt.Render("Puede descargar o enviar por email cada contrato individualmente") + "\n"
	out += s.list.View(width) + "\n"
	out += s.env.hints(components.ResultHints())
	return out
}

// Complete is always false: the step only ends by resetting the wizard.
func (s *EmissionResultStep) Complete() bool { return false }

func (s *EmissionResultStep) Summary() string {
	if s.emission == nil {
		return ""
	}
	return s.emission.BatchID
}

func (s *EmissionResultStep) Apply(*tui.WizardContext) {}

func (s *EmissionResultStep) Reset() {
	s.emission = nil
	s.list = components.CardList{}
}
