package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/initializ/practicas/contracts"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/steps"
	"github.com/initializ/practicas/logging"
)

var contratosCmd = &cobra.Command{
	Use:     "contratos",
	Aliases: []string{"contracts"},
	Short:   "Emit internship contracts for a project",
	Long:    "Run the contract emission wizard: project lookup, review and emission of one contract per confirmed student.",
	Args:    cobra.NoArgs,
	RunE:    runContratos,
}

func init() {
	contratosCmd.Flags().Bool("non-interactive", false, "run without the wizard (requires --project)")
	contratosCmd.Flags().String("project", "", "project number")
	contratosCmd.Flags().String("xlsx", "", "write the issued contracts to this xlsx workbook")
}

func runContratos(cmd *cobra.Command, args []string) error {
	rt, err := currentRuntime()
	if err != nil {
		return err
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	if !nonInteractive {
		return runWizard(rt, steps.ContractsSubtitle, func(env steps.Env) []tui.Step {
			return steps.ContractsWizard(env, rt.emitter)
		})
	}

	number, _ := cmd.Flags().GetString("project")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")

	log := logging.NewJSONLogger(os.Stderr, verbose)
	p, e, err := emitContracts(cmd.Context(), rt.emitter, log, number)
	if err != nil {
		return err
	}
	printEmission(cmd.OutOrStdout(), e)

	if xlsxPath != "" {
		if err := exportEmission(xlsxPath, p, e); err != nil {
			return err
		}
		log.Info("contracts exported", map[string]any{"path": xlsxPath, "batch_id": e.BatchID})
		fmt.Fprintf(cmd.OutOrStdout(), "Contratos exportados a %s\n", xlsxPath)
	}
	return nil
}

// emitContracts looks the project up and issues its contracts.
func emitContracts(ctx context.Context, emitter contracts.Emitter, log logging.Logger, number string) (*contracts.Project, *contracts.Emission, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	log.Debug("looking up project", map[string]any{"project": number})
	p, err := emitter.LookupProject(ctx, number)
	if err != nil {
		return nil, nil, describe("looking up project", err, log)
	}

	e, err := emitter.EmitContracts(ctx, p)
	if err != nil {
		return nil, nil, describe("emitting contracts", err, log)
	}
	log.Info("contracts emitted", map[string]any{
		"project":   e.ProjectNumber,
		"batch_id":  e.BatchID,
		"contracts": len(e.ContractIDs),
	})
	return p, e, nil
}

func exportEmission(path string, p *contracts.Project, e *contracts.Emission) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := contracts.WriteXLSX(f, p, e); err != nil {
		f.Close() //nolint:errcheck
		return err
	}
	return f.Close()
}

func printEmission(w io.Writer, e *contracts.Emission) {
	fmt.Fprintf(w, "¡Contratos Emitidos Exitosamente! Se han emitido %d contratos correctamente\n", len(e.ContractIDs))
	fmt.Fprintf(w, "  Lote:  %s\n", e.BatchID)
	fmt.Fprintf(w, "  Fecha: %s\n", e.IssuedAt.Format("02/01/2006 15:04"))
	for _, id := range e.ContractIDs {
		fmt.Fprintf(w, "  %s\n", id)
	}
}
