package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/initializ/practicas/company"
	"github.com/initializ/practicas/failure"
	"github.com/initializ/practicas/internal/tui"
	"github.com/initializ/practicas/internal/tui/steps"
	"github.com/initializ/practicas/logging"
)

// companyOptions holds the company data given on the command line.
type companyOptions struct {
	CUIT    string
	Details company.Details
}

var empresaCmd = &cobra.Command{
	Use:     "empresa",
	Aliases: []string{"company"},
	Short:   "Register a company by CUIT",
	Long:    "Run the company registration wizard: CUIT check, additional company data and confirmation.",
	Args:    cobra.NoArgs,
	RunE:    runEmpresa,
}

func init() {
	empresaCmd.Flags().Bool("non-interactive", false, "run without the wizard (requires all company flags)")
	empresaCmd.Flags().String("cuit", "", "company CUIT, with or without hyphens")
	empresaCmd.Flags().String("name", "", "company legal name")
	empresaCmd.Flags().String("address", "", "company address")
	empresaCmd.Flags().String("postal-code", "", "4-digit postal code")
	empresaCmd.Flags().String("phone", "", "phone number")
}

func runEmpresa(cmd *cobra.Command, args []string) error {
	rt, err := currentRuntime()
	if err != nil {
		return err
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	if !nonInteractive {
		return runWizard(rt, steps.CompanySubtitle, func(env steps.Env) []tui.Step {
			return steps.CompanyWizard(env, rt.registry)
		})
	}

	var opts companyOptions
	opts.CUIT, _ = cmd.Flags().GetString("cuit")
	opts.Details.LegalName, _ = cmd.Flags().GetString("name")
	opts.Details.Address, _ = cmd.Flags().GetString("address")
	opts.Details.PostalCode, _ = cmd.Flags().GetString("postal-code")
	opts.Details.PhoneNumber, _ = cmd.Flags().GetString("phone")

	log := logging.NewJSONLogger(os.Stderr, verbose)
	data, err := registerCompany(cmd.Context(), rt.registry, log, opts)
	if err != nil {
		return err
	}
	printCompany(cmd.OutOrStdout(), data)
	return nil
}

// registerCompany runs the wizard's checks and calls in order without a UI.
func registerCompany(ctx context.Context, registry company.Registry, log logging.Logger, opts companyOptions) (*company.Data, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	log.Debug("checking cuit", map[string]any{"cuit": opts.CUIT})
	if err := registry.CheckTaxID(ctx, opts.CUIT); err != nil {
		return nil, describe("checking CUIT", err, log)
	}

	taxID := company.StripCUIT(opts.CUIT)
	data, err := registry.Register(ctx, taxID, opts.Details)
	if err != nil {
		return nil, describe("registering company", err, log)
	}
	log.Info("company registered", map[string]any{"cuit": data.TaxID})
	return data, nil
}

// describe turns a service failure into a CLI error carrying the
// user-facing message.
func describe(action string, err error, log logging.Logger) error {
	kind := failure.KindOf(err)
	log.Warn(action+" failed", map[string]any{"reason": string(kind), "error": err.Error()})
	return fmt.Errorf("%s: %s: %w", action, failure.Message(kind), err)
}

func printCompany(w io.Writer, d *company.Data) {
	fmt.Fprintln(w, "¡Empresa registrada correctamente!")
	fmt.Fprintf(w, "  Nombre de la Empresa: %s\n", d.LegalName)
	fmt.Fprintf(w, "  CUIT:                 %s\n", company.DisplayCUIT(d.TaxID))
	fmt.Fprintf(w, "  Teléfono:             %s\n", d.PhoneNumber)
	fmt.Fprintf(w, "  Dirección:            %s\n", d.Address)
	fmt.Fprintf(w, "  Código Postal:        %s\n", d.PostalCode)
}
