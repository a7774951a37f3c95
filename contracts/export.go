package contracts

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	contractsSheet = "Contratos"
	summarySheet   = "Emisión"
)

var contractsHeader = []interface{}{"Contrato", "Postulación", "Estudiante", "DNI", "Correo institucional", "Carrera"}

// WriteXLSX writes the emission as a workbook: one row per contract on the
// "Contratos" sheet, paired with the student it was issued for, plus a
// summary sheet.
func WriteXLSX(w io.Writer, p *Project, e *Emission) error {
	if p == nil || e == nil {
		return fmt.Errorf("export contracts: project and emission are required")
	}
	if len(e.ContractIDs) != len(p.Students) {
		return fmt.Errorf("export contracts: %d contracts for %d students", len(e.ContractIDs), len(p.Students))
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", contractsSheet); err != nil {
		return fmt.Errorf("export contracts: %w", err)
	}
	if err := f.SetSheetRow(contractsSheet, "A1", &contractsHeader); err != nil {
		return fmt.Errorf("export contracts: writing header: %w", err)
	}
	for i, id := range e.ContractIDs {
		s := p.Students[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export contracts: %w", err)
		}
		row := []interface{}{id, s.ApplicationID, s.FullName, s.NationalID, s.InstitutionalEmail, s.Major}
		if err := f.SetSheetRow(contractsSheet, cell, &row); err != nil {
			return fmt.Errorf("export contracts: writing %s: %w", id, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("export contracts: %w", err)
	}
	summary := [][]interface{}{
		{"Lote", e.BatchID},
		{"Proyecto", p.Number},
		{"Nombre del proyecto", p.Name},
		{"Empresa", p.CompanyName},
		{"Fecha de emisión", e.IssuedAt.Format("2006-01-02 15:04")},
		{"Contratos emitidos", len(e.ContractIDs)},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("export contracts: writing summary: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export contracts: %w", err)
	}
	return nil
}
