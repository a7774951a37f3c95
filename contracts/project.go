// Package contracts models the internship contract emission workflow:
// project lookup, confirmed students and issued contract identifiers.
package contracts

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sentinel project numbers that make the mock lookup fail.
const (
	ProjectNotFound        = "999"
	ProjectWrongState      = "555"
	ProjectProcessNotFinal = "777"
	ProjectNoConfirmedApps = "444"
	projectStateEvaluating = "En evaluación"
	contractIDFormat       = "CONT-%s-%03d"
	templateProjectName    = "Sistema de Gestión Empresarial"
	templateProjectCompany = "TechCorp S.A."
)

var projectNumberRe = regexp.MustCompile(`^\d+$`)

// Student is a student whose application to the project is confirmed.
type Student struct {
	ApplicationID      string `json:"applicationId"`
	FullName           string `json:"fullName"`
	NationalID         string `json:"nationalId"`
	InstitutionalEmail string `json:"institutionalEmail"`
	Major              string `json:"major"`
}

// Project is an internship project ready for contract emission.
type Project struct {
	Number      string    `json:"projectNumber"`
	Name        string    `json:"projectName"`
	CompanyName string    `json:"companyName"`
	State       string    `json:"state"`
	Students    []Student `json:"confirmedStudents"`
}

// Emission is the ordered batch of contracts issued for a project.
type Emission struct {
	BatchID       string    `json:"batchId"`
	ProjectNumber string    `json:"projectNumber"`
	ContractIDs   []string  `json:"contractIds"`
	IssuedAt      time.Time `json:"issuedAt"`
}

// ValidProjectNumber reports whether number is non-empty and made only of
// digits.
func ValidProjectNumber(number string) bool {
	return strings.TrimSpace(number) != "" && projectNumberRe.MatchString(number)
}

// ContractID formats the identifier of the seq-th contract (1-based) of a
// project.
func ContractID(projectNumber string, seq int) string {
	return fmt.Sprintf(contractIDFormat, projectNumber, seq)
}

// ContractIDs returns one identifier per confirmed student, in student order.
func ContractIDs(p *Project) []string {
	ids := make([]string, len(p.Students))
	for i := range p.Students {
		ids[i] = ContractID(p.Number, i+1)
	}
	return ids
}

// templateProject is the fixed project every successful mock lookup returns.
func templateProject(number string) *Project {
	return &Project{
		Number:      number,
		Name:        templateProjectName,
		CompanyName: templateProjectCompany,
		State:       projectStateEvaluating,
		Students: []Student{
			{
				ApplicationID:      "POST-001",
				FullName:           "Ana García Rodríguez",
				NationalID:         "12345678",
				InstitutionalEmail: "ana.garcia@universidad.edu",
				Major:              "Ingeniería en Sistemas",
			},
			{
				ApplicationID:      "POST-002",
				FullName:           "Carlos López Martínez",
				NationalID:         "87654321",
				InstitutionalEmail: "carlos.lopez@universidad.edu",
				Major:              "Ingeniería Industrial",
			},
			{
				ApplicationID:      "POST-003",
				FullName:           "María Fernández Silva",
				NationalID:         "11223344",
				InstitutionalEmail: "maria.fernandez@universidad.edu",
				Major:              "Ingeniería en Sistemas",
			},
		},
	}
}
