package models

import "github.com/lib/pq"

// Program is a degree program offered by a department. Records are seeded once
// and read-only at request time.
type Program struct {
	ID                int            `db:"id" json:"id"`
	Name              string         `db:"name" json:"name"`
	Code              string         `db:"code" json:"code"`
	DepartmentCode    string         `db:"department_code" json:"department_code"`
	TotalCost         float64        `db:"total_cost" json:"total_cost"`
	Credits           int            `db:"credits" json:"credits"`
	Duration          float64        `db:"duration" json:"duration"`
	Description       string         `db:"description" json:"description"`
	Eligibility       pq.StringArray `db:"eligibility" json:"eligibility"`
	CareerProspects   pq.StringArray `db:"career_prospects" json:"career_prospects"`
	AdmissionDeadline string         `db:"admission_deadline" json:"admission_deadline"`
	ProgramType       string         `db:"program_type" json:"program_type"`
	Accreditation     string         `db:"accreditation" json:"accreditation"`
}
