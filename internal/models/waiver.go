package models

import "github.com/lib/pq"

// WaiverRule describes one tuition waiver and the criteria a student must
// satisfy to receive it. WaiverRate may hold several percentage literals
// (e.g. "20%", "35%"); the highest applies.
type WaiverRule struct {
	ID                  string         `db:"id" json:"id"`
	Name                string         `db:"name" json:"name"`
	Category            string         `db:"category" json:"category"`
	Description         string         `db:"description" json:"description"`
	WaiverRate          pq.StringArray `db:"waiver_rate" json:"waiver_rate"`
	EligibilityCriteria pq.StringArray `db:"eligibility_criteria" json:"eligibility_criteria"`
	RequiredDocuments   pq.StringArray `db:"required_documents" json:"required_documents"`
	Deadline            string         `db:"deadline" json:"deadline"`
	ApplicablePrograms  pq.StringArray `db:"applicable_programs" json:"applicable_programs"`
	SGPARequired        float64        `db:"sgpa_required" json:"sgpa_required"`
}

// EligibleWaiver is a qualifying rule with its resolved display percentage.
type EligibleWaiver struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Category            string         `json:"category"`
	Description         string         `json:"description"`
	WaiverPercentage    string         `json:"waiver_percentage"`
	EligibilityCriteria pq.StringArray `json:"eligibility_criteria"`
	RequiredDocuments   pq.StringArray `json:"required_documents"`
	Deadline            string         `json:"deadline"`
	ApplicablePrograms  pq.StringArray `json:"applicable_programs"`
	SGPARequired        float64        `json:"sgpa_required"`
}

// StudentProfile carries the optional attributes waiver predicates bind to.
// Absent booleans default to false; FamilyIncome nil means not disclosed.
type StudentProfile struct {
	FamilyIncome           *float64 `json:"family_income,omitempty"`
	IsFreedomFighterChild  bool     `json:"is_freedom_fighter_child"`
	IsDIUEmployeeRelative  bool     `json:"is_diu_employee_relative"`
	HasSportsAchievement   bool     `json:"has_sports_achievement"`
	HasDiploma             bool     `json:"has_diploma"`
	IsInternationalStudent bool     `json:"is_international_student"`
	GroupAdmission         bool     `json:"group_admission"`
}
