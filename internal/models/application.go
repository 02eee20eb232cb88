package models

import (
	"time"

	"github.com/lib/pq"
)

// ApplicationStatus enumerates application lifecycle states.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is a submitted admission application.
type Application struct {
	ID                     string            `db:"id" json:"id"`
	StudentName            string            `db:"student_name" json:"student_name"`
	Email                  string            `db:"email" json:"email"`
	Phone                  string            `db:"phone" json:"phone"`
	DOB                    string            `db:"dob" json:"dob"`
	FatherName             string            `db:"father_name" json:"father_name"`
	MotherName             string            `db:"mother_name" json:"mother_name"`
	NID                    string            `db:"nid" json:"nid"`
	Gender                 string            `db:"gender" json:"gender"`
	ProgramCode            string            `db:"program_code" json:"program_code"`
	SSCGPA                 float64           `db:"ssc_gpa" json:"ssc_gpa"`
	HSCGPA                 float64           `db:"hsc_gpa" json:"hsc_gpa"`
	SSCYear                int               `db:"ssc_year" json:"ssc_year"`
	HSCYear                int               `db:"hsc_year" json:"hsc_year"`
	SSCBoard               string            `db:"ssc_board" json:"ssc_board"`
	HSCBoard               string            `db:"hsc_board" json:"hsc_board"`
	SSCGroup               string            `db:"ssc_group" json:"ssc_group"`
	HSCGroup               string            `db:"hsc_group" json:"hsc_group"`
	FamilyIncome           *float64          `db:"family_income" json:"family_income,omitempty"`
	IsFreedomFighterChild  bool              `db:"is_freedom_fighter_child" json:"is_freedom_fighter_child"`
	IsDIUEmployeeRelative  bool              `db:"is_diu_employee_relative" json:"is_diu_employee_relative"`
	HasSportsAchievement   bool              `db:"has_sports_achievement" json:"has_sports_achievement"`
	HasDiploma             bool              `db:"has_diploma" json:"has_diploma"`
	IsInternationalStudent bool              `db:"is_international_student" json:"is_international_student"`
	GroupAdmission         bool              `db:"group_admission" json:"group_admission"`
	DocumentsSubmitted     pq.StringArray    `db:"documents_submitted" json:"documents_submitted"`
	Status                 ApplicationStatus `db:"application_status" json:"application_status"`
	SubmittedAt            time.Time         `db:"submitted_at" json:"submitted_at"`
}
