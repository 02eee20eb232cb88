package service

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
	"github.com/diulabs/admission-api/pkg/export"
)

type applicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	ExistsByProgram(ctx context.Context, nid, programCode string) (bool, error)
	FindByID(ctx context.Context, id string) (*models.Application, error)
}

type programLookup interface {
	FindByCode(ctx context.Context, code string) (*models.Program, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type titledDatasetRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFormat selects the application summary output encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// SubmitApplicationRequest holds the admission application payload.
type SubmitApplicationRequest struct {
	StudentName            string   `json:"student_name" validate:"required"`
	Email                  string   `json:"email" validate:"required,email"`
	Phone                  string   `json:"phone" validate:"required"`
	DOB                    string   `json:"dob" validate:"required"`
	FatherName             string   `json:"father_name" validate:"required"`
	MotherName             string   `json:"mother_name" validate:"required"`
	NID                    string   `json:"nid" validate:"required,min=10"`
	Gender                 string   `json:"gender" validate:"required"`
	ProgramCode            string   `json:"program_code" validate:"required"`
	SSCGPA                 float64  `json:"ssc_gpa" validate:"gte=0,lte=5"`
	HSCGPA                 float64  `json:"hsc_gpa" validate:"gte=0,lte=5"`
	SSCYear                int      `json:"ssc_year" validate:"required"`
	HSCYear                int      `json:"hsc_year" validate:"required"`
	SSCBoard               string   `json:"ssc_board" validate:"required"`
	HSCBoard               string   `json:"hsc_board" validate:"required"`
	SSCGroup               string   `json:"ssc_group" validate:"required"`
	HSCGroup               string   `json:"hsc_group" validate:"required"`
	FamilyIncome           *float64 `json:"family_income"`
	IsFreedomFighterChild  bool     `json:"is_freedom_fighter_child"`
	IsDIUEmployeeRelative  bool     `json:"is_diu_employee_relative"`
	HasSportsAchievement   bool     `json:"has_sports_achievement"`
	HasDiploma             bool     `json:"has_diploma"`
	IsInternationalStudent bool     `json:"is_international_student"`
	GroupAdmission         bool     `json:"group_admission"`
	DocumentsSubmitted     []string `json:"documents_submitted"`
}

// ApplicationService handles admission application intake and summary export.
type ApplicationService struct {
	applications applicationRepository
	programs     programLookup
	csv          datasetRenderer
	pdf          titledDatasetRenderer
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewApplicationService constructs the application service.
func NewApplicationService(applications applicationRepository, programs programLookup, validate *validator.Validate, logger *zap.Logger) *ApplicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		applications: applications,
		programs:     programs,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		validator:    validate,
		logger:       logger,
	}
}

// Submit validates and persists a new application.
func (s *ApplicationService) Submit(ctx context.Context, req SubmitApplicationRequest) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}
	if _, err := s.programs.FindByCode(ctx, req.ProgramCode); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "program not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to verify program")
	}
	exists, err := s.applications.ExistsByProgram(ctx, req.NID, req.ProgramCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to check existing applications")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "an application for this program already exists")
	}

	application := &models.Application{
		StudentName:            req.StudentName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		DOB:                    req.DOB,
		FatherName:             req.FatherName,
		MotherName:             req.MotherName,
		NID:                    req.NID,
		Gender:                 req.Gender,
		ProgramCode:            req.ProgramCode,
		SSCGPA:                 req.SSCGPA,
		HSCGPA:                 req.HSCGPA,
		SSCYear:                req.SSCYear,
		HSCYear:                req.HSCYear,
		SSCBoard:               req.SSCBoard,
		HSCBoard:               req.HSCBoard,
		SSCGroup:               req.SSCGroup,
		HSCGroup:               req.HSCGroup,
		FamilyIncome:           req.FamilyIncome,
		IsFreedomFighterChild:  req.IsFreedomFighterChild,
		IsDIUEmployeeRelative:  req.IsDIUEmployeeRelative,
		HasSportsAchievement:   req.HasSportsAchievement,
		HasDiploma:             req.HasDiploma,
		IsInternationalStudent: req.IsInternationalStudent,
		GroupAdmission:         req.GroupAdmission,
		DocumentsSubmitted:     req.DocumentsSubmitted,
		Status:                 models.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store application")
	}
	s.logger.Info("application submitted", zap.String("application_id", application.ID), zap.String("program_code", application.ProgramCode))
	return application, nil
}

// Get returns an application by ID.
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load application")
	}
	return application, nil
}

// ExportSummary renders a printable summary of the application in the
// requested format and returns the payload with its MIME type.
func (s *ApplicationService) ExportSummary(ctx context.Context, id string, format ExportFormat) ([]byte, string, error) {
	application, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	dataset := applicationDataset(application)
	switch format {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv summary")
		}
		return payload, "text/csv", nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, "Admission Application Summary")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf summary")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func applicationDataset(application *models.Application) export.Dataset {
	income := ""
	if application.FamilyIncome != nil {
		income = strconv.FormatFloat(*application.FamilyIncome, 'f', 2, 64)
	}
	rows := []struct {
		field string
		value string
	}{
		{"Application ID", application.ID},
		{"Student Name", application.StudentName},
		{"Email", application.Email},
		{"Phone", application.Phone},
		{"Date of Birth", application.DOB},
		{"Father's Name", application.FatherName},
		{"Mother's Name", application.MotherName},
		{"Gender", application.Gender},
		{"Program Code", application.ProgramCode},
		{"SSC GPA", strconv.FormatFloat(application.SSCGPA, 'f', 2, 64)},
		{"HSC GPA", strconv.FormatFloat(application.HSCGPA, 'f', 2, 64)},
		{"SSC Board", application.SSCBoard},
		{"HSC Board", application.HSCBoard},
		{"Family Income", income},
		{"Documents", strings.Join(application.DocumentsSubmitted, "; ")},
		{"Status", string(application.Status)},
		{"Submitted At", application.SubmittedAt.Format("2006-01-02 15:04:05")},
	}

	dataset := export.Dataset{Headers: []string{"Field", "Value"}}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{"Field": row.field, "Value": row.value})
	}
	return dataset
}
