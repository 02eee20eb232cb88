// Command seed creates the admission schema and loads the catalog, waiver,
// and FAQ tables from the files under data/. Records that fail to decode are
// skipped and logged; existing rows are left untouched.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	"github.com/diulabs/admission-api/internal/repository"
	"github.com/diulabs/admission-api/pkg/cache"
	"github.com/diulabs/admission-api/pkg/config"
	"github.com/diulabs/admission-api/pkg/database"
	"github.com/diulabs/admission-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS programs (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    code TEXT UNIQUE NOT NULL,
    department_code TEXT NOT NULL DEFAULT '',
    total_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
    credits INTEGER NOT NULL DEFAULT 0,
    duration DOUBLE PRECISION NOT NULL DEFAULT 0,
    description TEXT NOT NULL DEFAULT '',
    eligibility TEXT[] NOT NULL DEFAULT '{}',
    career_prospects TEXT[] NOT NULL DEFAULT '{}',
    admission_deadline TEXT NOT NULL DEFAULT '',
    program_type TEXT NOT NULL DEFAULT '',
    accreditation TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS departments (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    code TEXT UNIQUE NOT NULL,
    contact TEXT NOT NULL DEFAULT '',
    head TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    programs TEXT[] NOT NULL DEFAULT '{}',
    faculty TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    website TEXT NOT NULL DEFAULT '',
    established_year INTEGER NOT NULL DEFAULT 0,
    student_capacity INTEGER NOT NULL DEFAULT 0,
    accreditation TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS waivers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    waiver_rate TEXT[] NOT NULL DEFAULT '{}',
    eligibility_criteria TEXT[] NOT NULL DEFAULT '{}',
    required_documents TEXT[] NOT NULL DEFAULT '{}',
    deadline TEXT NOT NULL DEFAULT '',
    applicable_programs TEXT[] NOT NULL DEFAULT '{}',
    sgpa_required DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS faqs (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    keywords TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    source_link TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS applications (
    id TEXT PRIMARY KEY,
    student_name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    dob TEXT NOT NULL DEFAULT '',
    father_name TEXT NOT NULL DEFAULT '',
    mother_name TEXT NOT NULL DEFAULT '',
    nid TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT '',
    program_code TEXT NOT NULL,
    ssc_gpa DOUBLE PRECISION NOT NULL DEFAULT 0,
    hsc_gpa DOUBLE PRECISION NOT NULL DEFAULT 0,
    ssc_year INTEGER NOT NULL DEFAULT 0,
    hsc_year INTEGER NOT NULL DEFAULT 0,
    ssc_board TEXT NOT NULL DEFAULT '',
    hsc_board TEXT NOT NULL DEFAULT '',
    ssc_group TEXT NOT NULL DEFAULT '',
    hsc_group TEXT NOT NULL DEFAULT '',
    family_income DOUBLE PRECISION,
    is_freedom_fighter_child BOOLEAN NOT NULL DEFAULT FALSE,
    is_diu_employee_relative BOOLEAN NOT NULL DEFAULT FALSE,
    has_sports_achievement BOOLEAN NOT NULL DEFAULT FALSE,
    has_diploma BOOLEAN NOT NULL DEFAULT FALSE,
    is_international_student BOOLEAN NOT NULL DEFAULT FALSE,
    group_admission BOOLEAN NOT NULL DEFAULT FALSE,
    documents_submitted TEXT[] NOT NULL DEFAULT '{}',
    application_status TEXT NOT NULL DEFAULT 'pending',
    submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func main() {
	dataDir := flag.String("data", "data", "directory holding the seed files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logr.Sugar().Fatalw("failed to create schema", "error", err)
	}

	seedPrograms(ctx, db, filepath.Join(*dataDir, "programs.json"), logr)
	seedDepartments(ctx, db, filepath.Join(*dataDir, "departments.json"), logr)
	seedWaivers(ctx, db, filepath.Join(*dataDir, "waivers.json"), logr)
	seedFAQs(ctx, db, filepath.Join(*dataDir, "faq.csv"), logr)

	invalidateCatalogCache(ctx, cfg, logr)

	logr.Info("seed complete")
}

func seedPrograms(ctx context.Context, db *sqlx.DB, path string, logr *zap.Logger) {
	var programs []models.Program
	if err := decodeJSONFile(path, &programs); err != nil {
		logr.Warn("skipping programs", zap.String("path", path), zap.Error(err))
		return
	}
	const query = `INSERT INTO programs (
        id, name, code, department_code, total_cost, credits, duration, description,
        eligibility, career_prospects, admission_deadline, program_type, accreditation
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    ON CONFLICT (id) DO NOTHING`
	inserted := 0
	for _, p := range programs {
		if p.Code == "" || p.Name == "" {
			logr.Warn("skipping malformed program", zap.Int("id", p.ID))
			continue
		}
		if _, err := db.ExecContext(ctx, query,
			p.ID, p.Name, p.Code, p.DepartmentCode, p.TotalCost, p.Credits, p.Duration,
			p.Description, p.Eligibility, p.CareerProspects, p.AdmissionDeadline,
			p.ProgramType, p.Accreditation,
		); err != nil {
			logr.Warn("failed to insert program", zap.String("code", p.Code), zap.Error(err))
			continue
		}
		inserted++
	}
	logr.Info("seeded programs", zap.Int("count", inserted))
}

func seedDepartments(ctx context.Context, db *sqlx.DB, path string, logr *zap.Logger) {
	var departments []models.Department
	if err := decodeJSONFile(path, &departments); err != nil {
		logr.Warn("skipping departments", zap.String("path", path), zap.Error(err))
		return
	}
	const query = `INSERT INTO departments (
        id, name, code, contact, head, description, programs, faculty, location,
        website, established_year, student_capacity, accreditation
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    ON CONFLICT (id) DO NOTHING`
	inserted := 0
	for _, d := range departments {
		if d.Code == "" || d.Name == "" {
			logr.Warn("skipping malformed department", zap.Int("id", d.ID))
			continue
		}
		if _, err := db.ExecContext(ctx, query,
			d.ID, d.Name, d.Code, d.Contact, d.Head, d.Description, d.Programs,
			d.Faculty, d.Location, d.Website, d.EstablishedYear, d.StudentCapacity,
			d.Accreditation,
		); err != nil {
			logr.Warn("failed to insert department", zap.String("code", d.Code), zap.Error(err))
			continue
		}
		inserted++
	}
	logr.Info("seeded departments", zap.Int("count", inserted))
}

// seedWaivers tolerates waiver_rate given as either a single string or a list,
// matching the historical data files.
func seedWaivers(ctx context.Context, db *sqlx.DB, path string, logr *zap.Logger) {
	type waiverRecord struct {
		ID                  string          `json:"id"`
		Name                string          `json:"name"`
		Category            string          `json:"category"`
		Description         string          `json:"description"`
		WaiverRate          json.RawMessage `json:"waiver_rate"`
		EligibilityCriteria []string        `json:"eligibility_criteria"`
		RequiredDocuments   []string        `json:"required_documents"`
		Deadline            string          `json:"deadline"`
		ApplicablePrograms  []string        `json:"applicable_programs"`
		SGPARequired        float64         `json:"sgpa_required"`
	}
	var records []waiverRecord
	if err := decodeJSONFile(path, &records); err != nil {
		logr.Warn("skipping waivers", zap.String("path", path), zap.Error(err))
		return
	}
	const query = `INSERT INTO waivers (
        id, name, category, description, waiver_rate, eligibility_criteria,
        required_documents, deadline, applicable_programs, sgpa_required
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    ON CONFLICT (id) DO NOTHING`
	inserted := 0
	for _, w := range records {
		if w.ID == "" || w.Name == "" {
			logr.Warn("skipping malformed waiver", zap.String("id", w.ID))
			continue
		}
		rates, err := decodeRateList(w.WaiverRate)
		if err != nil {
			logr.Warn("skipping waiver with malformed rate", zap.String("id", w.ID), zap.Error(err))
			continue
		}
		if _, err := db.ExecContext(ctx, query,
			w.ID, w.Name, w.Category, w.Description, pq.StringArray(rates),
			pq.StringArray(w.EligibilityCriteria), pq.StringArray(w.RequiredDocuments),
			w.Deadline, pq.StringArray(w.ApplicablePrograms), w.SGPARequired,
		); err != nil {
			logr.Warn("failed to insert waiver", zap.String("id", w.ID), zap.Error(err))
			continue
		}
		inserted++
	}
	logr.Info("seeded waivers", zap.Int("count", inserted))
}

func seedFAQs(ctx context.Context, db *sqlx.DB, path string, logr *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logr.Warn("skipping faqs", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		logr.Warn("skipping faqs, unreadable header", zap.String("path", path), zap.Error(err))
		return
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"id", "question", "answer"} {
		if _, ok := columns[required]; !ok {
			logr.Warn("skipping faqs, missing column", zap.String("column", required))
			return
		}
	}

	const query = `INSERT INTO faqs (id, question, answer, keywords, category, source_link)
        VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`
	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}
	inserted := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logr.Warn("skipping malformed faq row", zap.Int("line", line), zap.Error(err))
			continue
		}
		if field(row, "question") == "" || field(row, "answer") == "" {
			logr.Warn("skipping empty faq row", zap.Int("line", line))
			continue
		}
		if _, err := db.ExecContext(ctx, query,
			field(row, "id"), field(row, "question"), field(row, "answer"),
			field(row, "keywords"), field(row, "category"), field(row, "source_link"),
		); err != nil {
			logr.Warn("failed to insert faq", zap.String("id", field(row, "id")), zap.Error(err))
			continue
		}
		inserted++
	}
	logr.Info("seeded faqs", zap.Int("count", inserted))
}

// invalidateCatalogCache drops cached catalog snapshots so fresh seeds are
// visible immediately. Cache unavailability is not fatal to seeding.
func invalidateCatalogCache(ctx context.Context, cfg *config.Config, logr *zap.Logger) {
	if !cfg.Catalog.CacheEnabled {
		return
	}
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, cache not invalidated", zap.Error(err))
		return
	}
	repo := repository.NewCacheRepository(client, logr)
	defer repo.Close()
	if err := repo.DeleteByPattern(ctx, "catalog:*"); err != nil {
		logr.Warn("failed to invalidate catalog cache", zap.Error(err))
		return
	}
	logr.Info("catalog cache invalidated")
}

func decodeJSONFile(path string, v any) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// decodeRateList accepts "20%" or ["20%", "35%"].
func decodeRateList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}
	var numeric float64
	if err := json.Unmarshal(raw, &numeric); err == nil {
		return []string{strconv.FormatFloat(numeric, 'f', -1, 64) + "%"}, nil
	}
	return nil, fmt.Errorf("unsupported waiver_rate shape: %s", string(raw))
}
