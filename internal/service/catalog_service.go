package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

const (
	cacheKeyPrograms    = "catalog:programs"
	cacheKeyDepartments = "catalog:departments"
)

type programSource interface {
	List(ctx context.Context) ([]models.Program, error)
	FindByCode(ctx context.Context, code string) (*models.Program, error)
}

type departmentCatalogSource interface {
	List(ctx context.Context) ([]models.Department, error)
}

// CatalogService serves the read-only program and department catalog, with
// optional Redis-backed response caching. The catalog is immutable between
// seed runs, so cached entries only go stale when the seeder reloads data and
// invalidates the catalog keys.
type CatalogService struct {
	programs    programSource
	departments departmentCatalogSource
	cache       *CacheService
	logger      *zap.Logger
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(programs programSource, departments departmentCatalogSource, cache *CacheService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{programs: programs, departments: departments, cache: cache, logger: logger}
}

// Programs returns the full program catalog.
func (s *CatalogService) Programs(ctx context.Context) ([]models.Program, error) {
	var cached []models.Program
	if hit, err := s.cache.Get(ctx, cacheKeyPrograms, &cached); err == nil && hit {
		return cached, nil
	}

	programs, err := s.programs.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to list programs")
	}
	if err := s.cache.Set(ctx, cacheKeyPrograms, programs, 0); err != nil {
		s.logger.Debug("program cache write skipped", zap.Error(err))
	}
	return programs, nil
}

// Program returns one program by code.
func (s *CatalogService) Program(ctx context.Context, code string) (*models.Program, error) {
	program, err := s.programs.FindByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "program not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load program")
	}
	return program, nil
}

// Departments returns the full department catalog.
func (s *CatalogService) Departments(ctx context.Context) ([]models.Department, error) {
	var cached []models.Department
	if hit, err := s.cache.Get(ctx, cacheKeyDepartments, &cached); err == nil && hit {
		return cached, nil
	}

	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to list departments")
	}
	if err := s.cache.Set(ctx, cacheKeyDepartments, departments, 0); err != nil {
		s.logger.Debug("department cache write skipped", zap.Error(err))
	}
	return departments, nil
}
