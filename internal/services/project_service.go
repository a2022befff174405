package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/repository/sqlite"
	"taskflow/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	projectValidator *validation.ProjectValidator
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(repo sqlite.Repository) ProjectService {
	return &projectServiceImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		projectValidator: validation.NewProjectValidator(),
	}
}

// ListProjects returns all projects ordered by name ascending
func (p *projectServiceImpl) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	dbProjects, err := p.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return p.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// GetProject retrieves a project by its ID
func (p *projectServiceImpl) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if err := p.projectValidator.ValidateProjectID(id); err != nil {
		return nil, errors.NewValidationError("invalid project ID", err)
	}

	dbProject, err := p.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	domainProject := p.mapper.Project.FromDatabase(*dbProject)
	return &domainProject, nil
}

// CreateProject persists a new project, generating an id when none is
// supplied and defaulting the color when absent or empty.
func (p *projectServiceImpl) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if err := p.projectValidator.ValidateProjectForCreation(input.Name); err != nil {
		return nil, errors.NewValidationError("invalid project", err)
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = domain.DefaultProjectColor
	}

	dbProject := &sqlite.Project{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Color:       color,
	}

	if err := p.repo.CreateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	domainProject := p.mapper.Project.FromDatabase(*dbProject)
	return &domainProject, nil
}

// UpdateProject applies only the fields present in the patch, leaving
// the rest untouched. Returns NotFound when the id does not exist.
func (p *projectServiceImpl) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error) {
	if err := p.projectValidator.ValidateProjectID(id); err != nil {
		return nil, errors.NewValidationError("invalid project ID", err)
	}

	dbProject, err := p.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err := p.projectValidator.ValidateProjectForCreation(*patch.Name); err != nil {
			return nil, errors.NewValidationError("invalid project name", err)
		}
		dbProject.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		dbProject.Description = *patch.Description
	}
	if patch.Color != nil {
		color := strings.TrimSpace(*patch.Color)
		if color == "" {
			color = domain.DefaultProjectColor
		}
		dbProject.Color = color
	}

	if err := p.repo.UpdateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	domainProject := p.mapper.Project.FromDatabase(*dbProject)
	return &domainProject, nil
}

// DeleteProject removes the project by id and reports whether it
// existed. Tasks keep their projectId reference; there is no cascade.
func (p *projectServiceImpl) DeleteProject(ctx context.Context, id string) (bool, error) {
	if err := p.projectValidator.ValidateProjectID(id); err != nil {
		return false, errors.NewValidationError("invalid project ID", err)
	}

	err := p.repo.DeleteProject(ctx, id)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
