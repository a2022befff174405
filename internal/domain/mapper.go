package domain

import (
	"taskflow/internal/repository/sqlite"
)

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(domainProject Project) sqlite.Project {
	return sqlite.Project{
		ID:          domainProject.ID,
		Name:        domainProject.Name,
		Description: domainProject.Description,
		Color:       domainProject.Color,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:          dbProject.ID,
		Name:        dbProject.Name,
		Description: dbProject.Description,
		Color:       dbProject.Color,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []*Project {
	domainProjects := make([]*Project, len(dbProjects))
	for i, p := range dbProjects {
		domainProject := m.FromDatabase(*p)
		domainProjects[i] = &domainProject
	}
	return domainProjects
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		ProjectID:   domainTask.ProjectID,
		Name:        domainTask.Name,
		Description: domainTask.Description,
		Priority:    domainTask.Priority,
		DueDate:     domainTask.DueDate,
		Assignee:    domainTask.Assignee,
		Status:      string(domainTask.Status),
		CreatedAt:   domainTask.CreatedAt,
		UpdatedAt:   domainTask.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		ProjectID:   dbTask.ProjectID,
		Name:        dbTask.Name,
		Description: dbTask.Description,
		Priority:    dbTask.Priority,
		DueDate:     dbTask.DueDate,
		Assignee:    dbTask.Assignee,
		Status:      TaskStatus(dbTask.Status),
		CreatedAt:   dbTask.CreatedAt,
		UpdatedAt:   dbTask.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, t := range dbTasks {
		domainTask := m.FromDatabase(*t)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// QueryMapper converts domain task queries to database search options.
// Only the exact-match predicates go to the database; date bounds and
// sorting are applied in-process by the task service.
type QueryMapper struct{}

// NewQueryMapper creates a new QueryMapper instance.
func NewQueryMapper() *QueryMapper {
	return &QueryMapper{}
}

// ToDatabase converts a domain TaskQuery to database SearchOptions.
func (m *QueryMapper) ToDatabase(q TaskQuery) sqlite.TaskSearchOptions {
	opts := sqlite.TaskSearchOptions{
		ProjectID: q.ProjectID,
		Priority:  q.Priority,
	}
	if q.Status != nil {
		status := string(*q.Status)
		opts.Status = &status
	}
	return opts
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Project *ProjectMapper
	Task    *TaskMapper
	Query   *QueryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Project: NewProjectMapper(),
		Task:    NewTaskMapper(),
		Query:   NewQueryMapper(),
	}
}
