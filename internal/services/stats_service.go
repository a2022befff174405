package services

import (
	"context"

	"taskflow/internal/domain"
	"taskflow/internal/repository/sqlite"
)

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	repo sqlite.Repository
}

// NewStatsService creates a new StatsService instance
func NewStatsService(repo sqlite.Repository) StatsService {
	return &statsServiceImpl{repo: repo}
}

// StatsFor computes per-project task counts by status. With no ids
// given, the target set is the union of every project id that has at
// least one task and every existing project id, so projects without
// tasks report zero counts. Each count is an independent query; this is
// read-only reporting with no cross-count consistency guarantee.
func (s *statsServiceImpl) StatsFor(ctx context.Context, projectIDs []string) (map[string]*ProjectStats, error) {
	ids := projectIDs
	if len(ids) == 0 {
		var err error
		ids, err = s.targetProjectIDs(ctx)
		if err != nil {
			return nil, err
		}
	}

	stats := make(map[string]*ProjectStats, len(ids))
	for _, id := range ids {
		projectStats, err := s.countsForProject(ctx, id)
		if err != nil {
			return nil, err
		}
		stats[id] = projectStats
	}

	return stats, nil
}

// targetProjectIDs unions the ids referenced by tasks with the ids of
// existing projects, task-referenced ids first.
func (s *statsServiceImpl) targetProjectIDs(ctx context.Context) ([]string, error) {
	ids, err := s.repo.DistinctTaskProjectIDs(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		if !seen[project.ID] {
			ids = append(ids, project.ID)
			seen[project.ID] = true
		}
	}

	return ids, nil
}

func (s *statsServiceImpl) countsForProject(ctx context.Context, projectID string) (*ProjectStats, error) {
	total, err := s.repo.CountTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.CountTasksByProjectAndStatus(ctx, projectID, string(domain.StatusCompleted))
	if err != nil {
		return nil, err
	}
	inProgress, err := s.repo.CountTasksByProjectAndStatus(ctx, projectID, string(domain.StatusInProgress))
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountTasksByProjectAndStatus(ctx, projectID, string(domain.StatusPending))
	if err != nil {
		return nil, err
	}

	return &ProjectStats{
		Total:      total,
		Completed:  completed,
		InProgress: inProgress,
		Pending:    pending,
	}, nil
}
