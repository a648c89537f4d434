package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/DevFolio/go-client-referral/models"
	"github.com/DevFolio/go-client-referral/request"
	"gorm.io/gorm"
)

type projectService struct {
	DB *gorm.DB
}

func NewProjectService(db *gorm.DB) *projectService {
	return &projectService{DB: db}
}

func (s *projectService) CreateProject(req request.CreateProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, errors.New("project title is required")
	}
	if req.Slug == "" {
		return nil, errors.New("project slug is required")
	}

	var count int64
	if err := s.DB.Model(&models.Project{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("project slug %s already exists", req.Slug)
	}

	project := &models.Project{
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
		CoverURL:    req.CoverURL,
		LiveURL:     req.LiveURL,
		RepoURL:     req.RepoURL,
		Published:   req.Published,
		SortOrder:   req.SortOrder,
	}

	if err := s.DB.Create(project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *projectService) GetProjects(req request.GetProjectsRequest) ([]models.Project, int64, error) {
	var projects []models.Project
	var count int64

	query := s.DB.Model(&models.Project{})
	query = request.ApplyGetProjectsRequest(req, query)

	countQuery := query
	if err := countQuery.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch projects: %w", err)
	}

	return projects, count, nil
}

func (s *projectService) UpdateProject(id uint, req request.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch project %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil && *req.Slug != project.Slug {
		var count int64
		if err := s.DB.Model(&models.Project{}).Where("slug = ? AND id <> ?", *req.Slug, id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("project slug %s already exists", *req.Slug)
		}
		updates["slug"] = *req.Slug
	}
	if req.Summary != nil {
		updates["summary"] = *req.Summary
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.CoverURL != nil {
		updates["cover_url"] = *req.CoverURL
	}
	if req.LiveURL != nil {
		updates["live_url"] = *req.LiveURL
	}
	if req.RepoURL != nil {
		updates["repo_url"] = *req.RepoURL
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&project).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}

	return &project, nil
}

func (s *projectService) DeleteProject(id uint) error {
	result := s.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project %d not found", id)
	}
	return nil
}
