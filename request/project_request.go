package request

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Title       string         `json:"title" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	Summary     *string        `json:"summary"`
	Description *string        `json:"description"`
	Tags        datatypes.JSON `json:"tags"`
	CoverURL    *string        `json:"coverURL"`
	LiveURL     *string        `json:"liveURL"`
	RepoURL     *string        `json:"repoURL"`
	Published   bool           `json:"published"`
	SortOrder   int            `json:"sortOrder"`
}

type UpdateProjectRequest struct {
	Title       *string        `json:"title"`
	Slug        *string        `json:"slug"`
	Summary     *string        `json:"summary"`
	Description *string        `json:"description"`
	Tags        datatypes.JSON `json:"tags"`
	CoverURL    *string        `json:"coverURL"`
	LiveURL     *string        `json:"liveURL"`
	RepoURL     *string        `json:"repoURL"`
	Published   *bool          `json:"published"`
	SortOrder   *int           `json:"sortOrder"`
}

type GetProjectsRequest struct {
	ID                   *uint                `form:"id"`
	Slug                 *string              `form:"slug"`
	Published            *bool                `form:"published"`
	Search               *string              `form:"search"` // matches title or summary
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetProjectsRequest(req GetProjectsRequest, query *gorm.DB) *gorm.DB {
	if req.ID != nil {
		query = query.Where("projects.id = ?", *req.ID)
	}
	if req.Slug != nil {
		query = query.Where("projects.slug = ?", *req.Slug)
	}
	if req.Published != nil {
		query = query.Where("projects.published = ?", *req.Published)
	}
	if req.Search != nil && *req.Search != "" {
		pattern := "%" + *req.Search + "%"
		query = query.Where("projects.title LIKE ? OR projects.summary LIKE ?", pattern, pattern)
	}
	return query
}
