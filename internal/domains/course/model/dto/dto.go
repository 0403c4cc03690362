package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/antoniomp17/WebPsicolog-a/internal/domains/course/model"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	gModel "github.com/antoniomp17/WebPsicolog-a/shared/model"
	"github.com/antoniomp17/WebPsicolog-a/shared/timezone"
)

type CreateCourseRequest struct {
	Title       string                `json:"title"       validate:"required,max=150"`
	Slug        string                `json:"slug"        validate:"omitempty,max=150"`
	Description string                `json:"description" validate:"omitempty,max=5000"`
	PriceCents  int64                 `json:"price_cents" validate:"required,min=0"`
	Duration    string                `json:"duration"    validate:"omitempty,max=50"`
	Level       string                `json:"level"       validate:"omitempty,max=50"`
	Featured    *bool                 `json:"featured"    validate:"omitempty"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateCourseRequest) ToModel(user string, imageURL string) model.Course {
	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Title)
	}

	return model.Course{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        slug,
		Description: c.Description,
		PriceCents:  c.PriceCents,
		Image:       imageURL,
		Duration:    c.Duration,
		Level:       c.Level,
		Featured:    featured,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCourseRequest struct {
	Title       string                `db:"title"       json:"title"       validate:"omitempty,max=150"`
	Slug        string                `db:"slug"        json:"slug"        validate:"omitempty,max=150"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=5000"`
	PriceCents  *int64                `db:"price_cents" json:"price_cents" validate:"omitempty,min=0"`
	Duration    string                `db:"duration"    json:"duration"    validate:"omitempty,max=50"`
	Level       string                `db:"level"       json:"level"       validate:"omitempty,max=50"`
	Featured    *bool                 `db:"featured"    json:"featured"    validate:"omitempty"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
}

type CourseResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Image       string `json:"image"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Featured    bool   `json:"featured"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *CourseResponse) FromModel(model model.Course) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Description = model.Description
	r.PriceCents = model.PriceCents
	r.Image = model.Image
	r.Duration = model.Duration
	r.Level = model.Level
	r.Featured = model.Featured
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCoursesResponse struct {
	Courses   []CourseResponse `json:"courses"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCoursesResponse) FromModels(models []model.Course, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Courses = make([]CourseResponse, len(models))
	for i, mod := range models {
		r.Courses[i].FromModel(mod)
	}
}
