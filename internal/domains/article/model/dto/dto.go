package dto

import (
	"github.com/google/uuid"

	"github.com/antoniomp17/WebPsicolog-a/internal/domains/article/model"
	"github.com/antoniomp17/WebPsicolog-a/shared"
	gDto "github.com/antoniomp17/WebPsicolog-a/shared/dto"
	gModel "github.com/antoniomp17/WebPsicolog-a/shared/model"
	"github.com/antoniomp17/WebPsicolog-a/shared/timezone"
)

type CreateArticleRequest struct {
	Title       string `json:"title"        validate:"required,max=200"`
	Slug        string `json:"slug"         validate:"omitempty,max=200"`
	Excerpt     string `json:"excerpt"      validate:"omitempty,max=500"`
	Content     string `json:"content"      validate:"required"`
	Image       string `json:"image"        validate:"omitempty,url,max=500"`
	Author      string `json:"author"       validate:"required,max=100"`
	Published   *bool  `json:"published"    validate:"omitempty"`
	PublishedAt string `json:"published_at" validate:"omitempty,max=50"`
}

func (c *CreateArticleRequest) ToModel(user string) model.Article {
	published := true
	if c.Published != nil {
		published = *c.Published
	}

	slug := c.Slug
	if slug == "" {
		slug = shared.Slugify(c.Title)
	}

	publishedAt := c.PublishedAt
	if publishedAt == "" {
		publishedAt = timezone.Now().Format("2006-01-02")
	}

	return model.Article{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        slug,
		Excerpt:     c.Excerpt,
		Content:     c.Content,
		Image:       c.Image,
		Author:      c.Author,
		Published:   published,
		PublishedAt: publishedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateArticleRequest struct {
	Title       string `db:"title"        json:"title"        validate:"omitempty,max=200"`
	Slug        string `db:"slug"         json:"slug"         validate:"omitempty,max=200"`
	Excerpt     string `db:"excerpt"      json:"excerpt"      validate:"omitempty,max=500"`
	Content     string `db:"content"      json:"content"      validate:"omitempty"`
	Image       string `db:"image"        json:"image"        validate:"omitempty,url,max=500"`
	Author      string `db:"author"       json:"author"       validate:"omitempty,max=100"`
	Published   *bool  `db:"published"    json:"published"    validate:"omitempty"`
	PublishedAt string `db:"published_at" json:"published_at" validate:"omitempty,max=50"`
}

type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Image       string `json:"image"`
	Author      string `json:"author"`
	Published   bool   `json:"published"`
	PublishedAt string `json:"published_at"`
	gDto.Metadata
}

func (r *ArticleResponse) FromModel(model model.Article) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.Image = model.Image
	r.Author = model.Author
	r.Published = model.Published
	r.PublishedAt = model.PublishedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetArticlesResponse struct {
	Articles  []ArticleResponse `json:"articles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetArticlesResponse) FromModels(models []model.Article, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Articles = make([]ArticleResponse, len(models))
	for i, mod := range models {
		r.Articles[i].FromModel(mod)
	}
}
