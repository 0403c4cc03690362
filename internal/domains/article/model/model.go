package model

import "github.com/antoniomp17/WebPsicolog-a/shared/model"

const (
	TableName  = "articles"
	EntityName = "article"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldExcerpt     = "excerpt"
	FieldContent     = "content"
	FieldImage       = "image"
	FieldAuthor      = "author"
	FieldPublished   = "published"
	FieldPublishedAt = "published_at"
)

type Article struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Slug        string `db:"slug"`
	Excerpt     string `db:"excerpt"`
	Content     string `db:"content"`
	Image       string `db:"image"`
	Author      string `db:"author"`
	Published   bool   `db:"published"`
	PublishedAt string `db:"published_at"`
	model.Metadata
}
