package model

import "github.com/antoniomp17/WebPsicolog-a/shared/model"

const (
	TableName  = "courses"
	EntityName = "course"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldPriceCents  = "price_cents"
	FieldImage       = "image"
	FieldDuration    = "duration"
	FieldLevel       = "level"
	FieldFeatured    = "featured"
	FieldActive      = "active"
)

const (
	LevelBeginner     = "principiante"
	LevelIntermediate = "intermedio"
	LevelAdvanced     = "avanzado"
	LevelAllLevels    = "todos los niveles"
)

// Course price is stored in euro cents to keep checkout amounts exact.
type Course struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	PriceCents  int64  `db:"price_cents"`
	Image       string `db:"image"`
	Duration    string `db:"duration"`
	Level       string `db:"level"`
	Featured    bool   `db:"featured"`
	Active      bool   `db:"active"`
	model.Metadata
}
