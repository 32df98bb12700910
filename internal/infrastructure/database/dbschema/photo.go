package dbschema

import (
	"renova-server/internal/domain/photo"
	"renova-server/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Photo{})
}

// Photo represents the persisted gallery photo schema.
type Photo struct {
	BaseModel
	Photo       string `gorm:"type:varchar(300);not null"`
	Title       string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(300)"`
	Category    string `gorm:"type:varchar(50);not null"`
}

func (Photo) TableName() string {
	return "photos"
}

// NewSchemaPhoto converts a domain photo into a schema instance.
func NewSchemaPhoto(p *photo.Photo) *Photo {
	if p == nil {
		return nil
	}

	return &Photo{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		Photo:       p.URL,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
	}
}

// EtoD converts a schema photo back to the domain representation.
func (p *Photo) EtoD() *photo.Photo {
	if p == nil {
		return nil
	}

	return &photo.Photo{
		ID:          p.ID,
		URL:         p.Photo,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
