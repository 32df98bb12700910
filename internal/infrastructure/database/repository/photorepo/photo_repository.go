package photorepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"renova-server/internal/domain/photo"
	"renova-server/internal/infrastructure/database/dbschema"
)

type PhotoGormRepository struct {
	db *gorm.DB
}

var _ photo.Repository = (*PhotoGormRepository)(nil)

func NewPhotoGormRepository(db *gorm.DB) photo.Repository {
	return &PhotoGormRepository{db: db}
}

func (repo *PhotoGormRepository) Create(ctx context.Context, p *photo.Photo) (*photo.Photo, error) {
	entity := dbschema.NewSchemaPhoto(p)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return entity.EtoD(), nil
}

func (repo *PhotoGormRepository) List(ctx context.Context) ([]*photo.Photo, error) {
	var entities []dbschema.Photo
	if err := repo.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	photos := make([]*photo.Photo, 0, len(entities))
	for i := range entities {
		photos = append(photos, entities[i].EtoD())
	}
	return photos, nil
}

func (repo *PhotoGormRepository) FindByID(ctx context.Context, id uint) (*photo.Photo, error) {
	var entity dbschema.Photo
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find photo by id: %w", err)
	}
	return entity.EtoD(), nil
}

func (repo *PhotoGormRepository) Update(ctx context.Context, p *photo.Photo) (*photo.Photo, error) {
	entity := dbschema.NewSchemaPhoto(p)
	if err := repo.db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, fmt.Errorf("update photo: %w", err)
	}
	return entity.EtoD(), nil
}

func (repo *PhotoGormRepository) Delete(ctx context.Context, id uint) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbschema.Photo{}).
		Error
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
