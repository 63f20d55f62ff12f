package gorm

import (
	"gorm.io/gorm"

	"github.com/k3horizon/horizon-api/pkg/model"
	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// Ensure GalleriesStore implements store.GalleriesStore
var _ store.GalleriesStore = (*GalleriesStore)(nil)

const galleryColumns = "id, title, description, image_url, thumbnail, category_id, created_at, updated_at"

// GalleriesStore implements store.GalleriesStore using GORM
type GalleriesStore struct {
	db *gorm.DB
}

// NewGalleriesStore creates a new GalleriesStore
func NewGalleriesStore(db *gorm.DB) *GalleriesStore {
	return &GalleriesStore{db: db}
}

func (s *GalleriesStore) ListGalleries() ([]model.Gallery, error) {
	var galleries []model.Gallery
	result := s.db.Raw(`
		SELECT ` + galleryColumns + `
		FROM galleries
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&galleries)
	if result.Error != nil {
		return nil, result.Error
	}
	return galleries, nil
}

func (s *GalleriesStore) FetchGallery(id int64) (*model.Gallery, error) {
	var gallery model.Gallery
	result := s.db.Raw(`
		SELECT `+galleryColumns+`
		FROM galleries
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&gallery)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &gallery, nil
}

func (s *GalleriesStore) CreateGallery(changes []store.Change) (*model.Gallery, error) {
	id, err := insertReturningID(s.db, "galleries", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchGallery(id)
}

func (s *GalleriesStore) UpdateGallery(id int64, changes []store.Change) (*model.Gallery, error) {
	if err := updateByID(s.db, "galleries", id, changes); err != nil {
		return nil, err
	}
	return s.FetchGallery(id)
}

func (s *GalleriesStore) DeleteGallery(id int64) error {
	return softDeleteByID(s.db, "galleries", id)
}

// Ensure ImageCategoriesStore implements store.ImageCategoriesStore
var _ store.ImageCategoriesStore = (*ImageCategoriesStore)(nil)

const imageCategoryColumns = "id, name, description, created_at, updated_at"

// ImageCategoriesStore implements store.ImageCategoriesStore using GORM
type ImageCategoriesStore struct {
	db *gorm.DB
}

// NewImageCategoriesStore creates a new ImageCategoriesStore
func NewImageCategoriesStore(db *gorm.DB) *ImageCategoriesStore {
	return &ImageCategoriesStore{db: db}
}

func (s *ImageCategoriesStore) ListImageCategories() ([]model.ImageCategory, error) {
	var categories []model.ImageCategory
	result := s.db.Raw(`
		SELECT ` + imageCategoryColumns + `
		FROM image_categories
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *ImageCategoriesStore) FetchImageCategory(id int64) (*model.ImageCategory, error) {
	var category model.ImageCategory
	result := s.db.Raw(`
		SELECT `+imageCategoryColumns+`
		FROM image_categories
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &category, nil
}

func (s *ImageCategoriesStore) CreateImageCategory(changes []store.Change) (*model.ImageCategory, error) {
	id, err := insertReturningID(s.db, "image_categories", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchImageCategory(id)
}

func (s *ImageCategoriesStore) UpdateImageCategory(id int64, changes []store.Change) (*model.ImageCategory, error) {
	if err := updateByID(s.db, "image_categories", id, changes); err != nil {
		return nil, err
	}
	return s.FetchImageCategory(id)
}

func (s *ImageCategoriesStore) DeleteImageCategory(id int64) error {
	return softDeleteByID(s.db, "image_categories", id)
}
