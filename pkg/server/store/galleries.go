package store

import "github.com/k3horizon/horizon-api/pkg/model"

// GalleriesStore abstracts gallery storage operations.
type GalleriesStore interface {
	ListGalleries() ([]model.Gallery, error)
	FetchGallery(id int64) (*model.Gallery, error)
	CreateGallery(changes []Change) (*model.Gallery, error)
	UpdateGallery(id int64, changes []Change) (*model.Gallery, error)
	DeleteGallery(id int64) error
}

// ImageCategoriesStore abstracts image category storage operations.
type ImageCategoriesStore interface {
	ListImageCategories() ([]model.ImageCategory, error)
	FetchImageCategory(id int64) (*model.ImageCategory, error)
	CreateImageCategory(changes []Change) (*model.ImageCategory, error)
	UpdateImageCategory(id int64, changes []Change) (*model.ImageCategory, error)
	DeleteImageCategory(id int64) error
}
