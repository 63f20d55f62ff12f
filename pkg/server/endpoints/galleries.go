package endpoints

import (
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/store"
	storegorm "github.com/k3horizon/horizon-api/pkg/server/store/gorm"
)

// RegisterGalleryEndpoints registers the /galleries CRUD endpoints.
// The image URL is stored verbatim so the proxy can fetch it unchanged.
func RegisterGalleryEndpoints(srv *server.Server) {
	galleries := storegorm.NewGalleriesStore(srv.DB)

	registerResource(srv, resource{
		name: "galleries",
		fields: []fieldSpec{
			{jsonKey: "title", column: "title", required: true, sanitized: true},
			{jsonKey: "description", column: "description", sanitized: true},
			{jsonKey: "image_url", column: "image_url", required: true},
			{jsonKey: "thumbnail", column: "thumbnail"},
			{jsonKey: "category_id", column: "category_id", numeric: true},
		},
		store: resourceStore{
			list: func() (interface{}, error) { return galleries.ListGalleries() },
			fetch: func(id int64) (interface{}, error) {
				return galleries.FetchGallery(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return galleries.CreateGallery(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return galleries.UpdateGallery(id, changes)
			},
			remove: galleries.DeleteGallery,
		},
	})
}

// RegisterImageCategoryEndpoints registers the /imageCategorys CRUD
// endpoints.
func RegisterImageCategoryEndpoints(srv *server.Server) {
	categories := storegorm.NewImageCategoriesStore(srv.DB)

	registerResource(srv, resource{
		name: "imageCategorys",
		fields: []fieldSpec{
			{jsonKey: "name", column: "name", required: true, sanitized: true},
			{jsonKey: "description", column: "description", sanitized: true},
		},
		store: resourceStore{
			list: func() (interface{}, error) { return categories.ListImageCategories() },
			fetch: func(id int64) (interface{}, error) {
				return categories.FetchImageCategory(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return categories.CreateImageCategory(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return categories.UpdateImageCategory(id, changes)
			},
			remove: categories.DeleteImageCategory,
		},
	})
}
