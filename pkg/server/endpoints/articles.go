package endpoints

import (
	"github.com/k3horizon/horizon-api/pkg/sanitize"
	"github.com/k3horizon/horizon-api/pkg/server"
	"github.com/k3horizon/horizon-api/pkg/server/store"
	storegorm "github.com/k3horizon/horizon-api/pkg/server/store/gorm"
)

// RegisterArticleEndpoints registers the /articles CRUD endpoints.
// Content is rich HTML stored verbatim; title, slug and author are
// sanitized plain text.
func RegisterArticleEndpoints(srv *server.Server) {
	articles := storegorm.NewArticlesStore(srv.DB)

	registerResource(srv, resource{
		name: "articles",
		fields: []fieldSpec{
			{jsonKey: "title", column: "title", required: true, sanitized: true},
			{jsonKey: "slug", column: "slug", sanitized: true},
			{jsonKey: "content", column: "content", required: true},
			{jsonKey: "thumbnail", column: "thumbnail"},
			{jsonKey: "category_id", column: "category_id", numeric: true},
			{jsonKey: "author", column: "author", sanitized: true},
			{jsonKey: "published_at", column: "published_at"},
		},
		beforeWrite: func(creating bool, body map[string]interface{}) {
			if !creating {
				return
			}
			if _, ok := body["slug"]; ok {
				return
			}
			if title, ok := body["title"].(string); ok {
				body["slug"] = sanitize.Slug(sanitize.Clean(title))
			}
		},
		store: resourceStore{
			list: func() (interface{}, error) { return articles.ListArticles() },
			fetch: func(id int64) (interface{}, error) {
				return articles.FetchArticle(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return articles.CreateArticle(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return articles.UpdateArticle(id, changes)
			},
			remove: articles.DeleteArticle,
		},
	})
}

// RegisterArticleCategoryEndpoints registers the /articleCategorys CRUD
// endpoints.
func RegisterArticleCategoryEndpoints(srv *server.Server) {
	categories := storegorm.NewArticleCategoriesStore(srv.DB)

	registerResource(srv, resource{
		name: "articleCategorys",
		fields: []fieldSpec{
			{jsonKey: "name", column: "name", required: true, sanitized: true},
			{jsonKey: "description", column: "description", sanitized: true},
		},
		store: resourceStore{
			list: func() (interface{}, error) { return categories.ListArticleCategories() },
			fetch: func(id int64) (interface{}, error) {
				return categories.FetchArticleCategory(id)
			},
			create: func(changes []store.Change) (interface{}, error) {
				return categories.CreateArticleCategory(changes)
			},
			update: func(id int64, changes []store.Change) (interface{}, error) {
				return categories.UpdateArticleCategory(id, changes)
			},
			remove: categories.DeleteArticleCategory,
		},
	})
}
