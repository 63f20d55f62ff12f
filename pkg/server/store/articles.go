package store

import "github.com/k3horizon/horizon-api/pkg/model"

// ArticlesStore abstracts article storage operations.
type ArticlesStore interface {
	// ListArticles returns all live articles, newest first.
	ListArticles() ([]model.Article, error)

	// FetchArticle retrieves a single live article by id.
	FetchArticle(id int64) (*model.Article, error)

	// CreateArticle inserts a new article and returns the stored row.
	CreateArticle(changes []Change) (*model.Article, error)

	// UpdateArticle applies the changes to a live article and returns
	// the stored row.
	UpdateArticle(id int64, changes []Change) (*model.Article, error)

	// DeleteArticle soft-deletes a live article.
	DeleteArticle(id int64) error
}

// ArticleCategoriesStore abstracts article category storage operations.
type ArticleCategoriesStore interface {
	ListArticleCategories() ([]model.ArticleCategory, error)
	FetchArticleCategory(id int64) (*model.ArticleCategory, error)
	CreateArticleCategory(changes []Change) (*model.ArticleCategory, error)
	UpdateArticleCategory(id int64, changes []Change) (*model.ArticleCategory, error)
	DeleteArticleCategory(id int64) error
}
