package gorm

import (
	"gorm.io/gorm"

	"github.com/k3horizon/horizon-api/pkg/model"
	"github.com/k3horizon/horizon-api/pkg/server/store"
)

// Ensure ArticlesStore implements store.ArticlesStore
var _ store.ArticlesStore = (*ArticlesStore)(nil)

const articleColumns = "id, title, slug, content, thumbnail, category_id, author, published_at, created_at, updated_at"

// ArticlesStore implements store.ArticlesStore using GORM
type ArticlesStore struct {
	db *gorm.DB
}

// NewArticlesStore creates a new ArticlesStore
func NewArticlesStore(db *gorm.DB) *ArticlesStore {
	return &ArticlesStore{db: db}
}

func (s *ArticlesStore) ListArticles() ([]model.Article, error) {
	var articles []model.Article
	result := s.db.Raw(`
		SELECT ` + articleColumns + `
		FROM articles
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&articles)
	if result.Error != nil {
		return nil, result.Error
	}
	return articles, nil
}

func (s *ArticlesStore) FetchArticle(id int64) (*model.Article, error) {
	var article model.Article
	result := s.db.Raw(`
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&article)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &article, nil
}

func (s *ArticlesStore) CreateArticle(changes []store.Change) (*model.Article, error) {
	id, err := insertReturningID(s.db, "articles", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchArticle(id)
}

func (s *ArticlesStore) UpdateArticle(id int64, changes []store.Change) (*model.Article, error) {
	if err := updateByID(s.db, "articles", id, changes); err != nil {
		return nil, err
	}
	return s.FetchArticle(id)
}

func (s *ArticlesStore) DeleteArticle(id int64) error {
	return softDeleteByID(s.db, "articles", id)
}

// Ensure ArticleCategoriesStore implements store.ArticleCategoriesStore
var _ store.ArticleCategoriesStore = (*ArticleCategoriesStore)(nil)

const articleCategoryColumns = "id, name, description, created_at, updated_at"

// ArticleCategoriesStore implements store.ArticleCategoriesStore using GORM
type ArticleCategoriesStore struct {
	db *gorm.DB
}

// NewArticleCategoriesStore creates a new ArticleCategoriesStore
func NewArticleCategoriesStore(db *gorm.DB) *ArticleCategoriesStore {
	return &ArticleCategoriesStore{db: db}
}

func (s *ArticleCategoriesStore) ListArticleCategories() ([]model.ArticleCategory, error) {
	var categories []model.ArticleCategory
	result := s.db.Raw(`
		SELECT ` + articleCategoryColumns + `
		FROM article_categories
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`).Scan(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *ArticleCategoriesStore) FetchArticleCategory(id int64) (*model.ArticleCategory, error) {
	var category model.ArticleCategory
	result := s.db.Raw(`
		SELECT `+articleCategoryColumns+`
		FROM article_categories
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

func (s *ArticleCategoriesStore) CreateArticleCategory(changes []store.Change) (*model.ArticleCategory, error) {
	id, err := insertReturningID(s.db, "article_categories", changes)
	if err != nil {
		return nil, err
	}
	return s.FetchArticleCategory(id)
}

func (s *ArticleCategoriesStore) UpdateArticleCategory(id int64, changes []store.Change) (*model.ArticleCategory, error) {
	if err := updateByID(s.db, "article_categories", id, changes); err != nil {
		return nil, err
	}
	return s.FetchArticleCategory(id)
}

func (s *ArticleCategoriesStore) DeleteArticleCategory(id int64) error {
	return softDeleteByID(s.db, "article_categories", id)
}
