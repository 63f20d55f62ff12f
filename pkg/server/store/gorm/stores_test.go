package gorm

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/k3horizon/horizon-api/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func articleRow(id int64, title string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "slug", "content", "thumbnail", "category_id",
		"author", "published_at", "created_at", "updated_at",
	}).AddRow(id, title, "a-slug", "<p>body</p>", nil, nil, nil, nil, now, now)
}

func TestListArticles(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE deleted_at IS NULL ORDER BY created_at DESC`).
		WillReturnRows(articleRow(1, "First").AddRow(
			int64(2), "Second", "second", "<p>more</p>", nil, nil, nil, nil, time.Now(), time.Now(),
		))

	articles, err := s.ListArticles()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, int64(2), articles[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchArticleMissingIsErrNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "slug", "content", "thumbnail", "category_id",
			"author", "published_at", "created_at", "updated_at",
		}))

	_, err := s.FetchArticle(99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectQuery(`INSERT INTO articles \(title, slug, content, created_at, updated_at\) VALUES \((.+)\) RETURNING id`).
		WithArgs("Hello", "hello", "<p>body</p>").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs(int64(7)).
		WillReturnRows(articleRow(7, "Hello"))

	article, err := s.CreateArticle([]store.Change{
		{Column: "title", Value: "Hello"},
		{Column: "slug", Value: "hello"},
		{Column: "content", Value: "<p>body</p>"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), article.ID)
	assert.Equal(t, "Hello", article.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateArticle(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectExec(`UPDATE articles SET title = (.+), updated_at = NOW\(\) WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs("Renamed", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT (.+) FROM articles WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs(int64(7)).
		WillReturnRows(articleRow(7, "Renamed"))

	article, err := s.UpdateArticle(7, []store.Change{{Column: "title", Value: "Renamed"}})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", article.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateArticleMissingIsErrNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectExec(`UPDATE articles SET title = (.+), updated_at = NOW\(\) WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs("Renamed", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.UpdateArticle(99, []store.Change{{Column: "title", Value: "Renamed"}})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteArticleIsSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectExec(`UPDATE articles SET deleted_at = NOW\(\), updated_at = NOW\(\) WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteArticle(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticleAlreadyDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewArticlesStore(db)

	mock.ExpectExec(`UPDATE articles SET deleted_at = NOW\(\), updated_at = NOW\(\) WHERE id = (.+) AND deleted_at IS NULL`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.DeleteArticle(7), store.ErrNotFound)
}

func TestCreateProposalCategoryDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewProposalCategoriesStore(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := s.CreateProposalCategory("K3 Umum")
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProposalCategory(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewProposalCategoriesStore(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectExec(`INSERT INTO proposal_categories \(name, created_at, updated_at\) VALUES \((.+), NOW\(\), NOW\(\)\)`).
		WithArgs("K3 Umum").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM proposal_categories WHERE name = (.+) AND deleted_at IS NULL`).
		WithArgs("K3 Umum").
		WillReturnRows(sqlmock.NewRows([]string{"name", "created_at", "updated_at"}).
			AddRow("K3 Umum", now, now))

	category, err := s.CreateProposalCategory("K3 Umum")
	require.NoError(t, err)
	assert.Equal(t, "K3 Umum", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
