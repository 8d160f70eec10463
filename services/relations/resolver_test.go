package relations

import (
	"testing"

	"elousia-backend/models"
	"elousia-backend/testutils"

	"github.com/stretchr/testify/assert"
)

func TestGenreNames_BatchLookup(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "name" FROM "movie_categories" WHERE id IN \(\$1,\$2\)`).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(mock.NewRows([]string{"name"}).AddRow("Action").AddRow("Drama"))

	resolver := New(gormDB)
	names, err := resolver.GenreNames(models.IDList{3, 7})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Action", "Drama"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreNames_EmptyInputIssuesNoQuery(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	resolver := New(gormDB)
	names, err := resolver.GenreNames(models.IDList{})

	assert.NoError(t, err)
	assert.Equal(t, []string{}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreNames_UnknownIdsAreDropped(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "name" FROM "movie_categories" WHERE id IN \(\$1,\$2\)`).
		WithArgs(int64(3), int64(999)).
		WillReturnRows(mock.NewRows([]string{"name"}).AddRow("Action"))

	resolver := New(gormDB)
	names, err := resolver.GenreNames(models.IDList{3, 999})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Action"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLanguageName_ZeroIdIssuesNoQuery(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	resolver := New(gormDB)
	name, err := resolver.LanguageName(0)

	assert.NoError(t, err)
	assert.Nil(t, name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLanguageName_DanglingIdIsNil(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "name" FROM "languages" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"name"}))

	resolver := New(gormDB)
	name, err := resolver.LanguageName(42)

	assert.NoError(t, err)
	assert.Nil(t, name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryName_Found(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "name" FROM "movie_categories" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"name"}).AddRow("Sports"))

	resolver := New(gormDB)
	name, err := resolver.CategoryName(5)

	assert.NoError(t, err)
	if assert.NotNil(t, name) {
		assert.Equal(t, "Sports", *name)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelatedMovies_GenreContainmentQuery(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "movies" WHERE status = \$1 AND id <> \$2 AND \(genres @> \$3 OR genres @> \$4\) ORDER BY id DESC LIMIT \$5`).
		WithArgs(1, int64(10), `["3"]`, `["7"]`, 10).
		WillReturnRows(mock.NewRows([]string{"id", "name", "slug", "poster"}).
			AddRow(9, "Other movie", "other-movie", "p.jpg"))

	resolver := New(gormDB)
	related, err := resolver.RelatedMovies(10, models.IDList{3, 7}, 10)

	assert.NoError(t, err)
	assert.Len(t, related, 1)
	assert.Equal(t, int64(9), related[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelatedMovies_NoGenresIssuesNoQuery(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	resolver := New(gormDB)
	related, err := resolver.RelatedMovies(10, models.IDList{}, 10)

	assert.NoError(t, err)
	assert.Empty(t, related)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelatedEvents_ZeroCategoryIssuesNoQuery(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	resolver := New(gormDB)
	related, err := resolver.RelatedEvents(4, 0, 10)

	assert.NoError(t, err)
	assert.Empty(t, related)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelatedRadios_ExcludesCurrent(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "radios" WHERE status = \$1 AND category_id = \$2 AND id <> \$3 ORDER BY id DESC LIMIT \$4`).
		WithArgs("active", int64(2), int64(4), 10).
		WillReturnRows(mock.NewRows([]string{"id", "name"}).
			AddRow(6, "Jazz FM").
			AddRow(5, "Rock FM"))

	resolver := New(gormDB)
	related, err := resolver.RelatedRadios(4, 2, 10)

	assert.NoError(t, err)
	assert.Len(t, related, 2)
	assert.Equal(t, "Jazz FM", related[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
