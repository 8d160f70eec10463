package catalog

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"elousia-backend/testutils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestDetails_InvalidType(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/details/:type/:id", Details)

	req, _ := http.NewRequest(http.MethodGet, "/details/podcast/1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["status"])
	assert.Equal(t, "Invalid type", respBody["message"])
}

func TestDetails_MovieNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// only the lookup runs, no enrichment queries after a miss
	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.GET("/details/:type/:id", Details)

	req, _ := http.NewRequest(http.MethodGet, "/details/movie/999", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["status"])
	assert.Equal(t, "Movie not found", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetails_MovieWithResolvedNamesAndRelated(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "slug", "genres", "actors", "directors", "language_id", "status", "created_at", "updated_at"}).
			AddRow(10, "The Heist", "the-heist", `["3"]`, `[]`, `[]`, 2, 1, now, now))

	mock.ExpectQuery(`SELECT "name" FROM "languages" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"name"}).AddRow("English"))

	mock.ExpectQuery(`SELECT "name" FROM "movie_categories" WHERE id IN \(\$1\)`).
		WillReturnRows(mock.NewRows([]string{"name"}).AddRow("Action"))

	mock.ExpectQuery(`SELECT (.+) FROM "movies" WHERE status = \$1 AND id <> \$2 AND \(?genres @> \$3\)? ORDER BY id DESC LIMIT \$4`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "slug"}).
			AddRow(9, "Other Heist", "other-heist"))

	r := testutils.SetupTestRouter()
	r.GET("/details/:type/:id", Details)

	req, _ := http.NewRequest(http.MethodGet, "/details/movie/10", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["status"])
	assert.Equal(t, "movie", respBody["type"])

	data := respBody["data"].(map[string]interface{})
	assert.Equal(t, "The Heist", data["name"])
	assert.Equal(t, "English", data["language_name"])
	assert.Equal(t, []interface{}{"Action"}, data["genre_names"])
	assert.Equal(t, []interface{}{}, data["actor_names"])

	related := respBody["related"].([]interface{})
	assert.Len(t, related, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetails_EventResolvesCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "title", "category_id", "language_id", "status", "created_at", "updated_at"}).
			AddRow(4, "Summer Cup Final", 2, 0, "active", now, now))

	mock.ExpectQuery(`SELECT "name" FROM "movie_categories" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"name"}).AddRow("Sports"))

	mock.ExpectQuery(`SELECT (.+) FROM "events" WHERE status = \$1 AND category_id = \$2 AND id <> \$3 ORDER BY id DESC LIMIT \$4`).
		WillReturnRows(mock.NewRows([]string{"id", "title"}))

	r := testutils.SetupTestRouter()
	r.GET("/details/:type/:id", Details)

	req, _ := http.NewRequest(http.MethodGet, "/details/event/4", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	data := respBody["data"].(map[string]interface{})
	assert.Equal(t, "Sports", data["category_name"])
	assert.Nil(t, data["language_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlay_InvalidTypeBeforeIdParsing(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/play/:type/:id", Play)

	// the type check wins even when the id is garbage too
	req, _ := http.NewRequest(http.MethodGet, "/play/podcast/abc", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid type", respBody["message"])
}

func TestPlay_InvalidId(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/play/:type/:id", Play)

	req, _ := http.NewRequest(http.MethodGet, "/play/movie/abc", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid id", respBody["message"])
}

func TestDownload_InvalidTypeAnswers200(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/download/:type/:id", Download)

	req, _ := http.NewRequest(http.MethodGet, "/download/podcast/1", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["status"])
	assert.Equal(t, "Invalid type", respBody["message"])
}

func TestDownload_NotAllowed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "video_url", "poster", "downloadable", "status", "created_at", "updated_at"}).
			AddRow(10, "The Heist", "https://cdn.example/heist.mp4", "p.jpg", 0, 1, now, now))

	r := testutils.SetupTestRouter()
	r.GET("/download/:type/:id", Download)

	req, _ := http.NewRequest(http.MethodGet, "/download/movie/10", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["status"])
	assert.Equal(t, "Download not allowed for this item", respBody["message"])
}

func TestDownload_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "video_url", "poster", "downloadable", "status", "created_at", "updated_at"}).
			AddRow(10, "The Heist", "https://cdn.example/heist.mp4", "p.jpg", 1, 1, now, now))

	r := testutils.SetupTestRouter()
	r.GET("/download/:type/:id", Download)

	req, _ := http.NewRequest(http.MethodGet, "/download/movie/10", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["status"])
	assert.Equal(t, "The Heist", respBody["name"])
	assert.Equal(t, "https://cdn.example/heist.mp4", respBody["video_url"])
	assert.Equal(t, "movie", respBody["type"])
}

func TestDownload_ItemNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "series" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.GET("/download/:type/:id", Download)

	req, _ := http.NewRequest(http.MethodGet, "/download/series/999", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, false, respBody["status"])
	assert.Equal(t, "Item not found", respBody["message"])
}
