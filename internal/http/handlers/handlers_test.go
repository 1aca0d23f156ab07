package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	intdb "travel/internal/db"
	"travel/internal/domain"
	"travel/internal/http/middleware"
	"travel/internal/repositories"
	"travel/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockHandler(t *testing.T) (ItineraryHandler, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	d, err := intdb.DialectFor(intdb.DriverMySQL)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.ItineraryService{Store: repositories.NewStore(conn, d), Logger: logger}
	return ItineraryHandler{Itineraries: svc, Docs: services.DocsService{Itineraries: svc, Logger: logger}}, mock
}

func serve(method, path, body string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(middleware.RequestID())
	register(r)
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(middleware.HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRespondDomainErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		detail string
	}{
		{domain.HotelNotFound(7), http.StatusNotFound, "Hotel not found"},
		{domain.ValidationError{Field: "name", Msg: "is required"}, http.StatusBadRequest, "name: is required"},
		{domain.InternalError{Msg: "failed to list itineraries", Err: errors.New("disk")}, http.StatusInternalServerError, "internal server error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		w := serve(http.MethodGet, "/x", "", func(r *gin.Engine) {
			r.GET("/x", func(c *gin.Context) { RespondDomainError(c, tc.err) })
		})
		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), `"request_id":"req-1"`)
		if tc.detail != "" {
			assert.Contains(t, w.Body.String(), `"detail":"`+tc.detail+`"`)
		}
	}
}

func TestCreateMissingHotelRollsBack(t *testing.T) {
	h, mock := newMockHandler(t)
	mock.ExpectBegin()
	mock.ExpectQuery("FROM hotels").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}))
	mock.ExpectRollback()

	w := serve(http.MethodPost, "/itineraries/",
		`{"name":"X","nights":1,"hotel_id":99,"activity_ids":[1],"transfer_ids":[1]}`,
		func(r *gin.Engine) { r.POST("/itineraries/", h.Create) })

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"detail":"Hotel not found"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateValidationFailsBeforeStorage(t *testing.T) {
	h, mock := newMockHandler(t)

	w := serve(http.MethodPost, "/itineraries/",
		`{"name":"","nights":-2,"activity_ids":[],"transfer_ids":[]}`,
		func(r *gin.Engine) { r.POST("/itineraries/", h.Create) })

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"validation_error"`)
	assert.Contains(t, body, `"name":"required"`)
	assert.Contains(t, body, `"nights":"min"`)
	assert.Contains(t, body, `"hotel_id":"required"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListStorageFailureIs500(t *testing.T) {
	h, mock := newMockHandler(t)
	mock.ExpectQuery("FROM itineraries").WillReturnError(errors.New("connection reset"))

	w := serve(http.MethodGet, "/itineraries/", "", func(r *gin.Engine) { r.GET("/itineraries/", h.List) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByNightsEmpty(t *testing.T) {
	h, mock := newMockHandler(t)
	mock.ExpectQuery("WHERE i.nights = \\?").WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nights", "hotel_id", "name", "location"}))

	w := serve(http.MethodGet, "/mcp/5", "", func(r *gin.Engine) { r.GET("/mcp/:nights", h.ListByNights) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPathParamsMustBeIntegers(t *testing.T) {
	h, mock := newMockHandler(t)
	register := func(r *gin.Engine) {
		r.GET("/mcp/:nights", h.ListByNights)
		r.GET("/itineraries/:id", h.Get)
		r.GET("/itineraries/:id/document", h.Document)
	}

	for _, p := range []string{"/mcp/3.5", "/mcp/x", "/itineraries/0", "/itineraries/x", "/itineraries/-4/document"} {
		w := serve(http.MethodGet, p, "", register)
		assert.Equal(t, http.StatusBadRequest, w.Code, p)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBCheckReportsMissingTables(t *testing.T) {
	conn, err := sql.Open(intdb.DriverSQLite, filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	d, err := intdb.DialectFor(intdb.DriverSQLite)
	require.NoError(t, err)

	sys := &SystemHandler{Store: repositories.NewStore(conn, d)}
	w := serve(http.MethodGet, "/db-check", "", func(r *gin.Engine) { r.GET("/db-check", sys.DBCheck) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"schema_incomplete"`)
	assert.Contains(t, w.Body.String(), `"itinerary_activity"`)
}

func TestSystemHandlerWithoutStore(t *testing.T) {
	sys := &SystemHandler{}
	w := serve(http.MethodGet, "/db-check", "", func(r *gin.Engine) { r.GET("/db-check", sys.DBCheck) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(http.MethodGet, "/routes", "", func(r *gin.Engine) { r.GET("/routes", sys.Routes) })
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
