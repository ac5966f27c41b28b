package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blackwell-systems/bookctl/internal/api"
	"github.com/blackwell-systems/bookctl/internal/booktest"
	"github.com/blackwell-systems/bookctl/internal/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []catalog.Book {
	return []catalog.Book{
		{ID: 1, Title: "Dune", Author: "Herbert", Year: catalog.IntPtr(1965)},
		{ID: 2, Title: "Solaris", Author: "Lem", Genre: catalog.StringPtr("sci-fi")},
	}
}

func TestList(t *testing.T) {
	srv := booktest.New(t, seed()...)
	c := api.New(srv.URL)

	books, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, 1965, *books[0].Year)
	assert.Nil(t, books[0].Genre)
	assert.Equal(t, "sci-fi", *books[1].Genre)
}

func TestList_Empty(t *testing.T) {
	srv := booktest.New(t)
	books, err := api.New(srv.URL).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestGet_NotFound(t *testing.T) {
	srv := booktest.New(t, seed()...)
	_, err := api.New(srv.URL).Get(context.Background(), 99)
	require.Error(t, err)

	assert.True(t, errors.Is(err, api.ErrNotFound), "404 should match ErrNotFound")
	var se *api.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)

	detail, ok := api.DetailOf(err)
	assert.True(t, ok)
	assert.Equal(t, "Book with id 99 not found", detail)
}

func TestCreateUpdateDelete(t *testing.T) {
	srv := booktest.New(t)
	c := api.New(srv.URL + "/")
	ctx := context.Background()

	created, err := c.Create(ctx, catalog.Payload{Title: "Dune", Author: "Herbert", Year: catalog.IntPtr(1965)})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.Genre)

	updated, err := c.Update(ctx, created.ID, catalog.Payload{Title: "Dune Messiah", Author: "Herbert"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Nil(t, updated.Year, "update replaces every field")

	require.NoError(t, c.Delete(ctx, created.ID))
	assert.Empty(t, srv.Books())

	err = c.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, api.ErrNotFound))
}

func TestCreate_ValidationDetailList(t *testing.T) {
	srv := booktest.New(t)
	_, err := api.New(srv.URL).Create(context.Background(), catalog.Payload{Author: "x"})
	require.Error(t, err)

	detail, ok := api.DetailOf(err)
	require.True(t, ok)
	assert.Equal(t, "title: String should have at least 1 character", detail)
}

func TestServiceError_NoDetail(t *testing.T) {
	srv := booktest.New(t, seed()...)
	srv.FailNext(http.MethodGet, http.StatusInternalServerError)

	_, err := api.New(srv.URL).List(context.Background())
	var se *api.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Empty(t, se.Detail)

	_, ok := api.DetailOf(err)
	assert.False(t, ok)
	assert.False(t, api.IsTransport(err))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := api.New(url, api.WithTimeout(time.Second)).List(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	_, ok := api.DetailOf(err)
	assert.False(t, ok)
}

func TestTransportError_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := api.New(srv.URL).List(context.Background())
	assert.True(t, api.IsTransport(err))
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := api.New(srv.URL, api.WithUserAgent("bookctl-test"))
	require.NoError(t, c.Delete(context.Background(), 3))

	assert.Equal(t, "bookctl-test", got.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	_, err := uuid.Parse(got.Get("X-Request-ID"))
	assert.NoError(t, err, "X-Request-ID should be a UUID")
}

func TestNew_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000", api.New("").BaseURL())
	assert.Equal(t, "http://example.test", api.New("http://example.test///").BaseURL())
}

type failingDoer struct{ err error }

func (d failingDoer) Do(*http.Request) (*http.Response, error) { return nil, d.err }

func TestWithHTTPClient_TransportFailure(t *testing.T) {
	refused := errors.New("connection refused")
	c := api.New("http://books.invalid", api.WithHTTPClient(failingDoer{err: refused}))

	_, err := c.Get(context.Background(), 1)
	var te *api.TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, refused)
}
