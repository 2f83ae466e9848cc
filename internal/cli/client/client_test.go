package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libhub-dev/libhub/internal/cli/events"
	"github.com/libhub-dev/libhub/internal/cli/store"
)

type recordedRequest struct {
	method      string
	path        string
	rawQuery    string
	authz       string
	contentType string
	body        []byte
}

// newTestClient spins up an httptest server running handler and a client
// pointed at it, backed by an in-memory store and a fresh broadcaster.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *store.MemoryStore, *events.Broadcaster, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.rawQuery = r.URL.RawQuery
		rec.authz = r.Header.Get("Authorization")
		rec.contentType = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	st := store.NewMemoryStore()
	bc := &events.Broadcaster{}
	return New(srv.URL, st, bc), st, bc, rec
}

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}

func TestDo_QueryOmitsEmptyValues(t *testing.T) {
	c, _, _, rec := newTestClient(t, ok(`{"content":[],"empty":true}`))

	_, err := c.ListAuthors(context.Background(), 0, 20, "")
	require.NoError(t, err)
	assert.Equal(t, "page=0&size=20", rec.rawQuery)

	_, err = c.ListAuthors(context.Background(), 1, 10, "tolkien")
	require.NoError(t, err)
	assert.Equal(t, "page=1&search=tolkien&size=10", rec.rawQuery)
}

func TestDo_QueryOmitsZeroFilters(t *testing.T) {
	c, _, _, rec := newTestClient(t, ok(`{"content":[]}`))

	_, err := c.ListLoans(context.Background(), ListLoansOptions{Page: 0, Size: 20})
	require.NoError(t, err)
	assert.NotContains(t, rec.rawQuery, "userId")
	assert.NotContains(t, rec.rawQuery, "bookId")
	assert.NotContains(t, rec.rawQuery, "status")

	_, err = c.ListLoans(context.Background(), ListLoansOptions{Status: "BORROWED", UserID: 7, Page: 0, Size: 20})
	require.NoError(t, err)
	assert.Contains(t, rec.rawQuery, "status=BORROWED")
	assert.Contains(t, rec.rawQuery, "userId=7")
}

func TestDo_NoQueryNoQuestionMark(t *testing.T) {
	c, _, _, rec := newTestClient(t, ok(`{}`))

	_, err := c.GetBook(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/api/books/3", rec.path)
	assert.Empty(t, rec.rawQuery)
}

func TestDo_BearerHeaderOnlyWhenStored(t *testing.T) {
	c, st, _, rec := newTestClient(t, ok(`{}`))

	_, err := c.GetBook(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, rec.authz)

	cred := "token-xyz"
	require.NoError(t, st.Write(&cred, nil))

	_, err = c.GetBook(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-xyz", rec.authz)
}

func TestDo_JSONContentTypeOnBody(t *testing.T) {
	c, _, _, rec := newTestClient(t, ok(`{"id":1}`))

	_, err := c.CreateCategory(context.Background(), CategoryRequest{Name: "Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", rec.contentType)
	assert.JSONEq(t, `{"name":"Fantasy"}`, string(rec.body))
}

func TestDo_GETNeverCarriesBody(t *testing.T) {
	c, _, _, rec := newTestClient(t, ok(`{}`))

	// Even a body smuggled into the options must not be serialized on GET.
	_, err := c.do(context.Background(), http.MethodGet, "/books", requestOptions{body: map[string]string{"x": "y"}})
	require.NoError(t, err)
	assert.Empty(t, rec.body)
	assert.Empty(t, rec.contentType)
}

func TestDo_Unauthorized_ClearsStoreAndBroadcastsOnce(t *testing.T) {
	c, st, bc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})

	cred := "stale-token"
	require.NoError(t, st.Write(&cred, &store.Profile{ID: 1, Role: store.RoleAdmin}))

	var signals int
	bc.Subscribe(func() { signals++ })

	_, err := c.GetBook(context.Background(), 1)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, "token expired", reqErr.Message)

	_, hasCred := st.Read()
	assert.False(t, hasCred)
	_, hasProfile := st.ReadProfile()
	assert.False(t, hasProfile)
	assert.Equal(t, 1, signals)
}

func TestDo_Unauthorized_InvalidatesEvenWithGarbageBody(t *testing.T) {
	c, st, bc, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("<html>nope</html>"))
	})

	cred := "stale-token"
	require.NoError(t, st.Write(&cred, nil))

	var signals int
	bc.Subscribe(func() { signals++ })

	_, err := c.GetBook(context.Background(), 1)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusText(http.StatusUnauthorized), reqErr.Message)

	_, hasCred := st.Read()
	assert.False(t, hasCred)
	assert.Equal(t, 1, signals)
}

func TestDo_NoContentYieldsNilPayload(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteBook(context.Background(), 9))

	detail, err := doJSON[BookDetail](context.Background(), c, http.MethodDelete, "/books/9", requestOptions{})
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestDo_NonJSONSuccessBodyDecodesAsEmptyObject(t *testing.T) {
	c, _, _, _ := newTestClient(t, ok("definitely not json"))

	book, err := doJSON[Book](context.Background(), c, http.MethodGet, "/books/1", requestOptions{})
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Zero(t, book.ID)
}

func TestDo_ErrorMessagePreference(t *testing.T) {
	t.Run("server message wins", func(t *testing.T) {
		c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"status":409,"message":"book already borrowed","timestamp":"2025-01-01T00:00:00Z"}`))
		})
		_, err := c.GetBook(context.Background(), 1)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "book already borrowed", reqErr.Message)
	})

	t.Run("falls back to status text", func(t *testing.T) {
		c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		_, err := c.GetBook(context.Background(), 1)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), reqErr.Message)
	})

	t.Run("falls back to generic phrase", func(t *testing.T) {
		c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(599)
		})
		_, err := c.GetBook(context.Background(), 1)
		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "request failed", reqErr.Message)
	})
}

func TestDo_ValidationFieldsCarried(t *testing.T) {
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"message":"validation failed","errors":{"email":"must be a valid email"}}`))
	})

	_, err := c.Register(context.Background(), RegisterRequest{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "must be a valid email", reqErr.Fields["email"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(reqErr.Body, &body))
	assert.Equal(t, "validation failed", body["message"])
}

func TestDo_NoAutomaticRetry(t *testing.T) {
	var calls int
	c, _, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.GetBook(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_PageEnvelopeDecodes(t *testing.T) {
	c, _, _, _ := newTestClient(t, ok(`{
		"content":[{"id":1,"title":"Dune","isbn":"9780441172719"}],
		"totalElements":1,"totalPages":1,"size":20,"number":0,
		"first":true,"last":true,"numberOfElements":1,"empty":false
	}`))

	page, err := c.ListBooks(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Dune", page.Content[0].Title)
	assert.True(t, page.First)
	assert.False(t, page.Empty)
}

func TestLogin_DecodesAuthResponse(t *testing.T) {
	c, _, _, rec := newTestClient(t, ok(`{
		"accessToken":"jwt-token",
		"user":{"id":5,"email":"m@example.com","fullName":"Mai","role":"MEMBER","status":"ACTIVE"}
	}`))

	resp, err := c.Login(context.Background(), "m@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "/api/auth/login", rec.path)
	assert.Equal(t, "jwt-token", resp.AccessToken)
	assert.Equal(t, "Mai", resp.User.FullName)
}

func TestRequestError_ErrorString(t *testing.T) {
	err := newRequestError(http.StatusNotFound, []byte(`{"message":"book not found"}`))
	assert.Equal(t, "request failed (status 404): book not found", err.Error())
	assert.True(t, errors.As(error(err), new(*RequestError)))
}
