package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorageClient points the GCS client at a local emulator-style server
// that accepts any object insert.
func fakeStorageClient(t *testing.T) *storage.Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "events/object", "bucket": "event-images"}`))
	}))
	t.Cleanup(ts.Close)
	t.Setenv("STORAGE_EMULATOR_HOST", strings.TrimPrefix(ts.URL, "http://"))

	client, err := storage.NewClient(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func multipartImage(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func (s *testServer) doMultipart(t *testing.T, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("X-Auth-Token", token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func uploadToken(t *testing.T, srv *testServer) string {
	t.Helper()
	srv.register(t, "Ada", "ada@example.com", "s3cret")
	return srv.login(t, "ada@example.com", "s3cret")
}

func TestImageUploadRequiresToken(t *testing.T) {
	srv := newTestServer(t).withUpload(nil, "")

	body, ct := multipartImage(t, "poster.png", "image/png", []byte("png-bytes"))
	rec := srv.doMultipart(t, "/uploads/image", "", body, ct)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, errorMessages(t, rec), "no token provided, access denied")
}

func TestImageUploadStorageUnconfigured(t *testing.T) {
	srv := newTestServer(t).withUpload(nil, "")
	token := uploadToken(t, srv)

	body, ct := multipartImage(t, "poster.png", "image/png", []byte("png-bytes"))
	rec := srv.doMultipart(t, "/uploads/image", token, body, ct)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, errorMessages(t, rec), "image storage not configured")
}

func TestImageUploadMissingFile(t *testing.T) {
	srv := newTestServer(t).withUpload(fakeStorageClient(t), "event-images")
	token := uploadToken(t, srv)

	empty := &bytes.Buffer{}
	mw := multipart.NewWriter(empty)
	require.NoError(t, mw.Close())

	rec := srv.doMultipart(t, "/uploads/image", token, empty, mw.FormDataContentType())
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessages(t, rec), "image file is required")
}

func TestImageUploadRejectsNonImage(t *testing.T) {
	srv := newTestServer(t).withUpload(fakeStorageClient(t), "event-images")
	token := uploadToken(t, srv)

	body, ct := multipartImage(t, "notes.txt", "text/plain", []byte("plain text"))
	rec := srv.doMultipart(t, "/uploads/image", token, body, ct)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessages(t, rec), "file must be an image")
}

func TestImageUploadStoresObject(t *testing.T) {
	srv := newTestServer(t).withUpload(fakeStorageClient(t), "event-images")
	token := uploadToken(t, srv)

	body, ct := multipartImage(t, "poster.png", "image/png", []byte("png-bytes"))
	rec := srv.doMultipart(t, "/uploads/image", token, body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	url, ok := decodeJSON(t, rec)["url"].(string)
	require.True(t, ok, "response has no url")
	assert.True(t, strings.HasPrefix(url, "https://storage.googleapis.com/event-images/events/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
}
