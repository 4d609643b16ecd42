package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMultipartBody(t *testing.T, fields map[string]string, fileField, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func authorizedRequest(t *testing.T, method, url string, body io.Reader) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer any")
	return req
}

func TestUpload_Multipart(t *testing.T) {
	var gotUpload service.DocumentUpload
	var gotContent string
	documents := &mockDocumentService{
		uploadFunc: func(ctx context.Context, ownerID int64, file io.Reader, upload service.DocumentUpload) (models.Document, error) {
			assert.Equal(t, int64(3), ownerID)
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			gotContent = string(content)
			gotUpload = upload
			return models.Document{DocumentID: 11}, nil
		},
	}
	server := newTestServer(t, &mockAuthService{parseTokenFunc: okParseToken}, documents)

	body, contentType := buildMultipartBody(t, map[string]string{
		"document_name": "march invoice",
		"document_type": "invoice",
		"document_date": "2024-03-01",
	}, "file", "invoice.pdf", "pdf bytes")

	req := authorizedRequest(t, http.MethodPost, server.URL+"/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ok models.OKResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ok))
	assert.True(t, ok.OK)

	assert.Equal(t, "pdf bytes", gotContent)
	assert.Equal(t, "invoice.pdf", gotUpload.OriginalFilename)
	assert.Equal(t, "march invoice", gotUpload.Name)
	assert.Equal(t, "invoice", gotUpload.Type)
	assert.Equal(t, "2024-03-01", gotUpload.Date)
}

func TestUpload_MissingFile(t *testing.T) {
	server := newTestServer(t, &mockAuthService{parseTokenFunc: okParseToken}, &mockDocumentService{})

	body, contentType := buildMultipartBody(t, map[string]string{"document_name": "no file"}, "", "", "")

	req := authorizedRequest(t, http.MethodPost, server.URL+"/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_NotMultipart(t *testing.T) {
	server := newTestServer(t, &mockAuthService{parseTokenFunc: okParseToken}, &mockDocumentService{})

	req := authorizedRequest(t, http.MethodPost, server.URL+"/api/upload", bytes.NewReader([]byte("plain body")))
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMyDocuments_List(t *testing.T) {
	docType := "invoice"
	documents := &mockDocumentService{
		listByOwnerFunc: func(ctx context.Context, ownerID int64) ([]models.Document, error) {
			return []models.Document{
				{DocumentID: 2, Name: "newer", Type: &docType},
				{DocumentID: 1, Name: "older"},
			}, nil
		},
	}
	server := newTestServer(t, &mockAuthService{parseTokenFunc: okParseToken}, documents)

	resp, err := http.DefaultClient.Do(authorizedRequest(t, http.MethodGet, server.URL+"/api/mydocs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []models.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "newer", body[0].Name)
	assert.Nil(t, body[1].Type)
}

func TestDeleteDocument_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		documentID string
		deleteErr  error
		wantStatus int
	}{
		{"success", "11", nil, http.StatusOK},
		{"not found", "404", store.ErrDocumentNotFound, http.StatusNotFound},
		{"not the owner", "11", service.ErrNotDocumentOwner, http.StatusForbidden},
		{"non-numeric id", "abc", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents := &mockDocumentService{
				deleteFunc: func(ctx context.Context, documentID, requesterID int64) error {
					assert.Equal(t, int64(3), requesterID)
					return tt.deleteErr
				},
			}
			server := newTestServer(t, &mockAuthService{parseTokenFunc: okParseToken}, documents)

			resp, err := http.DefaultClient.Do(
				authorizedRequest(t, http.MethodDelete, server.URL+"/api/documents/"+tt.documentID, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSearch_Public(t *testing.T) {
	var gotFilter models.SearchFilter
	documents := &mockDocumentService{
		searchFunc: func(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
			gotFilter = filter
			return []models.Document{}, nil
		},
	}
	server := newTestServer(t, &mockAuthService{}, documents)

	// no Authorization header: search is a public endpoint
	resp, err := http.Get(server.URL + "/api/search?q=report&type=invoice&date=2024-03-01")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "report", gotFilter.Query)
	assert.Equal(t, "invoice", gotFilter.Type)
	assert.Equal(t, "2024-03-01", gotFilter.Date)
}

func TestSearch_NoFilters(t *testing.T) {
	documents := &mockDocumentService{
		searchFunc: func(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
			assert.Equal(t, models.SearchFilter{}, filter)
			return []models.Document{}, nil
		},
	}
	server := newTestServer(t, &mockAuthService{}, documents)

	resp, err := http.Get(server.URL + "/api/search")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadsStaticServing(t *testing.T) {
	uploadDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(uploadDir, "123-abcd.txt"), []byte("stored blob"), 0o644))

	handler := NewHandler(&service.Services{
		AuthService:     &mockAuthService{},
		DocumentService: &mockDocumentService{},
	}, &store.DB{}, uploadDir, logger.Nop())
	server := newHTTPTestServer(t, handler)

	resp, err := http.Get(server.URL + "/uploads/123-abcd.txt")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "stored blob", string(content))
}
