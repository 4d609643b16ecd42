package http

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

type mockAuthService struct {
	registerFunc    func(ctx context.Context, req models.AuthRequest) (models.User, error)
	loginFunc       func(ctx context.Context, req models.AuthRequest) (models.User, error)
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.AuthRequest) (models.User, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.AuthRequest) (models.User, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

type mockDocumentService struct {
	uploadFunc      func(ctx context.Context, ownerID int64, file io.Reader, upload service.DocumentUpload) (models.Document, error)
	listByOwnerFunc func(ctx context.Context, ownerID int64) ([]models.Document, error)
	searchFunc      func(ctx context.Context, filter models.SearchFilter) ([]models.Document, error)
	deleteFunc      func(ctx context.Context, documentID, requesterID int64) error
}

func (m *mockDocumentService) Upload(ctx context.Context, ownerID int64, file io.Reader, upload service.DocumentUpload) (models.Document, error) {
	return m.uploadFunc(ctx, ownerID, file, upload)
}

func (m *mockDocumentService) ListByOwner(ctx context.Context, ownerID int64) ([]models.Document, error) {
	return m.listByOwnerFunc(ctx, ownerID)
}

func (m *mockDocumentService) Search(ctx context.Context, filter models.SearchFilter) ([]models.Document, error) {
	return m.searchFunc(ctx, filter)
}

func (m *mockDocumentService) Delete(ctx context.Context, documentID, requesterID int64) error {
	return m.deleteFunc(ctx, documentID, requesterID)
}

// okParseToken accepts any token string as user 3.
func okParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return models.Token{UserID: 3, Email: "john@x.com"}, nil
}

// newTestServer wires mocked services into the full router so tests
// exercise real routing and middleware, not bare handler funcs.
func newTestServer(t *testing.T, auth *mockAuthService, documents *mockDocumentService) *httptest.Server {
	t.Helper()

	handler := NewHandler(&service.Services{
		AuthService:     auth,
		DocumentService: documents,
	}, &store.DB{}, t.TempDir(), logger.Nop())

	return newHTTPTestServer(t, handler)
}

func newHTTPTestServer(t *testing.T, handler *Handler) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)
	return server
}
