package httpserver_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"team-chat/errors"
	"team-chat/infrastructure/httpserver"
	"team-chat/mocks/servicemocks"
	"team-chat/repositories"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *servicemocks.MockIUploadService) {
	uploads := servicemocks.NewMockIUploadService(gomock.NewController(t))
	handler := httpserver.NewFileHandler(logs.GetLoggerFromLevel(slog.LevelDebug), uploads)
	return httpserver.NewRouter(handler), uploads
}

func TestFileHandler_Upload(t *testing.T) {
	req := require.New(t)
	router, uploads := newRouter(t)

	// Given the service accepts the bytes
	uploads.EXPECT().Store(gomock.Any(), "token-1", "image/png", gomock.Any()).Return("storage-1", nil)

	// When posting them to the upload url
	r := httptest.NewRequest(http.MethodPost, "/upload/token-1", strings.NewReader("png bytes"))
	r.Header.Set("Content-Type", "image/png")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	// Then the storage id comes back as json
	req.Equal(http.StatusOK, w.Code)
	var body map[string]string
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Equal("storage-1", body["storageId"])
}

func TestFileHandler_UploadRejections(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown token", err: errors.ErrUploadTokenInvalid, want: http.StatusForbidden},
		{name: "not an image", err: fmt.Errorf("%w: text/plain", errors.ErrUnsupportedMedia), want: http.StatusUnsupportedMediaType},
		{name: "content mismatch", err: errors.ErrContentTypeMismatch, want: http.StatusUnsupportedMediaType},
		{name: "too large", err: errors.ErrUploadTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "storage failure", err: fmt.Errorf("store file: disk full"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			router, uploads := newRouter(t)
			uploads.EXPECT().Store(gomock.Any(), "token-1", gomock.Any(), gomock.Any()).Return("", tt.err)

			r := httptest.NewRequest(http.MethodPost, "/upload/token-1", strings.NewReader("data"))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			req.Equal(tt.want, w.Code)
		})
	}
}

func TestFileHandler_Download(t *testing.T) {
	req := require.New(t)
	router, uploads := newRouter(t)
	uploads.EXPECT().Open(gomock.Any(), "storage-1").Return(repositories.StoredFile{
		StorageID: "storage-1", ContentType: "image/gif", Data: []byte("GIF89a"),
	}, nil)
	uploads.EXPECT().Open(gomock.Any(), "missing").Return(repositories.StoredFile{}, errors.ErrFileNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/storage-1", nil))
	req.Equal(http.StatusOK, w.Code)
	req.Equal("image/gif", w.Header().Get("Content-Type"))
	req.Equal("GIF89a", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/missing", nil))
	req.Equal(http.StatusNotFound, w.Code)
}

func TestFileHandler_WrongMethod(t *testing.T) {
	req := require.New(t)
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/upload/token-1", nil))
	req.Equal(http.StatusMethodNotAllowed, w.Code)
}
