package fetcher

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/screend/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestFetcher(t *testing.T, maskDir string) *MaskFetcher {
	ctrl := gomock.NewController(t)
	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().MaskDir().Return(maskDir)
	return NewMaskFetcher(zap.NewNop(), cfg)
}

// newMaskServer serves a mask image the way a wallpaper host would, plus the
// failure modes a misconfigured mask URL runs into
func newMaskServer(t *testing.T, img []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/masks/lock.png", func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "screend/1.0" {
			http.Error(w, "unexpected agent "+ua, http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(img)
	})
	mux.HandleFunc("/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/masks/lock.png", http.StatusFound)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html>sign in to view this mask</html>"))
	})
	mux.HandleFunc("/huge.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(bytes.Repeat([]byte{0}, 11*1024*1024))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestMaskFetcher_FetchURL(t *testing.T) {
	img := pngBytes(t)
	server := newMaskServer(t, img)

	tests := []struct {
		name           string
		path           string
		ctxFunc        func() (context.Context, context.CancelFunc)
		expectedError  string
		expectedLength int
	}{
		{
			name:           "Success - Mask Image",
			path:           "/masks/lock.png",
			expectedLength: len(img),
		},
		{
			name:           "Success - Redirect To Mask",
			path:           "/latest",
			expectedLength: len(img),
		},
		{
			name:          "Error - Missing Mask",
			path:          "/masks/absent.png",
			expectedError: "unexpected status code: 404",
		},
		{
			name:          "Error - Login Page Instead Of Image",
			path:          "/login",
			expectedError: "url is not an image: text/html",
		},
		{
			name:           "Truncated - Oversized Mask",
			path:           "/huge.png",
			expectedLength: _maxImageSize,
		},
		{
			name: "Error - Context Cancelled",
			path: "/masks/lock.png",
			ctxFunc: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel() // Cancel immediately
				return ctx, cancel
			},
			expectedError: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ctx context.Context
			var cancel context.CancelFunc
			if tt.ctxFunc != nil {
				ctx, cancel = tt.ctxFunc()
			} else {
				ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
			}
			defer cancel()

			// The mask directory never applies to URLs
			data, err := newTestFetcher(t, t.TempDir()).Fetch(ctx, server.URL+tt.path)

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data) != tt.expectedLength {
				t.Errorf("expected data length %d, got %d", tt.expectedLength, len(data))
			}
		})
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestMaskFetcher_FetchFile(t *testing.T) {
	dir := t.TempDir()
	img := pngBytes(t)
	if err := os.WriteFile(filepath.Join(dir, "mask.png"), img, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "office"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "office", "lock.png"), img, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		source         string
		expectedError  string
		expectedLength int
	}{
		{
			name:           "Relative Path",
			source:         "mask.png",
			expectedLength: len(img),
		},
		{
			name:           "Absolute Path",
			source:         filepath.Join(dir, "mask.png"),
			expectedLength: len(img),
		},
		{
			name:           "File URL",
			source:         "file://" + filepath.Join(dir, "mask.png"),
			expectedLength: len(img),
		},
		{
			name:           "Nested Path Under Mask Dir",
			source:         "office/lock.png",
			expectedLength: len(img),
		},
		{
			name:           "Relative File URL",
			source:         "file://office/lock.png",
			expectedLength: len(img),
		},
		{
			name:          "Missing File",
			source:        "absent.png",
			expectedError: "failed to open mask",
		},
		{
			name:          "Not An Image",
			source:        "notes.txt",
			expectedError: "file is not an image",
		},
		{
			name:          "Empty Source",
			source:        "",
			expectedError: "empty mask source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := newTestFetcher(t, dir).Fetch(context.Background(), tt.source)

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data) != tt.expectedLength {
				t.Errorf("expected data length %d, got %d", tt.expectedLength, len(data))
			}
		})
	}
}
