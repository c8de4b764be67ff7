package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resumes/abc/resume.pdf", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("file bytes"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "secret")
	data, err := client.Download(context.Background(), "/resumes/abc/resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, []byte("file bytes"), data)
}

func TestDownloadNoAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Download(context.Background(), "path")
	require.NoError(t, err)
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "key").Download(context.Background(), "missing/file.pdf")

	require.Error(t, err)
	var storageErr *Error
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "missing/file.pdf", storageErr.Path)
	assert.Contains(t, storageErr.Error(), "404")
}

func TestDownloadConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, "").Download(context.Background(), "any")

	var storageErr *Error
	require.ErrorAs(t, err, &storageErr)
	assert.NotNil(t, storageErr.Unwrap())
}

func TestPathFromURL(t *testing.T) {
	cases := []struct {
		name   string
		rawURL string
		bucket string
		want   string
	}{
		{
			name:   "public object URL",
			rawURL: "https://files.example.com/storage/v1/object/public/resumes/user-1/resume.pdf",
			bucket: "resumes",
			want:   "user-1/resume.pdf",
		},
		{
			name:   "bucket not present",
			rawURL: "https://files.example.com/other/user-1/resume.pdf",
			bucket: "resumes",
			want:   "",
		},
		{
			name:   "unparseable url",
			rawURL: "://bad",
			bucket: "resumes",
			want:   "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PathFromURL(tc.rawURL, tc.bucket))
		})
	}
}
