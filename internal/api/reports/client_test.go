package reports

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-portal/internal/infra/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportClient_RequestPathConstruction(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		w.Header().Set("Content-Type", "text/csv")
		io.WriteString(w, "name,days\n")
	}))
	defer srv.Close()

	client := NewExportClient(backend.NewClient(srv.URL))

	dl, err := client.Export(context.Background(), "gen-department-report", "2025-03")
	require.NoError(t, err)
	defer dl.Body.Close()

	assert.Equal(t, "/api/attendance-report/gen-department-report?yearMonth=2025-03", gotURI)
	assert.Equal(t, "text/csv", dl.ContentType)
}

func TestExportClient_OmitsEmptyPeriod(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
	}))
	defer srv.Close()

	client := NewExportClient(backend.NewClient(srv.URL))
	dl, err := client.Export(context.Background(), "gen-company-report", "")
	require.NoError(t, err)
	dl.Body.Close()

	assert.Equal(t, "/api/attendance-report/gen-company-report", gotURI)
}

func TestExportClient_BusyFlagTransitions(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	}))
	defer srv.Close()

	client := NewExportClient(backend.NewClient(srv.URL))
	assert.False(t, client.Busy())

	done := make(chan error, 1)
	go func() {
		dl, err := client.Export(context.Background(), "gen-department-report", "2025-03")
		if dl != nil {
			dl.Body.Close()
		}
		done <- err
	}()

	<-entered
	assert.True(t, client.Busy(), "flag must be up while the download is in flight")

	close(release)
	require.NoError(t, <-done)
	assert.False(t, client.Busy(), "flag must drop once the download settles")
}

func TestExportClient_BusyFlagDropsOnFailureToo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewExportClient(backend.NewClient(srv.URL))
	_, err := client.Export(context.Background(), "gen-department-report", "2025-03")
	assert.Error(t, err)
	assert.False(t, client.Busy())
}
