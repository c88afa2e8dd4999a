package reports

import (
	"context"
	"net/url"
	"sync/atomic"

	"hr-portal/internal/infra/backend"
)

// Attendance report endpoints live under this backend prefix.
const exportBasePath = "/api/attendance-report/"

// ExportClient triggers report downloads against the backend's parameterized
// report endpoints. It tracks a busy flag for the duration of each download
// so the UI can disable its trigger control; preventing concurrent clicks is
// the caller's job, the flag is only exposed.
type ExportClient struct {
	backend *backend.Client
	busy    atomic.Bool
}

func NewExportClient(b *backend.Client) *ExportClient {
	return &ExportClient{backend: b}
}

// Busy reports whether a download is currently in flight.
func (e *ExportClient) Busy() bool {
	return e.busy.Load()
}

// Export downloads one report. For endpoint "gen-department-report" and
// period "2025-03" the request path is exactly
// /api/attendance-report/gen-department-report?yearMonth=2025-03.
// The busy flag goes up before the request and back down however the
// download settles. No retries.
func (e *ExportClient) Export(ctx context.Context, endpoint, yearMonth string) (*backend.Download, error) {
	e.busy.Store(true)
	defer e.busy.Store(false)

	query := url.Values{}
	if yearMonth != "" {
		query.Set("yearMonth", yearMonth)
	}
	return e.backend.Download(ctx, exportBasePath+endpoint, query)
}
