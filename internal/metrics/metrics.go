package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Metrics holds all application metrics
type Metrics struct {
	mu sync.RWMutex

	// Ingestion metrics
	RowsIngestedTotal int64
	IngestErrorsTotal int64

	// Refresh metrics
	RefreshesTotal      int64
	RefreshErrorsTotal  int64
	lastRefreshDuration time.Duration

	// Pipeline metrics
	PipelineRunsTotal    int64
	lastPipelineDuration time.Duration
	recordsLoaded        int
	operatorsTracked     int

	// WebSocket metrics
	WebSocketConnectionsTotal    int64
	WebSocketDisconnectionsTotal int64
	WebSocketErrorsTotal         int64
	activeConnections            int64

	// HTTP metrics
	httpRequestsTotal map[string]map[int]int64 // endpoint -> status -> count

	// Timing
	startTime time.Time
}

// Global metrics instance
var instance *Metrics
var once sync.Once

// Get returns the singleton metrics instance
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			httpRequestsTotal: make(map[string]map[int]int64),
			startTime:         time.Now(),
		}
	})
	return instance
}

// RecordRowsIngested adds to the ingested row counter
func (m *Metrics) RecordRowsIngested(n int) {
	m.mu.Lock()
	m.RowsIngestedTotal += int64(n)
	m.mu.Unlock()
}

// RecordIngestError increments the ingestion error counter
func (m *Metrics) RecordIngestError() {
	m.mu.Lock()
	m.IngestErrorsTotal++
	m.mu.Unlock()
}

// RecordRefresh records a completed source refresh
func (m *Metrics) RecordRefresh(duration time.Duration, records int) {
	m.mu.Lock()
	m.RefreshesTotal++
	m.lastRefreshDuration = duration
	m.recordsLoaded = records
	m.mu.Unlock()
}

// RecordRefreshError increments the refresh error counter
func (m *Metrics) RecordRefreshError() {
	m.mu.Lock()
	m.RefreshErrorsTotal++
	m.mu.Unlock()
}

// RecordPipelineRun records one analytics pipeline execution
func (m *Metrics) RecordPipelineRun(duration time.Duration, operators int) {
	m.mu.Lock()
	m.PipelineRunsTotal++
	m.lastPipelineDuration = duration
	m.operatorsTracked = operators
	m.mu.Unlock()
}

// RecordWebSocketConnect increments connection counters
func (m *Metrics) RecordWebSocketConnect() {
	m.mu.Lock()
	m.WebSocketConnectionsTotal++
	m.activeConnections++
	m.mu.Unlock()
}

// RecordWebSocketDisconnect increments disconnection counter
func (m *Metrics) RecordWebSocketDisconnect() {
	m.mu.Lock()
	m.WebSocketDisconnectionsTotal++
	m.activeConnections--
	m.mu.Unlock()
}

// RecordWebSocketError increments WebSocket error counter
func (m *Metrics) RecordWebSocketError() {
	m.mu.Lock()
	m.WebSocketErrorsTotal++
	m.mu.Unlock()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(endpoint string, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.httpRequestsTotal[endpoint] == nil {
		m.httpRequestsTotal[endpoint] = make(map[int]int64)
	}
	m.httpRequestsTotal[endpoint][statusCode]++
}

// GetActiveConnections returns current WebSocket connections
func (m *Metrics) GetActiveConnections() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeConnections
}

// Handler returns an HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		// Helper to write metric
		write := func(name string, value interface{}, labels ...string) {
			labelStr := ""
			if len(labels) > 0 {
				labelStr = "{"
				for i := 0; i < len(labels); i += 2 {
					if i > 0 {
						labelStr += ","
					}
					labelStr += labels[i] + "=\"" + labels[i+1] + "\""
				}
				labelStr += "}"
			}

			switch v := value.(type) {
			case int:
				w.Write([]byte(name + labelStr + " " + strconv.Itoa(v) + "\n"))
			case int64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatInt(v, 10) + "\n"))
			case float64:
				w.Write([]byte(name + labelStr + " " + strconv.FormatFloat(v, 'f', 6, 64) + "\n"))
			}
		}

		// System metrics
		write("callanalytics_uptime_seconds", time.Since(m.startTime).Seconds())

		// Ingestion metrics
		write("callanalytics_rows_ingested_total", m.RowsIngestedTotal)
		write("callanalytics_ingest_errors_total", m.IngestErrorsTotal)

		// Refresh metrics
		write("callanalytics_refreshes_total", m.RefreshesTotal)
		write("callanalytics_refresh_errors_total", m.RefreshErrorsTotal)
		write("callanalytics_refresh_duration_seconds", m.lastRefreshDuration.Seconds())
		write("callanalytics_records_loaded", m.recordsLoaded)

		// Pipeline metrics
		write("callanalytics_pipeline_runs_total", m.PipelineRunsTotal)
		write("callanalytics_pipeline_duration_seconds", m.lastPipelineDuration.Seconds())
		write("callanalytics_operators_tracked", m.operatorsTracked)

		// WebSocket metrics
		write("callanalytics_websocket_connections_total", m.WebSocketConnectionsTotal)
		write("callanalytics_websocket_disconnections_total", m.WebSocketDisconnectionsTotal)
		write("callanalytics_websocket_active_connections", m.activeConnections)
		write("callanalytics_websocket_errors_total", m.WebSocketErrorsTotal)

		// HTTP metrics
		for endpoint, statusCodes := range m.httpRequestsTotal {
			for status, count := range statusCodes {
				write("callanalytics_http_requests_total", count, "endpoint", endpoint, "status", strconv.Itoa(status))
			}
		}
	}
}
