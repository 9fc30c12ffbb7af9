package web

import (
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/jobdesk/jobdesk/app/sysinfo"
)

// StatusResponse is the JSON response for /api/status
type StatusResponse struct {
	Records   RecordCounts `json:"records"`
	System    SystemInfo   `json:"system"`
	Version   string       `json:"version"`
	Timestamp time.Time    `json:"timestamp"`
}

// RecordCounts reports the number of stored records per entity type
type RecordCounts struct {
	Users        int `json:"users"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	Categories   int `json:"categories"`
}

// SystemInfo reports basic host metrics for ops visibility
type SystemInfo struct {
	sysinfo.Metrics
	UptimeSeconds int `json:"uptime_seconds"`
}

// handleStatus returns record counts and host metrics - designed for
// CLI/jq consumption and health monitoring
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	users, jobs, applications, categories := s.store.Counts()

	metrics, errs := sysinfo.Collect("")
	for _, err := range errs {
		log.Printf("[WARN] %v", err)
	}

	resp := StatusResponse{
		Records:   RecordCounts{Users: users, Jobs: jobs, Applications: applications, Categories: categories},
		System:    SystemInfo{Metrics: metrics, UptimeSeconds: int(time.Since(s.startTime).Seconds())},
		Version:   s.version,
		Timestamp: time.Now(),
	}
	s.writeJSON(w, http.StatusOK, resp)
}
