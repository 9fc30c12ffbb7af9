package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdesk/jobdesk/app/store"
	"github.com/jobdesk/jobdesk/app/store/enums"
	"github.com/jobdesk/jobdesk/app/web/request"
)

// pathID parses the {id} path parameter. A value that does not parse to a
// number is treated as an internal failure, not a client error, matching the
// error taxonomy of the API.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		log.Printf("[ERROR] malformed id parameter %q: %v", r.PathValue("id"), err)
		s.writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return 0, false
	}
	return id, true
}

// handleCreateUser creates a new user account. Duplicate usernames are
// rejected; the check and the insert are atomic inside the store.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if violations := validateCreateUser(req); len(violations) > 0 {
		s.writeJSONError(w, http.StatusBadRequest, formatViolations(violations))
		return
	}

	userType, err := enums.ParseUserType(req.UserType)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, formatViolations([]violation{
			{field: "userType", msg: "must be one of employer, jobseeker"}}))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] failed to hash password: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := s.store.CreateUser(store.User{
		Username:    req.Username,
		Password:    string(hash),
		Email:       req.Email,
		UserType:    userType,
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Bio:         req.Bio,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			s.writeJSONError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Printf("[ERROR] failed to create user: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("[INFO] created user %d (%s)", user.ID, user.Username)
	s.writeJSON(w, http.StatusCreated, user)
}

// handleGetUser returns a single user by id
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	user, err := s.store.GetUser(id)
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, "User not found")
		return
	}
	s.writeJSON(w, http.StatusOK, user)
}

// handleListJobs returns jobs matching the query filters, most recent first
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := store.JobFilters{
		Search:           q.Get("search"),
		Location:         q.Get("location"),
		Category:         q.Get("category"),
		JobTypes:         splitCSV(q.Get("jobType")),
		ExperienceLevels: splitCSV(q.Get("experienceLevel")),
		SalaryRange:      q.Get("salaryRange"),
	}

	// unrecognized datePosted values impose no constraint
	if dr, err := enums.ParseDateRange(q.Get("datePosted")); err == nil {
		filters.DatePosted = dr
	}

	s.writeJSON(w, http.StatusOK, s.store.GetJobs(filters))
}

// handleGetJob returns a single job by id
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	job, err := s.store.GetJob(id)
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, "Job not found")
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}

// handleCreateJob creates a new job posting, defaulting postedDate to now
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req request.CreateJob
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if violations := validateCreateJob(req); len(violations) > 0 {
		s.writeJSONError(w, http.StatusBadRequest, formatViolations(violations))
		return
	}

	postedDate := time.Now()
	if req.PostedDate != nil {
		postedDate = *req.PostedDate
	}

	job := s.store.CreateJob(store.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		JobType:         req.JobType,
		Category:        req.Category,
		ExperienceLevel: req.ExperienceLevel,
		Skills:          req.Skills,
		PostedDate:      postedDate,
		EmployerID:      req.EmployerID,
	})

	log.Printf("[INFO] created job %d (%s at %s)", job.ID, job.Title, job.Company)
	s.writeJSON(w, http.StatusCreated, job)
}

// handleJobsByEmployer returns all jobs posted by the given employer
func (s *Server) handleJobsByEmployer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.GetJobsByEmployer(id))
}

// handleCreateApplication submits a new application, defaulting status to
// "applied" and appliedDate to now
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req request.CreateApplication
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if violations := validateCreateApplication(req); len(violations) > 0 {
		s.writeJSONError(w, http.StatusBadRequest, formatViolations(violations))
		return
	}

	status := enums.ApplicationStatusApplied.String()
	if req.Status != "" {
		status = req.Status
	}
	appliedDate := time.Now()
	if req.AppliedDate != nil {
		appliedDate = *req.AppliedDate
	}

	app := s.store.CreateApplication(store.Application{
		JobID:       req.JobID,
		UserID:      req.UserID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Status:      status,
		AppliedDate: appliedDate,
	})

	log.Printf("[INFO] created application %d for job %d", app.ID, app.JobID)
	s.notify(fmt.Sprintf("new application #%d for job %d from %s <%s>", app.ID, app.JobID, app.Name, app.Email))
	s.writeJSON(w, http.StatusCreated, app)
}

// handleApplicationsByJob returns all applications submitted for a job
func (s *Server) handleApplicationsByJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.GetApplicationsByJob(id))
}

// handleApplicationsByUser returns all applications submitted by a user
func (s *Server) handleApplicationsByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.GetApplicationsByUser(id))
}

// handleUpdateApplicationStatus replaces the status of an existing
// application. The value is not checked against the recognized statuses,
// only its presence is.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req request.UpdateApplicationStatus
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		s.writeJSONError(w, http.StatusBadRequest, "Status is required")
		return
	}

	app, err := s.store.UpdateApplicationStatus(id, req.Status)
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, "Application not found")
		return
	}

	log.Printf("[INFO] application %d status changed to %q", app.ID, app.Status)
	s.notify(fmt.Sprintf("application #%d status changed to %q", app.ID, app.Status))
	s.writeJSON(w, http.StatusOK, app)
}

// handleListCategories returns all categories in insertion order
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.GetCategories())
}

// handleGetCategory returns a single category by id
func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	category, err := s.store.GetCategory(id)
	if err != nil {
		s.writeJSONError(w, http.StatusNotFound, "Category not found")
		return
	}
	s.writeJSON(w, http.StatusOK, category)
}

// handleCreateCategory creates a new category
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if violations := validateCreateCategory(req); len(violations) > 0 {
		s.writeJSONError(w, http.StatusBadRequest, formatViolations(violations))
		return
	}

	category := s.store.CreateCategory(store.Category{Name: req.Name, Icon: req.Icon, JobCount: req.JobCount})
	log.Printf("[INFO] created category %d (%s)", category.ID, category.Name)
	s.writeJSON(w, http.StatusCreated, category)
}

// splitCSV splits a comma-separated query value, dropping empty elements
func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
