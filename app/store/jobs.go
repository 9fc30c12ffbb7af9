package store

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jobdesk/jobdesk/app/store/enums"
)

// JobFilters describes optional constraints for GetJobs. Unset fields impose
// no restriction; set fields combine with AND semantics.
type JobFilters struct {
	Search           string          // case-insensitive substring on title, company or description
	Location         string          // case-insensitive substring on location
	Category         string          // exact match
	JobTypes         []string        // membership
	ExperienceLevels []string        // membership
	DatePosted       enums.DateRange // posted-date window relative to now
	SalaryRange      string          // minimum salary threshold, free text like "$55,000"
}

// CreateJob assigns the next job id and stores the record. As a side effect
// the jobCount of the category whose name exactly matches the job's category
// field is incremented; no match is a silent no-op.
func (s *Store) CreateJob(job Job) Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job.ID = len(s.jobs) + 1
	s.jobs = append(s.jobs, job)

	for i, c := range s.categories {
		if c.Name == job.Category {
			s.categories[i].JobCount++
			break
		}
	}
	return job
}

// GetJob returns the job with the given id or ErrNotFound
func (s *Store) GetJob(id int) (Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.jobs) {
		return Job{}, ErrNotFound
	}
	return s.jobs[id-1], nil
}

// GetJobs returns all jobs matching every supplied filter, sorted by
// postedDate descending (ties broken by id to keep the order deterministic)
func (s *Store) GetJobs(filters JobFilters) []Job {
	s.mu.RLock()
	res := make([]Job, 0, len(s.jobs))
	now := time.Now()
	for _, job := range s.jobs {
		if matchJob(job, filters, now) {
			res = append(res, job)
		}
	}
	s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if res[i].PostedDate.Equal(res[j].PostedDate) {
			return res[i].ID < res[j].ID
		}
		return res[i].PostedDate.After(res[j].PostedDate)
	})
	return res
}

// GetJobsByEmployer returns all jobs with the given employerId, unsorted
func (s *Store) GetJobsByEmployer(employerID int) []Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := []Job{}
	for _, job := range s.jobs {
		if job.EmployerID == employerID {
			res = append(res, job)
		}
	}
	return res
}

// matchJob reports whether the job satisfies every active filter
func matchJob(job Job, f JobFilters, now time.Time) bool {
	if f.Search != "" && !matchSearch(job, f.Search) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Category != "" && job.Category != f.Category {
		return false
	}
	if len(f.JobTypes) > 0 && !contains(f.JobTypes, job.JobType) {
		return false
	}
	if len(f.ExperienceLevels) > 0 && !contains(f.ExperienceLevels, job.ExperienceLevel) {
		return false
	}
	if days := windowDays(f.DatePosted); days > 0 {
		cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
		if !job.PostedDate.After(cutoff) {
			return false
		}
	}
	if f.SalaryRange != "" && !matchSalary(job.Salary, f.SalaryRange) {
		return false
	}
	return true
}

// matchSearch checks the search term against title, company and description,
// case-folded, OR across the three fields
func matchSearch(job Job, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Company), term) ||
		strings.Contains(strings.ToLower(job.Description), term)
}

// windowDays maps a dateRange to its width in days; 0 means no constraint.
// Anything outside the four window values, including "all" and the zero
// enum, imposes no constraint.
func windowDays(r enums.DateRange) int {
	switch r {
	case enums.DateRangeLast24h:
		return 1
	case enums.DateRangeLast3d:
		return 3
	case enums.DateRangeLast7d:
		return 7
	case enums.DateRangeLast14d:
		return 14
	}
	return 0
}

// salaryRe extracts the first dollar-amount-like token from a salary text,
// e.g. "$50,000 - $70,000" -> "50,000"
var salaryRe = regexp.MustCompile(`\$\s*([\d,]*\d)`)

// nonDigitsRe strips everything but digits from a salary filter value
var nonDigitsRe = regexp.MustCompile(`\D`)

// matchSalary keeps jobs whose minimum advertised salary is numerically >=
// the filter threshold. Jobs with no salary text or no parseable dollar
// token are excluded while the filter is active. A filter value with no
// digits at all deactivates the filter.
func matchSalary(salary, filter string) bool {
	threshold, ok := parseSalaryThreshold(filter)
	if !ok {
		return true
	}
	minSalary, ok := parseMinSalary(salary)
	if !ok {
		return false
	}
	return minSalary >= threshold
}

func parseSalaryThreshold(filter string) (int, bool) {
	digits := nonDigitsRe.ReplaceAllString(filter, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseMinSalary(salary string) (int, bool) {
	m := salaryRe.FindStringSubmatch(salary)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
