// Package store implements the in-memory data store for the job board.
// All records live for the lifetime of the process; ids are assigned
// sequentially per entity type starting at 1 and never reused.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/jobdesk/jobdesk/app/store/enums"
)

// ErrNotFound returned by lookup operations when the id has no record
var ErrNotFound = errors.New("not found")

// ErrDuplicateUsername returned by CreateUser when the username is taken
var ErrDuplicateUsername = errors.New("username already taken")

// User represents a registered account, either an employer or a jobseeker.
// Password holds the bcrypt hash, never the plain text, and is not serialized.
type User struct {
	ID          int            `json:"id"`
	Username    string         `json:"username"`
	Password    string         `json:"-"`
	Email       string         `json:"email"`
	UserType    enums.UserType `json:"userType"`
	CompanyName string         `json:"companyName,omitempty"`
	Location    string         `json:"location,omitempty"`
	Bio         string         `json:"bio,omitempty"`
}

// Job represents a posted job opening. EmployerID is a foreign key to User
// but is not validated, matching the rest of the model.
type Job struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements"`
	Salary          string    `json:"salary,omitempty"`
	JobType         string    `json:"jobType"`
	Category        string    `json:"category"`
	ExperienceLevel string    `json:"experienceLevel"`
	Skills          []string  `json:"skills"`
	PostedDate      time.Time `json:"postedDate"`
	EmployerID      int       `json:"employerId"`
}

// Application represents a submitted job application. Status is a free string
// on purpose: UpdateApplicationStatus accepts values outside the recognized
// enum, only creation validates against it.
type Application struct {
	ID          int       `json:"id"`
	JobID       int       `json:"jobId"`
	UserID      int       `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"appliedDate"`
}

// Category represents a job category with a denormalized job counter.
// JobCount is increment-only and seeded with demo values, so it can drift
// from the true number of jobs; no code path recomputes it.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	JobCount int    `json:"jobCount"`
}

// Store holds all entity collections. Records are kept in id-indexed slices
// (record for id N lives at index N-1), which gives sequential ids and
// insertion-order listings for free since nothing is ever deleted.
type Store struct {
	mu           sync.RWMutex
	users        []User
	usernames    map[string]int // username -> user id, for atomic uniqueness check
	jobs         []Job
	applications []Application
	categories   []Category
}

// New creates a store seeded with the fixed demo categories. The seed runs
// before any other operation, so category ids 1..8 are stable.
func New() *Store {
	s := &Store{usernames: map[string]int{}}
	for _, c := range seedCategories {
		s.CreateCategory(c)
	}
	return s
}

// seedCategories are demo data; the jobCount values are arbitrary and
// unrelated to actual job records.
var seedCategories = []Category{
	{Name: "Technology", Icon: "laptop", JobCount: 120},
	{Name: "Design", Icon: "pen-tool", JobCount: 45},
	{Name: "Marketing", Icon: "megaphone", JobCount: 38},
	{Name: "Sales", Icon: "trending-up", JobCount: 52},
	{Name: "Finance", Icon: "dollar-sign", JobCount: 29},
	{Name: "Healthcare", Icon: "heart-pulse", JobCount: 61},
	{Name: "Education", Icon: "book-open", JobCount: 24},
	{Name: "Engineering", Icon: "wrench", JobCount: 73},
}

// CreateUser assigns the next user id and stores the record. The uniqueness
// check and the insert happen under one lock, so two concurrent creates with
// the same username cannot both succeed.
func (s *Store) CreateUser(user User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernames[user.Username]; ok {
		return User{}, ErrDuplicateUsername
	}

	user.ID = len(s.users) + 1
	s.users = append(s.users, user)
	s.usernames[user.Username] = user.ID
	return user, nil
}

// GetUser returns the user with the given id or ErrNotFound
func (s *Store) GetUser(id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.users) {
		return User{}, ErrNotFound
	}
	return s.users[id-1], nil
}

// GetUserByUsername returns the user with the exact (case-sensitive) username
// or ErrNotFound
func (s *Store) GetUserByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return s.users[id-1], nil
}

// GetCategories returns all categories in insertion order
func (s *Store) GetCategories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]Category, len(s.categories))
	copy(res, s.categories)
	return res
}

// GetCategory returns the category with the given id or ErrNotFound
func (s *Store) GetCategory(id int) (Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.categories) {
		return Category{}, ErrNotFound
	}
	return s.categories[id-1], nil
}

// CreateCategory assigns the next category id and stores the record
func (s *Store) CreateCategory(category Category) Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = len(s.categories) + 1
	s.categories = append(s.categories, category)
	return category
}

// IncrementCategoryJobCount increments jobCount by one and returns the
// updated record, or ErrNotFound if the id has no record
func (s *Store) IncrementCategoryJobCount(id int) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 1 || id > len(s.categories) {
		return Category{}, ErrNotFound
	}
	s.categories[id-1].JobCount++
	return s.categories[id-1], nil
}

// Counts reports the number of records per entity type, for the status endpoint
func (s *Store) Counts() (users, jobs, applications, categories int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.jobs), len(s.applications), len(s.categories)
}
