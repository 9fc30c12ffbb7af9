// Package request contains the JSON request payload types for the API.
// The same structs feed the jsonschema generator, so field tags and
// descriptions here define the published API schema.
package request

import "time"

// CreateUser is the body of POST /api/users
type CreateUser struct {
	Username    string `json:"username" jsonschema:"required,description=Unique case-sensitive account name"`
	Password    string `json:"password" jsonschema:"required"`
	Email       string `json:"email" jsonschema:"required,format=email"`
	UserType    string `json:"userType" jsonschema:"required,enum=employer,enum=jobseeker"`
	CompanyName string `json:"companyName,omitempty"`
	Location    string `json:"location,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// CreateJob is the body of POST /api/jobs
type CreateJob struct {
	Title           string     `json:"title" jsonschema:"required"`
	Company         string     `json:"company" jsonschema:"required"`
	Location        string     `json:"location" jsonschema:"required"`
	Description     string     `json:"description" jsonschema:"required"`
	Requirements    string     `json:"requirements" jsonschema:"required"`
	Salary          string     `json:"salary,omitempty" jsonschema:"description=Free text salary or salary range"`
	JobType         string     `json:"jobType" jsonschema:"required"`
	Category        string     `json:"category" jsonschema:"required,description=Should match an existing category name"`
	ExperienceLevel string     `json:"experienceLevel" jsonschema:"required,enum=entry,enum=mid,enum=senior"`
	Skills          []string   `json:"skills" jsonschema:"required"`
	PostedDate      *time.Time `json:"postedDate,omitempty" jsonschema:"description=Defaults to creation time"`
	EmployerID      int        `json:"employerId" jsonschema:"required"`
}

// CreateApplication is the body of POST /api/applications
type CreateApplication struct {
	JobID       int        `json:"jobId" jsonschema:"required"`
	UserID      int        `json:"userId" jsonschema:"required"`
	Name        string     `json:"name" jsonschema:"required"`
	Email       string     `json:"email" jsonschema:"required,format=email"`
	Phone       string     `json:"phone" jsonschema:"required"`
	Resume      string     `json:"resume" jsonschema:"required,description=URL or inline text"`
	CoverLetter string     `json:"coverLetter,omitempty"`
	Status      string     `json:"status,omitempty" jsonschema:"enum=applied,enum=reviewed,enum=interview,enum=rejected,enum=hired,description=Defaults to applied"`
	AppliedDate *time.Time `json:"appliedDate,omitempty" jsonschema:"description=Defaults to creation time"`
}

// CreateCategory is the body of POST /api/categories
type CreateCategory struct {
	Name     string `json:"name" jsonschema:"required"`
	Icon     string `json:"icon" jsonschema:"required"`
	JobCount int    `json:"jobCount,omitempty"`
}

// UpdateApplicationStatus is the body of PATCH /api/applications/{id}/status
type UpdateApplicationStatus struct {
	Status string `json:"status" jsonschema:"required"`
}
