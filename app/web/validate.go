package web

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/jobdesk/jobdesk/app/store/enums"
	"github.com/jobdesk/jobdesk/app/web/request"
)

// violation is a single field-level schema failure
type violation struct {
	field string
	msg   string
}

// formatViolations folds a violation list into one human-readable message,
// e.g. `Validation error: username is required; email must be a valid email address`
func formatViolations(violations []violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.field, v.msg))
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

func required(violations []violation, field, value string) []violation {
	if value == "" {
		return append(violations, violation{field: field, msg: "is required"})
	}
	return violations
}

func validEmail(violations []violation, field, value string) []violation {
	if value == "" {
		return violations // presence is checked separately
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return append(violations, violation{field: field, msg: "must be a valid email address"})
	}
	return violations
}

func validateCreateUser(req request.CreateUser) []violation {
	var violations []violation
	violations = required(violations, "username", req.Username)
	violations = required(violations, "password", req.Password)
	violations = required(violations, "email", req.Email)
	violations = validEmail(violations, "email", req.Email)
	violations = required(violations, "userType", req.UserType)
	if req.UserType != "" {
		if _, err := enums.ParseUserType(req.UserType); err != nil {
			violations = append(violations, violation{field: "userType", msg: "must be one of employer, jobseeker"})
		}
	}
	return violations
}

func validateCreateJob(req request.CreateJob) []violation {
	var violations []violation
	violations = required(violations, "title", req.Title)
	violations = required(violations, "company", req.Company)
	violations = required(violations, "location", req.Location)
	violations = required(violations, "description", req.Description)
	violations = required(violations, "requirements", req.Requirements)
	violations = required(violations, "jobType", req.JobType)
	violations = required(violations, "category", req.Category)
	violations = required(violations, "experienceLevel", req.ExperienceLevel)
	switch req.ExperienceLevel {
	case "", "entry", "mid", "senior":
	default:
		violations = append(violations, violation{field: "experienceLevel", msg: "must be one of entry, mid, senior"})
	}
	if req.Skills == nil {
		violations = append(violations, violation{field: "skills", msg: "is required"})
	}
	if req.EmployerID == 0 {
		violations = append(violations, violation{field: "employerId", msg: "is required"})
	}
	return violations
}

func validateCreateApplication(req request.CreateApplication) []violation {
	var violations []violation
	if req.JobID == 0 {
		violations = append(violations, violation{field: "jobId", msg: "is required"})
	}
	if req.UserID == 0 {
		violations = append(violations, violation{field: "userId", msg: "is required"})
	}
	violations = required(violations, "name", req.Name)
	violations = required(violations, "email", req.Email)
	violations = validEmail(violations, "email", req.Email)
	violations = required(violations, "phone", req.Phone)
	violations = required(violations, "resume", req.Resume)
	if req.Status != "" {
		if _, err := enums.ParseApplicationStatus(req.Status); err != nil {
			violations = append(violations,
				violation{field: "status", msg: "must be one of applied, reviewed, interview, rejected, hired"})
		}
	}
	return violations
}

func validateCreateCategory(req request.CreateCategory) []violation {
	var violations []violation
	violations = required(violations, "name", req.Name)
	violations = required(violations, "icon", req.Icon)
	return violations
}
