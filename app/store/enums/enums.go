// Package enums provides type-safe enumeration types for the job board.
//
// The enum types are defined as unexported integer types (e.g., userType int)
// in this file, and the go:generate directives invoke the go-pkgz/enum
// generator to create the corresponding exported types with all necessary
// methods in separate files (*_enum.go).
//
// For each enum type, the generator creates:
//   - An exported struct type (e.g., UserType) with name and value fields
//   - String() method for string representation
//   - Parse functions (e.g., ParseUserType) for string-to-enum conversion
//   - Database methods (Scan/Value) for SQL compatibility
//   - JSON marshaling methods (MarshalText/UnmarshalText)
//   - Exported constants for each enum value (e.g., UserTypeEmployer)
//
// To regenerate the enum types after modifications:
//
//	go generate ./app/store/enums
//
// Note: The unexported type definitions below are only used by the generator.
// All actual code should use the generated exported types.
package enums

//go:generate go run github.com/go-pkgz/enum@latest -type userType -lower
//go:generate go run github.com/go-pkgz/enum@latest -type applicationStatus -lower
//go:generate go run github.com/go-pkgz/enum@latest -type dateRange -lower

// userType represents the account type of a registered user.
// This is an unexported type used only as input for the code generator.
// Use the exported UserType type and its constants in actual code.
type userType int

const (
	userTypeEmployer userType = iota
	userTypeJobseeker
)

// applicationStatus represents the recognized states of a job application.
// This is an unexported type used only as input for the code generator.
// Use the exported ApplicationStatus type and its constants in actual code.
type applicationStatus int

const (
	applicationStatusApplied applicationStatus = iota
	applicationStatusReviewed
	applicationStatusInterview
	applicationStatusRejected
	applicationStatusHired
)

// dateRange represents posted-date windows for job search filtering.
// This is an unexported type used only as input for the code generator.
// Use the exported DateRange type and its constants in actual code.
type dateRange int

const (
	dateRangeAll dateRange = iota
	dateRangeLast24h
	dateRangeLast3d
	dateRangeLast7d
	dateRangeLast14d
)
