package models

import "time"

// Submission statuses assigned by the backend's grader.
const (
	StatusAccepted          = "accepted"
	StatusWrongAnswer       = "wrong_answer"
	StatusTimeLimitExceeded = "time_limit_exceeded"
	StatusRuntimeError      = "runtime_error"
	StatusPending           = "pending"
)

// Submission is a graded solution attempt as served by the backend.
type Submission struct {
	ID             int        `json:"id"`
	Problem        string     `json:"problem"`
	ProblemDetails *Problem   `json:"problem_details,omitempty"`
	Language       string     `json:"language"`
	CodeContent    string     `json:"code_content"`
	Status         string     `json:"status"`
	Runtime        *float64   `json:"runtime"`      // milliseconds
	MemoryUsage    *float64   `json:"memory_usage"` // MB
	SubmittedAt    *time.Time `json:"submission_time"`
}

// NewSubmission is the body of a submission creation request. Grading is
// entirely the backend's concern; the client only ships the code.
type NewSubmission struct {
	Problem     string `json:"problem"`
	Language    string `json:"language"`
	CodeContent string `json:"code_content"`
}

// SubmissionFilter holds the optional query parameters of the submission
// list endpoint.
type SubmissionFilter struct {
	Problem  string
	Status   string
	Language string
	Page     int
}
