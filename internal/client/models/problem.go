package models

// Difficulty buckets used by the catalog.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ProblemExample is a sample input/output pair attached to a problem.
type ProblemExample struct {
	ID          int    `json:"id"`
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Problem is a catalog entry as served by the backend.
type Problem struct {
	ID          int              `json:"id"`
	LeetcodeID  int              `json:"leetcode_id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Difficulty  string           `json:"difficulty"`
	Category    string           `json:"category"`
	Tags        []string         `json:"tags"`
	SuccessRate float64          `json:"success_rate"`
	IsPremium   bool             `json:"is_premium"`
	Examples    []ProblemExample `json:"examples,omitempty"`
}

// ProblemFilter holds the optional query parameters of the problem list
// endpoint. Zero values are omitted from the request.
type ProblemFilter struct {
	Difficulty string
	Tag        string
	Category   string
	Search     string
	Page       int
}
