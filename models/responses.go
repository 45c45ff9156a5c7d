package models

// ListResult is the envelope every list endpoint returns. Pages is
// ceil(Total/limit); zero when the collection matched nothing.
type ListResult struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
}

// PopulatedTask is a task with its category reference resolved to the full
// document. Returned by the single-task endpoints when the reference
// resolves; lists, and tasks with a dangling reference, carry the raw id.
type PopulatedTask struct {
	Task
	Category *TaskCategory `json:"category,omitempty"`
}

// FileInfo describes one stored attachment.
type FileInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
