package model

// Result is the envelope returned by every delivery operation. A failed
// business outcome is a Result with Success=false, not an error.
type Result[T any] struct {
	Success         bool   `json:"success"`
	Data            *T     `json:"data"`
	Message         string `json:"message,omitempty"`
	ExecutionTimeMs *int64 `json:"execution_time_ms,omitempty"`
}

func Succeeded[T any](data *T, message string) *Result[T] {
	return &Result[T]{Success: true, Data: data, Message: message}
}

func Failed[T any](message string) *Result[T] {
	return &Result[T]{Success: false, Message: message}
}

// WithExecutionTime records how long the underlying store call took.
func (r *Result[T]) WithExecutionTime(ms int64) *Result[T] {
	r.ExecutionTimeMs = &ms
	return r
}
