package types

// TabStatus is the terminal state of one tab fetch.
type TabStatus string

const (
	StatusLive     TabStatus = "success-live"
	StatusFallback TabStatus = "success-fallback"
	StatusError    TabStatus = "error"
)

// TabResult is the provenance-tagged envelope every tab endpoint returns.
// Data carries the normalized records on success and is nil on error.
type TabResult[T any] struct {
	Status     TabStatus `json:"status"`
	Data       T         `json:"data,omitempty"`
	IsFallback bool      `json:"isFallback"`
	Error      string    `json:"error,omitempty"`
}

// Live wraps data that came from the provider unmodified.
func Live[T any](data T) TabResult[T] {
	return TabResult[T]{Status: StatusLive, Data: data}
}

// Fallback wraps deterministic sample data with the provenance flag set.
func Fallback[T any](data T) TabResult[T] {
	return TabResult[T]{Status: StatusFallback, Data: data, IsFallback: true}
}

// Failed carries a user-facing message and no data.
func Failed[T any](msg string) TabResult[T] {
	return TabResult[T]{Status: StatusError, Error: msg}
}
