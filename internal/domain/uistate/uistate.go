// Package uistate provides the loading/success/error wrapper used by screens.
package uistate

// Status is the tag of a UiState.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

// UiState is a tagged variant over {Loading, Success(data), Error(reason)}.
// The zero value is Loading.
type UiState[T any] struct {
	status Status
	data   T
	err    error
}

// Loading returns a pending state.
func Loading[T any]() UiState[T] {
	return UiState[T]{status: StatusLoading}
}

// Success wraps resolved data.
func Success[T any](data T) UiState[T] {
	return UiState[T]{status: StatusSuccess, data: data}
}

// Failure wraps an error reason.
func Failure[T any](err error) UiState[T] {
	return UiState[T]{status: StatusError, err: err}
}

// Status returns the tag.
func (s UiState[T]) Status() Status { return s.status }

// IsLoading reports whether the state is pending.
func (s UiState[T]) IsLoading() bool { return s.status == StatusLoading }

// IsSuccess reports whether data is available.
func (s UiState[T]) IsSuccess() bool { return s.status == StatusSuccess }

// IsError reports whether the state is a failure.
func (s UiState[T]) IsError() bool { return s.status == StatusError }

// Data returns the data and whether the state is a success.
func (s UiState[T]) Data() (T, bool) {
	return s.data, s.status == StatusSuccess
}

// Err returns the failure reason, or nil.
func (s UiState[T]) Err() error { return s.err }

// SuccessOr returns the data on success and fallback otherwise.
func (s UiState[T]) SuccessOr(fallback T) T {
	if s.status == StatusSuccess {
		return s.data
	}
	return fallback
}
