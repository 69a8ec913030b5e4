package client

import (
	"errors"
	"fmt"
)

// FetchState tracks where a collection load stands.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchLoading
	FetchSuccess
	FetchFailure
)

// Fetcher loads one remote collection per endpoint change. It holds the
// cached items, the loading flag, and the last error message, and it
// guarantees that asking for the same endpoint twice does not trigger a
// second network call.
type Fetcher[T any] struct {
	state    FetchState
	endpoint string
	items    []T
	errMsg   string
}

// Start decides whether endpoint needs a network call. An empty endpoint
// reports success with an empty collection immediately. A repeated
// endpoint keeps whatever state the previous cycle reached. When a call
// is needed, the fetcher moves to loading and clears any prior error.
func (f *Fetcher[T]) Start(endpoint string) bool {
	if endpoint == "" {
		f.endpoint = ""
		f.state = FetchSuccess
		f.items = []T{}
		f.errMsg = ""
		return false
	}
	if endpoint == f.endpoint && f.state != FetchIdle {
		return false
	}

	f.endpoint = endpoint
	f.state = FetchLoading
	f.errMsg = ""
	return true
}

// Succeed stores the loaded collection for endpoint. A stale completion
// for a different endpoint is dropped.
func (f *Fetcher[T]) Succeed(endpoint string, items []T) {
	if endpoint != f.endpoint {
		return
	}
	if items == nil {
		items = []T{}
	}
	f.state = FetchSuccess
	f.items = items
	f.errMsg = ""
}

// Fail records a classified error message for endpoint. Stale failures
// for a different endpoint are dropped.
func (f *Fetcher[T]) Fail(endpoint string, err error) {
	if endpoint != f.endpoint {
		return
	}
	f.state = FetchFailure
	f.errMsg = ClassifyError(endpoint, err)
}

// Items returns the cached collection.
func (f *Fetcher[T]) Items() []T {
	return f.items
}

// Set replaces the cached collection, for mutations applied locally
// after a create/update/delete round trip.
func (f *Fetcher[T]) Set(items []T) {
	if items == nil {
		items = []T{}
	}
	f.items = items
}

// Loading reports whether a fetch cycle is in flight.
func (f *Fetcher[T]) Loading() bool {
	return f.state == FetchLoading
}

// Err returns the last failure message, or "" when there is none.
func (f *Fetcher[T]) Err() string {
	return f.errMsg
}

// Reset returns the fetcher to idle so the next Start fetches again,
// used on logout.
func (f *Fetcher[T]) Reset() {
	*f = Fetcher[T]{}
}

// ClassifyError turns a transport or API error into the message shown
// in place of data.
func ClassifyError(endpoint string, err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == 401:
			return "Authentication failed. Your session may have expired."
		case apiErr.Status == 422:
			return fmt.Sprintf("Invalid request format for %s.", endpoint)
		case apiErr.Message != "":
			return fmt.Sprintf("Failed to load %s: %s", endpoint, apiErr.Message)
		}
	}
	return fmt.Sprintf("Failed to load %s. Please try again.", endpoint)
}
