package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetcherEmptyEndpoint(t *testing.T) {
	var f Fetcher[string]

	require.False(t, f.Start(""), "empty endpoint must not fetch")
	require.False(t, f.Loading())
	require.NotNil(t, f.Items())
	require.Empty(t, f.Items())
	require.Empty(t, f.Err())
}

func TestFetcherNoSpuriousRefetch(t *testing.T) {
	var f Fetcher[string]

	require.True(t, f.Start("projects"), "first request fetches")
	f.Succeed("projects", []string{"a"})

	require.False(t, f.Start("projects"), "same endpoint must not refetch")
	require.Equal(t, []string{"a"}, f.Items())

	require.True(t, f.Start("bids"), "new endpoint fetches again")
	require.True(t, f.Loading())
}

func TestFetcherFailureClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "401",
			err:  &APIError{Status: 401, Message: "invalid bearer token"},
			want: "Authentication failed. Your session may have expired.",
		},
		{
			name: "422",
			err:  &APIError{Status: 422, Message: "invalid request format"},
			want: "Invalid request format for projects.",
		},
		{
			name: "server detail",
			err:  &APIError{Status: 500, Message: "disk full"},
			want: "Failed to load projects: disk full",
		},
		{
			name: "network",
			err:  errors.New("connection refused"),
			want: "Failed to load projects. Please try again.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f Fetcher[string]
			f.Start("projects")
			f.Fail("projects", tc.err)
			require.Equal(t, tc.want, f.Err())
			require.False(t, f.Loading(), "loading clears on failure")
		})
	}
}

func TestFetcherClearsErrorOnNewCycle(t *testing.T) {
	var f Fetcher[string]

	f.Start("projects")
	f.Fail("projects", &APIError{Status: 500})
	require.NotEmpty(t, f.Err())

	require.True(t, f.Start("bids"))
	require.Empty(t, f.Err(), "new cycle clears prior error")
}

func TestFetcherDropsStaleCompletions(t *testing.T) {
	var f Fetcher[string]

	f.Start("projects")
	f.Start("bids")

	f.Succeed("projects", []string{"stale"})
	require.True(t, f.Loading(), "stale success is ignored")

	f.Fail("projects", &APIError{Status: 500})
	require.Empty(t, f.Err(), "stale failure is ignored")

	f.Succeed("bids", []string{"fresh"})
	require.Equal(t, []string{"fresh"}, f.Items())
}

func TestFetcherSetMutatesCache(t *testing.T) {
	var f Fetcher[string]

	f.Start("projects")
	f.Succeed("projects", []string{"a", "b"})

	f.Set([]string{"new", "a", "b"})
	require.Equal(t, []string{"new", "a", "b"}, f.Items())

	f.Set(nil)
	require.NotNil(t, f.Items())
	require.Empty(t, f.Items())
}

func TestFetcherReset(t *testing.T) {
	var f Fetcher[string]

	f.Start("projects")
	f.Succeed("projects", []string{"a"})
	f.Reset()

	require.True(t, f.Start("projects"), "reset allows the same endpoint to fetch again")
}
