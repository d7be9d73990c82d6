package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testRepo struct {
	calls   int
	results []Result
	err     error
}

func (r *testRepo) Search(ctx context.Context, term string) ([]Result, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.results, nil
}

func TestService_Search_EmptyTermSkipsRepo(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, time.Minute)

	for _, term := range []string{"", "   "} {
		got, err := svc.Search(context.Background(), term)
		require.NoError(t, err)
		require.Empty(t, got)
	}
	require.Zero(t, repo.calls, "empty term must not hit the repository")
}

func TestService_Search_CachesByNormalizedTerm(t *testing.T) {
	repo := &testRepo{results: []Result{{TutorName: "Ana Silva", PetName: "Rex", LuckyNumber: 1}}}
	svc := NewService(repo, time.Minute)

	got, err := svc.Search(context.Background(), "Rex")
	require.NoError(t, err)
	require.Len(t, got, 1)

	// mismo término con otra capitalización y espacios: sale del cache
	got, err = svc.Search(context.Background(), "  rex ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 1, repo.calls)
}

func TestService_Search_RepoErrorIsNotCached(t *testing.T) {
	repo := &testRepo{err: errors.New("boom")}
	svc := NewService(repo, time.Minute)

	_, err := svc.Search(context.Background(), "rex")
	require.Error(t, err)

	repo.err = nil
	repo.results = []Result{{PetName: "Rex"}}
	got, err := svc.Search(context.Background(), "rex")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 2, repo.calls)
}

func TestService_Search_NilRepoResultBecomesEmptySlice(t *testing.T) {
	repo := &testRepo{results: nil}
	svc := NewService(repo, time.Minute)

	got, err := svc.Search(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}
