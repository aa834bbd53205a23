package git

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bumptag/internal/errors"
)

// fakeExecutor records the commands it is asked to run and serves canned
// output keyed by the joined command line.
type fakeExecutor struct {
	outputs map[string]string
	runs    []string
	queries []string
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{outputs: make(map[string]string)}
}

func (f *fakeExecutor) Run(_ context.Context, name string, args []string, _ string) error {
	f.runs = append(f.runs, commandLine(name, args))
	return nil
}

func (f *fakeExecutor) Output(_ context.Context, name string, args []string) ([]byte, error) {
	line := commandLine(name, args)
	f.queries = append(f.queries, line)
	return []byte(f.outputs[line]), nil
}

func TestEnsureClean_CleanTree(t *testing.T) {
	executor := newFakeExecutor()
	repo := NewRepository(executor, "/repo")

	err := repo.EnsureClean(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"git -C /repo status --porcelain",
		"git -C /repo diff --shortstat",
	}, executor.queries)
}

func TestEnsureClean_WhitespaceOnlyOutputIsClean(t *testing.T) {
	executor := newFakeExecutor()
	executor.outputs["git -C /repo status --porcelain"] = "\n"
	repo := NewRepository(executor, "/repo")

	assert.NoError(t, repo.EnsureClean(context.Background()))
}

func TestEnsureClean_UntrackedFiles(t *testing.T) {
	executor := newFakeExecutor()
	executor.outputs["git -C /repo status --porcelain"] = "?? junk.txt\n"
	repo := NewRepository(executor, "/repo")

	err := repo.EnsureClean(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsDirtyRepositoryError(err))
	assert.Contains(t, err.Error(), "junk.txt")

	// The diff query never runs once the status check fails.
	assert.Equal(t, []string{"git -C /repo status --porcelain"}, executor.queries)
}

func TestEnsureClean_PendingDiff(t *testing.T) {
	executor := newFakeExecutor()
	executor.outputs["git -C /repo diff --shortstat"] = " 1 file changed, 2 insertions(+)\n"
	repo := NewRepository(executor, "/repo")

	err := repo.EnsureClean(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsDirtyRepositoryError(err))
}

func TestStageCommitTag_CommandLines(t *testing.T) {
	executor := newFakeExecutor()
	repo := NewRepository(executor, "/repo")
	ctx := context.Background()

	require.NoError(t, repo.StageAll(ctx))
	require.NoError(t, repo.Commit(ctx, `"Bump build to 5.19.0.43."`))
	require.NoError(t, repo.Tag(ctx, "5.19.0.43"))

	require.Len(t, executor.runs, 3)
	assert.Equal(t, "git -C /repo add .", executor.runs[0])
	assert.True(t, strings.HasPrefix(executor.runs[1], "git -C /repo commit -m"))
	assert.Contains(t, executor.runs[1], "Bump build to 5.19.0.43.")
	assert.Equal(t, "git -C /repo tag 5.19.0.43", executor.runs[2])
}
