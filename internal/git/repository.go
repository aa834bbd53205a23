package git

import (
	"bytes"
	"context"

	apperrors "bumptag/internal/errors"
	"bumptag/internal/models"
)

// Repository wraps the git operations for the project working tree rooted
// at root.
type Repository struct {
	executor models.Executor
	root     string
}

// NewRepository creates a repository handle for the given project root.
func NewRepository(executor models.Executor, root string) *Repository {
	return &Repository{
		executor: executor,
		root:     root,
	}
}

// EnsureClean verifies the working tree has no pending changes. Both the
// porcelain status and the diff shortstat must be empty: untracked files
// only appear in the former, unstaged edits in both. Any non-empty report
// aborts the command before a single descriptor byte is written.
func (r *Repository) EnsureClean(ctx context.Context) error {
	out, err := r.executor.Output(ctx, "git", r.args("status", "--porcelain"))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(out)) > 0 {
		return apperrors.NewDirtyRepositoryError(string(out))
	}

	out, err = r.executor.Output(ctx, "git", r.args("diff", "--shortstat"))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(out)) > 0 {
		return apperrors.NewDirtyRepositoryError(string(out))
	}
	return nil
}

// StageAll stages every change in the working tree.
func (r *Repository) StageAll(ctx context.Context) error {
	return r.executor.Run(ctx, "git", r.args("add", "."), "Staging descriptor changes")
}

// Commit records the staged changes with the given message.
func (r *Repository) Commit(ctx context.Context, message string) error {
	return r.executor.Run(ctx, "git", r.args("commit", "-m", message), "Committing version bump")
}

// Tag creates a lightweight tag at HEAD.
func (r *Repository) Tag(ctx context.Context, name string) error {
	return r.executor.Run(ctx, "git", r.args("tag", name), "Tagging "+name)
}

// args prefixes git arguments with -C so every command runs against the
// project root regardless of the invocation directory.
func (r *Repository) args(rest ...string) []string {
	return append([]string{"-C", r.root}, rest...)
}

// Ensure Repository implements the models.Repository interface
var _ models.Repository = (*Repository)(nil)
