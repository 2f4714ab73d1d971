// Package gitrepo issues commits against a local git working tree by
// shelling out to the git binary, the same way the contribution graph
// itself is fed: empty commits whose author and committer dates are
// pinned to noon UTC on the target day.
package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Repo is a handle on a git working tree.
type Repo struct {
	dir string
}

// Open verifies that dir is inside a git work tree.
func Open(ctx context.Context, dir string) (*Repo, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s is not inside a git work tree (run git init or cd into a repository): %w", dir, err)
	}
	return &Repo{dir: dir}, nil
}

// Dir returns the working-tree path the repo was opened with.
func (r *Repo) Dir() string {
	return r.dir
}

// Stamp formats day as the date string handed to git. Noon UTC keeps
// the commit on the intended day in every timezone the graph renders in.
func Stamp(day time.Time) string {
	return day.Format("2006-01-02") + " 12:00:00 +0000"
}

// CommitEmpty creates one empty commit dated to day on the current
// branch. Both GIT_AUTHOR_DATE and GIT_COMMITTER_DATE are set; the
// contribution graph reads the committer date.
func (r *Repo) CommitEmpty(ctx context.Context, day time.Time, message string) error {
	stamp := Stamp(day)
	cmd := exec.CommandContext(ctx, "git", "commit", "--allow-empty", "-m", message)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE="+stamp,
		"GIT_COMMITTER_DATE="+stamp,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("git commit for %s failed: %s", day.Format("2006-01-02"), detail)
		}
		return fmt.Errorf("git commit for %s failed: %w", day.Format("2006-01-02"), err)
	}
	return nil
}
