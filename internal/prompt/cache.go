package prompt

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// repoCache holds the opened repository handle for one render so
// GIT_BRANCH and GIT_COMMIT share a single lookup instead of opening
// the repository twice (spec.md §4.D). It is scoped to a single
// Render call and discarded afterward.
type repoCache struct {
	dir     string
	loaded  bool
	repo    *git.Repository
	head    *plumbing.Reference
	headErr error
}

func newRepoCache(dir string) *repoCache {
	return &repoCache{dir: dir}
}

func (c *repoCache) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	repo, err := git.PlainOpenWithOptions(c.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		c.headErr = err
		return
	}
	c.repo = repo
	c.head, c.headErr = repo.Head()
}

// branch returns the current branch's short name, or "" if the
// directory isn't inside a repository (or is in detached HEAD).
func (c *repoCache) branch() string {
	c.load()
	if c.headErr != nil || c.head == nil || !c.head.Name().IsBranch() {
		return ""
	}
	return c.head.Name().Short()
}

// commit returns the current HEAD commit hash, or "" if unavailable.
func (c *repoCache) commit() string {
	c.load()
	if c.headErr != nil || c.head == nil {
		return ""
	}
	return c.head.Hash().String()
}
