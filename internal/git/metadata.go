package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// RepositoryMetadata describes the revision a linter report was produced for.
type RepositoryMetadata struct {
	BranchName         *string
	CommitHash         *string
	RepositoryFullName *string
	RepoRootFolder     string
}

// CollectRepositoryMetadata opens the git repository containing sourceFolder
// and reads its branch, HEAD commit and origin URL.
func CollectRepositoryMetadata(sourceFolder string) (*RepositoryMetadata, error) {
	if sourceFolder == "" {
		return nil, fmt.Errorf("source folder is not set")
	}
	if absSource, err := filepath.Abs(sourceFolder); err == nil {
		sourceFolder = absSource
	}

	repo, err := git.PlainOpenWithOptions(sourceFolder, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository for %q: %w", sourceFolder, err)
	}

	md := &RepositoryMetadata{
		RepoRootFolder: filepath.Clean(sourceFolder),
	}
	if wt, err := repo.Worktree(); err == nil {
		md.RepoRootFolder = filepath.Clean(wt.Filesystem.Root())
	}

	if head, err := repo.Head(); err == nil {
		if head.Name().IsBranch() {
			branchName := head.Name().Short()
			md.BranchName = &branchName
		}
		hash := head.Hash().String()
		md.CommitHash = &hash
	}

	if remote, err := repo.Remote("origin"); err == nil {
		if cfg := remote.Config(); cfg != nil && len(cfg.URLs) > 0 {
			repositoryFullName := strings.TrimSuffix(cfg.URLs[0], ".git")
			md.RepositoryFullName = &repositoryFullName
		}
	}

	return md, nil
}

// Describe renders the metadata as "repository branch @ commit", skipping unknown parts.
func (md *RepositoryMetadata) Describe() string {
	if md == nil {
		return ""
	}

	var parts []string
	if md.RepositoryFullName != nil {
		parts = append(parts, *md.RepositoryFullName)
	}
	if md.BranchName != nil {
		parts = append(parts, *md.BranchName)
	}
	if md.CommitHash != nil {
		hash := *md.CommitHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		parts = append(parts, "@ "+hash)
	}
	return strings.Join(parts, " ")
}
