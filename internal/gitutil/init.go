// Package gitutil initializes a git repository in the generated project.
package gitutil

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// InitRepo creates an empty git repository at root. Initialization is
// best-effort from the caller's perspective: the generated tree is complete
// and usable without it.
func InitRepo(root string) error {
	if _, err := git.PlainInit(root, false); err != nil {
		return fmt.Errorf("failed to init git repository: %w", err)
	}
	return nil
}
