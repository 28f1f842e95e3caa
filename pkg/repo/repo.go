// Package repo handles repository acquisition and source file discovery
package repo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// validRemotePattern matches safe git remote URLs and paths
var validRemotePattern = regexp.MustCompile(`^[a-zA-Z0-9@:/._~+-]+$`)

// dangerousShellChars contains characters that must be rejected to prevent shell injection
var dangerousShellChars = []string{"|", "&", ";", "$", "(", ")", "`", "{", "}", ">", "<", "\n", "\t", " "}

// sanitizeRemote validates that a git remote is safe to use in commands
func sanitizeRemote(remote string) error {
	if remote == "" {
		return fmt.Errorf("remote url is empty")
	}
	for _, ch := range dangerousShellChars {
		if strings.Contains(remote, ch) {
			return fmt.Errorf("invalid remote url: contains dangerous character %q", ch)
		}
	}
	if !validRemotePattern.MatchString(remote) {
		return fmt.Errorf("invalid remote url: contains invalid characters")
	}
	return nil
}

// Clone clones the repository at url into path using the git CLI.
func Clone(ctx context.Context, url, path string) error {
	if err := sanitizeRemote(url); err != nil {
		return errors.RepoError("invalid repository url", err)
	}

	cmd := exec.CommandContext(ctx, "git", "clone", url, path)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.RepoError("git clone cancelled", ctx.Err())
		}
		return errors.RepoError(fmt.Sprintf("git clone failed: %s", strings.TrimSpace(stderr.String())), err)
	}
	return nil
}

// Exists reports whether path is an existing directory.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
