// Package hosting wraps the GitHub CLI (gh) for session checks and
// repository creation.
package hosting

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mizutanix/repoinit/internal/debug"
)

// CommandFunc executes a command in dir and returns its combined output.
type CommandFunc func(dir string, name string, args ...string) (string, error)

func execCommand(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	debug.Debug("exec %s %s (dir=%s, err=%v)", name, strings.Join(args, " "), dir, err)
	return string(out), err
}

// Client issues gh subcommands from a fixed working directory.
type Client struct {
	// Dir is the working directory for every invocation.
	Dir string
	// Run executes the command; replaceable for testing.
	Run CommandFunc
}

// NewClient creates a gh client rooted at dir.
func NewClient(dir string) *Client {
	return &Client{Dir: dir, Run: execCommand}
}

// AuthStatus reports whether gh has an authenticated session.
// Only the exit status matters; output is ignored.
func (c *Client) AuthStatus() error {
	if _, err := c.Run(c.Dir, "gh", "auth", "status"); err != nil {
		return fmt.Errorf("gh session is not authenticated: %w", err)
	}
	return nil
}

// CreateRepo creates the remote repository from the working directory,
// pushes the local history, and leaves README generation to the caller.
func (c *Client) CreateRepo(name string, private bool) error {
	visibility := "--public"
	if private {
		visibility = "--private"
	}

	args := []string{
		"repo", "create", name,
		visibility,
		"--source=.",
		"--remote=origin",
		"--push",
		"--add-readme=false",
	}

	out, err := c.Run(c.Dir, "gh", args...)
	if err != nil {
		msg := strings.TrimSpace(out)
		if msg == "" {
			return fmt.Errorf("gh repo create failed: %w", err)
		}
		return fmt.Errorf("gh repo create failed: %w\n%s", err, msg)
	}
	return nil
}

// Login returns the authenticated user's login name via the gh API.
func (c *Client) Login() (string, error) {
	out, err := c.Run(c.Dir, "gh", "api", "user")
	if err != nil {
		return "", fmt.Errorf("failed to query authenticated user: %w", err)
	}

	var user struct {
		Login string `json:"login"`
	}
	if err := json.Unmarshal([]byte(out), &user); err != nil {
		return "", fmt.Errorf("failed to parse gh api user response: %w", err)
	}
	if user.Login == "" {
		return "", fmt.Errorf("gh api user response missing login")
	}
	return user.Login, nil
}

// RepoURL builds the browse URL for a repository owned by login.
func RepoURL(login, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s", login, name)
}
