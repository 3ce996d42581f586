// Package git shells out to the git command-line tool.
//
// Every invocation captures combined stdout/stderr; failure output is the
// contract the recovery rules in this package key on.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mizutanix/repoinit/internal/debug"
)

// CommandFunc executes a command in dir and returns its combined output.
type CommandFunc func(dir string, name string, args ...string) (string, error)

// execCommand is the default CommandFunc backed by os/exec.
func execCommand(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	debug.Debug("exec %s %s (dir=%s, err=%v)", name, strings.Join(args, " "), dir, err)
	return string(out), err
}

// CommandError is a failed git invocation with its captured output.
type CommandError struct {
	Args   []string
	Output string
	Err    error
}

// Error returns the failure including the command's own output.
func (e *CommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("git %s: %v\n%s", strings.Join(e.Args, " "), e.Err, out)
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes git subcommands in a fixed working directory.
type Runner struct {
	// Dir is the working directory for every invocation.
	Dir string
	// Run executes the command; replaceable for testing.
	Run CommandFunc
}

// NewRunner creates a runner for the given directory.
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir, Run: execCommand}
}

// git runs a git subcommand and wraps failures in a CommandError.
func (r *Runner) git(args ...string) (string, error) {
	out, err := r.Run(r.Dir, "git", args...)
	if err != nil {
		return out, &CommandError{Args: args, Output: out, Err: err}
	}
	return out, nil
}

// Init initializes a repository in the runner's directory.
func (r *Runner) Init() error {
	_, err := r.git("init")
	return err
}

// stage stages the full tree, excluding the given top-level paths.
func (r *Runner) stage(excludes []string) (string, error) {
	args := []string{"add", "-A", "--", "."}
	for _, path := range excludes {
		args = append(args, ":(exclude)"+path)
	}
	return r.git(args...)
}

// commit records a commit with the given message.
func (r *Runner) commit(message string) (string, error) {
	return r.git("commit", "-m", message)
}

// configGlobalAdd appends a value to a multi-valued global config key.
// Idempotent in effect: git tolerates duplicate safe.directory entries.
func (r *Runner) configGlobalAdd(key, value string) error {
	_, err := r.git("config", "--global", "--add", key, value)
	return err
}

// configLocal sets a repository-scoped config value.
func (r *Runner) configLocal(key, value string) error {
	_, err := r.git("config", key, value)
	return err
}
