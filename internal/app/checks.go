package app

import "os/exec"

// requiredTools are the external executables the pipeline shells out to,
// paired with remediation hints for the MissingDependency message.
var requiredTools = []struct {
	name string
	hint string
}{
	{"git", "install git from https://git-scm.com"},
	{"gh", "install the GitHub CLI from https://cli.github.com"},
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// CheckTools verifies every required external tool resolves on PATH.
func CheckTools() error {
	for _, tool := range requiredTools {
		if _, err := lookPath(tool.name); err != nil {
			return NewMissingDependencyError(tool.name, tool.hint)
		}
	}
	return nil
}
