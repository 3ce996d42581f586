package cli

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
)

// repoNamePattern matches names GitHub accepts for repositories.
var repoNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// promptRepoName asks for the repository name until a valid one is given.
func promptRepoName() (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Repository name:",
		Help:    "Letters, digits, '.', '_' and '-' only",
	}

	validators := survey.ComposeValidators(
		survey.Required,
		validRepoName,
	)
	if err := survey.AskOne(prompt, &name, survey.WithValidator(validators)); err != nil {
		return "", err
	}
	return name, nil
}

// promptVisibility asks whether the repository should be private.
func promptVisibility(defaultPrivate bool) (bool, error) {
	var private bool
	prompt := &survey.Confirm{
		Message: "Make the repository private?",
		Default: defaultPrivate,
		Help:    "Answering no creates a public repository",
	}
	if err := survey.AskOne(prompt, &private); err != nil {
		return false, err
	}
	return private, nil
}

// validRepoName is a survey validator for repository names.
func validRepoName(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if !repoNamePattern.MatchString(str) {
		return fmt.Errorf("name may only contain letters, digits, '.', '_' and '-'")
	}
	return nil
}
