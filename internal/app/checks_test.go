package app

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckTools(t *testing.T) {
	orig := lookPath
	defer func() { lookPath = orig }()

	t.Run("all tools present", func(t *testing.T) {
		lookPath = func(name string) (string, error) {
			return "/usr/bin/" + name, nil
		}
		if err := CheckTools(); err != nil {
			t.Errorf("CheckTools failed: %v", err)
		}
	})

	t.Run("git missing", func(t *testing.T) {
		lookPath = func(name string) (string, error) {
			if name == "git" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + name, nil
		}

		err := CheckTools()
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var fatal *FatalError
		if !errors.As(err, &fatal) {
			t.Fatalf("expected FatalError, got %T", err)
		}
		if fatal.Type != MissingDependency {
			t.Errorf("type = %v, want MissingDependency", fatal.Type)
		}
		if !strings.Contains(err.Error(), "git") {
			t.Errorf("error does not name the tool: %v", err)
		}
	})

	t.Run("gh missing", func(t *testing.T) {
		lookPath = func(name string) (string, error) {
			if name == "gh" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + name, nil
		}

		err := CheckTools()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "gh") || !strings.Contains(err.Error(), "cli.github.com") {
			t.Errorf("error missing tool name or hint: %v", err)
		}
	})
}

func TestFatalErrorTypeString(t *testing.T) {
	types := map[FatalErrorType]string{
		MissingDependency:  "MissingDependency",
		NotAuthenticated:   "NotAuthenticated",
		InitFailed:         "InitFailed",
		StageFailed:        "StageFailed",
		CommitFailed:       "CommitFailed",
		RemoteCreateFailed: "RemoteCreateFailed",
	}
	for typ, want := range types {
		if got := typ.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
