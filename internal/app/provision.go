// Package app orchestrates the provisioning pipeline: tool checks, session
// check, template selection, local repository setup, and remote publish.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mizutanix/repoinit/internal/config"
	"github.com/mizutanix/repoinit/internal/git"
	"github.com/mizutanix/repoinit/internal/gitignore"
	"github.com/mizutanix/repoinit/internal/hosting"
	"github.com/mizutanix/repoinit/internal/textfile"
)

const (
	ignoreFileName = ".gitignore"
	readmeFileName = "README.md"

	commitMessage = "Initial commit"
	// commitRetryMessage marks the commit as tool-authored when it was only
	// possible after the identity repair.
	commitRetryMessage = "Initial commit (repoinit)"
)

// selfArtifacts are repoinit's own files, excluded from staging so the tool
// never commits itself into the project it provisions.
var selfArtifacts = []string{"repoinit", "repoinit.exe", "repoinit.log"}

// Options configures one provisioning run.
type Options struct {
	// Dir is the project directory (the repository root).
	Dir string
	// Name is the repository name. Must be non-empty.
	Name string
	// Private selects private visibility on the remote.
	Private bool
	// Template pre-seeds the template choice and skips the selector.
	// Matched case-insensitively against the catalog.
	Template string

	// In and Out carry the interactive selector and README prompts.
	In  io.Reader
	Out io.Writer

	// Config holds user defaults (fallback identity, endpoint overrides).
	Config config.Config

	// Resolver, Git and Host default to real implementations when nil.
	Resolver *gitignore.Resolver
	Git      *git.Runner
	Host     *hosting.Client
}

// Result reports what a successful run produced.
type Result struct {
	// Template is the selected template name (original catalog casing),
	// or gitignore.NoTemplate.
	Template string
	// URL is the browse URL of the created repository, when known.
	URL string
}

// Provision runs the full pipeline. Each stage is fatal on failure except
// the template content download, which degrades to an empty ignore file,
// and the final login lookup, which only suppresses the reported URL.
func Provision(ctx context.Context, opts Options) (*Result, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("repository name cannot be empty")
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = gitignore.NewResolver()
		if opts.Config.CatalogURL != "" {
			resolver.CatalogURL = opts.Config.CatalogURL
		}
		if opts.Config.RawBaseURL != "" {
			resolver.RawBaseURL = opts.Config.RawBaseURL
		}
	}
	runner := opts.Git
	if runner == nil {
		runner = git.NewRunner(opts.Dir)
	}
	host := opts.Host
	if host == nil {
		host = hosting.NewClient(opts.Dir)
	}

	if err := CheckTools(); err != nil {
		return nil, err
	}
	if err := host.AuthStatus(); err != nil {
		return nil, NewNotAuthenticatedError(err)
	}

	catalog := resolver.Catalog(ctx)

	// One shared reader for the selector and the README collector; separate
	// buffered readers would drop lines read ahead by the earlier prompt.
	in := bufio.NewReader(opts.In)

	selection, err := selectTemplate(opts, in, catalog)
	if err != nil {
		return nil, err
	}

	if err := runner.Init(); err != nil {
		return nil, NewInitError(err)
	}

	if err := writeIgnoreFile(ctx, opts, resolver, selection); err != nil {
		return nil, err
	}

	if err := writeReadme(opts, in); err != nil {
		return nil, err
	}

	if err := runner.StageAll(selfArtifacts); err != nil {
		return nil, NewStageError(err)
	}
	if err := runner.Commit(commitMessage, commitRetryMessage, git.Identity{
		Name:  opts.Config.Author.Name,
		Email: opts.Config.Author.Email,
	}); err != nil {
		return nil, NewCommitError(err)
	}

	if err := host.CreateRepo(opts.Name, opts.Private); err != nil {
		return nil, NewRemoteCreateError(opts.Name, err)
	}

	result := &Result{Template: selection}
	login, err := host.Login()
	if err != nil {
		fmt.Fprintf(opts.Out, "Warning: repository created, but the owner lookup failed: %v\n", err)
		return result, nil
	}
	result.URL = hosting.RepoURL(login, opts.Name)
	return result, nil
}

// selectTemplate resolves the template choice, either from the pre-seeded
// option or interactively.
func selectTemplate(opts Options, in *bufio.Reader, catalog []string) (string, error) {
	if opts.Template != "" {
		if strings.EqualFold(opts.Template, "none") {
			return gitignore.NoTemplate, nil
		}
		match, ok := gitignore.Match(catalog, opts.Template)
		if !ok {
			return "", fmt.Errorf("template %q is not in the catalog (run 'repoinit templates' to list them)", opts.Template)
		}
		return match, nil
	}

	selector := gitignore.NewSelector(in, opts.Out, catalog)
	return selector.Run()
}

// writeIgnoreFile downloads the template content and writes the ignore
// file. Download failures are warned about and degrade to an empty file.
func writeIgnoreFile(ctx context.Context, opts Options, resolver *gitignore.Resolver, selection string) error {
	content := ""
	if selection != gitignore.NoTemplate {
		fetched, err := resolver.FetchTemplate(ctx, selection)
		if err != nil {
			fmt.Fprintf(opts.Out, "Warning: could not download the %s template, writing an empty %s: %v\n",
				selection, ignoreFileName, err)
		} else {
			content = fetched
		}
	}
	return textfile.Write(filepath.Join(opts.Dir, ignoreFileName), content)
}

// writeReadme collects the README body interactively and writes it.
func writeReadme(opts Options, in *bufio.Reader) error {
	lines, err := CollectReadmeLines(in, opts.Out)
	if err != nil {
		return err
	}
	body := BuildReadme(opts.Name, lines)
	return textfile.Write(filepath.Join(opts.Dir, readmeFileName), body)
}
