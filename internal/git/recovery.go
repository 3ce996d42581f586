package git

import (
	"path/filepath"
	"strings"

	"github.com/mizutanix/repoinit/internal/debug"
)

// Failure signatures git emits for the two conditions repoinit repairs
// automatically. Anything else fails without a retry.
const (
	dubiousOwnershipSignature = "detected dubious ownership"
	missingIdentitySignature  = "Please tell me who you are"
)

// Identity is the author identity applied when a commit fails for lack of
// one. Repository-scoped so it never leaks into the user's global config.
type Identity struct {
	Name  string
	Email string
}

// recoveryRule pairs a known failure signature with a repair action and an
// optional replacement for the retried operation. Each rule fires at most
// once; a failure after the retry is final.
type recoveryRule struct {
	signature string
	repair    func() error
	retry     func() (string, error)
}

// runRecoverable runs op and, when it fails with output matching a rule's
// signature, applies that rule's repair and retries exactly once.
func runRecoverable(op func() (string, error), rules []recoveryRule) error {
	out, err := op()
	if err == nil {
		return nil
	}

	for _, rule := range rules {
		if !strings.Contains(out, rule.signature) {
			continue
		}
		debug.Debug("recoverable failure (%q), repairing and retrying once", rule.signature)

		if repairErr := rule.repair(); repairErr != nil {
			return repairErr
		}

		retry := rule.retry
		if retry == nil {
			retry = op
		}
		if _, retryErr := retry(); retryErr != nil {
			return retryErr
		}
		return nil
	}

	return err
}

// StageAll stages the working tree minus the excluded paths. A rejection
// caused by dubious directory ownership is repaired by registering the
// directory as safe (a global config write) and retried once.
func (r *Runner) StageAll(excludes []string) error {
	return runRecoverable(
		func() (string, error) { return r.stage(excludes) },
		[]recoveryRule{
			{
				signature: dubiousOwnershipSignature,
				repair: func() error {
					// git matches safe.directory entries against the
					// repository's absolute path; a relative entry (the CLI
					// default dir is ".") would never match and the retry
					// would fail with the same signature.
					dir, err := filepath.Abs(r.Dir)
					if err != nil {
						return err
					}
					return r.configGlobalAdd("safe.directory", dir)
				},
			},
		},
	)
}

// Commit records the initial commit. A failure caused by a missing author
// identity is repaired by setting a repository-local identity and retried
// once with retryMessage, which marks the commit as tool-authored.
func (r *Runner) Commit(message, retryMessage string, fallback Identity) error {
	return runRecoverable(
		func() (string, error) { return r.commit(message) },
		[]recoveryRule{
			{
				signature: missingIdentitySignature,
				repair: func() error {
					if err := r.configLocal("user.name", fallback.Name); err != nil {
						return err
					}
					return r.configLocal("user.email", fallback.Email)
				},
				retry: func() (string, error) { return r.commit(retryMessage) },
			},
		},
	)
}
