package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mizutanix/repoinit/internal/app"
	"github.com/mizutanix/repoinit/internal/config"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Provision a new repository in the current directory",
	Long: `Provision a new repository: pick a .gitignore template, write a
README, commit the tree, and create + push the remote repository.

The template selector accepts free text. Type 'list' to see every template,
'none' for an empty .gitignore. README content is read line by line and
finished with a line containing only END.

Examples:
  repoinit new
  repoinit new --name demo --private
  repoinit new --name demo --template Python
  repoinit new --template none --dir ./my-project`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

// New command flags
var (
	newName     string
	newPrivate  bool
	newTemplate string
	newDir      string
)

func init() {
	newCmd.Flags().StringVarP(&newName, FlagName, "n", "", DescName)
	newCmd.Flags().BoolVarP(&newPrivate, FlagPrivate, "p", false, DescPrivate)
	newCmd.Flags().StringVarP(&newTemplate, FlagTemplate, "t", "", DescTemplate)
	newCmd.Flags().StringVarP(&newDir, FlagDir, "d", ".", DescDir)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		printWarning(fmt.Sprintf("Ignoring defaults file: %v", err))
		cfg = config.Default()
	}

	name := newName
	if name == "" {
		if name, err = promptRepoName(); err != nil {
			return err
		}
	}

	private := newPrivate
	if !cmd.Flags().Changed(FlagPrivate) {
		if private, err = promptVisibility(cfg.DefaultPrivate); err != nil {
			return err
		}
	}

	printProgress(fmt.Sprintf("Provisioning %s...", name))

	result, err := app.Provision(cmd.Context(), app.Options{
		Dir:      newDir,
		Name:     name,
		Private:  private,
		Template: newTemplate,
		In:       os.Stdin,
		Out:      os.Stdout,
		Config:   cfg,
	})
	if err != nil {
		return err
	}

	printSuccess(fmt.Sprintf("Repository %s created and pushed", name))
	if result.URL != "" {
		printInfo("  " + result.URL)
	}
	return nil
}
