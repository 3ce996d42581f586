package cli

import (
	"github.com/spf13/cobra"

	"github.com/mizutanix/repoinit/internal/config"
	"github.com/mizutanix/repoinit/internal/gitignore"
)

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available .gitignore templates",
	Long: `List every selectable .gitignore template.

The catalog is fetched from the github/gitignore repository; when the
listing cannot be reached a built-in fallback set is shown instead.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		cfg = config.Default()
	}

	resolver := gitignore.NewResolver()
	if cfg.CatalogURL != "" {
		resolver.CatalogURL = cfg.CatalogURL
	}
	if cfg.RawBaseURL != "" {
		resolver.RawBaseURL = cfg.RawBaseURL
	}

	catalog := resolver.Catalog(cmd.Context())
	printInfo(gitignore.FormatCatalog(catalog))
	return nil
}
