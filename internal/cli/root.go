package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mizutanix/repoinit/internal/debug"
)

// Version information, set from main via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalNoPause bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "repoinit",
	Short: "Provision and publish a new git repository",
	Long: `repoinit provisions a new source-control project end to end.

Use "repoinit new" to:
  1. Verify git and the GitHub CLI are installed and authenticated
  2. Pick a .gitignore template from the github/gitignore catalog
  3. Collect the repository name, visibility and README content
  4. Initialize, commit, and create + push the remote repository`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute runs the root command. Fatal errors are printed and, unless
// suppressed, held on screen until the user acknowledges them so a
// double-clicked terminal window does not close over the message.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErrorMsg(err.Error())
		waitForAcknowledgment()
		os.Exit(1)
	}
}

// waitForAcknowledgment blocks until the user presses Enter.
func waitForAcknowledgment() {
	if globalQuiet || globalNoPause {
		return
	}
	fmt.Fprint(os.Stderr, "Press Enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().BoolVar(&globalNoPause, FlagNoPause, false, DescNoPause)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}
