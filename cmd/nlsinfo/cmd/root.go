package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gonls/nls/locale"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "nlsinfo",
	Short: "Report the system locale and resolve catalog texts",
	Long: `nlsinfo prints the locale the operating system reports for the
current user and can resolve text ids against a directory of per-language
catalog files.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile == "" {
			return nil
		}
		// Overload so the dotenv file wins over inherited LC_*/LANG.
		return godotenv.Overload(envFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := locale.GetSystemLocale()
		tag := locale.SystemTag()
		fmt.Fprintln(cmd.OutOrStdout(), messages.GetTextf(tag, msgDetectedLocale, loc, tag))
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "",
		"load environment variables from this dotenv file before detection")
}
