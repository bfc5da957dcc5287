package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gonls/nls"
	"github.com/gonls/nls/locale"
)

var (
	textDir     string
	textLang    string
	textID      uint64
	textDefault string
	textVerbose bool
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Resolve a text id against a catalog directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultTag, err := language.Parse(textDefault)
		if err != nil {
			return fmt.Errorf("invalid default language %q: %w", textDefault, err)
		}

		catalog, err := nls.LoadFS(os.DirFS(textDir), ".", defaultTag)
		if err != nil {
			return err
		}

		requested := textLang
		if requested == "auto" {
			requested = locale.GetSystemLocale()
		}
		tag, err := language.Parse(requested)
		if err != nil {
			return fmt.Errorf("invalid language %q: %w", requested, err)
		}

		if textVerbose {
			fmt.Fprintln(cmd.ErrOrStderr(),
				messages.GetTextf(locale.SystemTag(), msgCatalogLoaded, textDir, len(catalog.Languages())))
		}
		fmt.Fprintln(cmd.OutOrStdout(), catalog.GetText(tag, nls.TextID(textID)))
		return nil
	},
}

func init() {
	textCmd.Flags().StringVar(&textDir, "dir", "locales",
		"directory containing <lang>.json or <lang>.toml files")
	textCmd.Flags().StringVar(&textLang, "lang", "auto",
		`language to resolve, or "auto" for the system locale`)
	textCmd.Flags().Uint64Var(&textID, "id", 0, "text id to resolve")
	textCmd.Flags().StringVar(&textDefault, "default", locale.Default,
		"default language consulted when the requested language misses")
	textCmd.Flags().BoolVarP(&textVerbose, "verbose", "v", false,
		"report catalog details on stderr")
	_ = textCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(textCmd)
}
