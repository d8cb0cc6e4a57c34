package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var codesOnly bool

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages TMDB supports",
	Long: `Fetch the supported-language catalog and print one language per line, in
the order TMDB returns them. Use a code with tmdb.language in the config to
localize movie listings.`,
	PreRunE: initializeApp,
	RunE:    runLanguages,
}

func init() {
	languagesCmd.Flags().BoolVar(&codesOnly, "codes", false, "print only the ISO 639-1 codes")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	if codesOnly {
		codes, err := client.LanguageCodes(cmd.Context())
		if err != nil {
			return err
		}
		for _, code := range codes {
			fmt.Println(code)
		}
		return nil
	}

	languages, err := client.Languages(cmd.Context())
	if err != nil {
		return err
	}
	for _, language := range languages {
		name := language.EnglishName
		if language.Name != "" && language.Name != language.EnglishName {
			name = fmt.Sprintf("%s (%s)", language.EnglishName, language.Name)
		}
		fmt.Printf("%-8s %s\n", language.ISO6391, name)
	}
	return nil
}
