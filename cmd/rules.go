package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/spigell/ats-analyzer/internal/rules"
	"github.com/spigell/ats-analyzer/internal/scoring"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule stages and whether they are enabled",
	Run: func(cmd *cobra.Command, _ []string) {
		config, err := getConfig()
		if err != nil {
			log.Fatalf("getting a config: %s", err)
		}

		engine := scoring.New(scoring.Config{
			Experience:    config.Experience,
			Skills:        config.Skills,
			DisabledRules: config.Rules.Disabled,
		}, scoring.Deps{}, nil)

		if err := printRules(cmd.OutOrStdout(), engine.Rules()); err != nil {
			log.Fatalf("printing rules: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func printRules(w io.Writer, statuses []rules.Status) error {
	pretty, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}
