package cmd

import (
	"github.com/mj1618/pcremote/internal/action"
	"github.com/mj1618/pcremote/internal/output"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every command the remote can send",
	RunE:  runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().String("category", "", "Only list one category: power, window, playback, audio, navigation, smart")
}

func runCommands(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")

	entries := []action.Entry{}
	for _, e := range staticRegistry().Entries() {
		if category == "" || string(e.Category) == category {
			entries = append(entries, e)
		}
	}
	return output.Fprint(cmd.OutOrStdout(), entries)
}
