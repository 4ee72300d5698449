package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/pcremote/internal/output"
	"github.com/mj1618/pcremote/internal/protocol"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <LINE>",
	Short: "Execute one command line locally and print the response",
	Long: `Dispatch a single command exactly as if it had arrived over serial, and
print the response line. Useful for testing shortcuts without the board.

Examples:
  pcremote exec BROWSER_FOCUS
  pcremote exec VOLUME_SET:40
  pcremote exec "BROWSER_OPEN_URL:https://www.youtube.com"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().Bool("structured", false, "Print a structured result in the --format output instead of the raw line")
}

func runExec(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	line := strings.TrimSpace(strings.Join(args, " "))
	resp := eng.dispatcher.Handle(cmd.Context(), line)

	if structured, _ := cmd.Flags().GetBool("structured"); structured {
		return output.Fprint(cmd.OutOrStdout(), output.ExecResult{
			Line:     line,
			Response: resp,
			OK:       !protocol.IsError(resp),
		})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), resp)
	return err
}
