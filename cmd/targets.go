package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/pcremote/internal/model"
	"github.com/mj1618/pcremote/internal/output"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the windows commands would target, and the monitors",
	Long: `List visible windows owned by an allowed browser process, in the order the
locator considers them. Commands act on the first one. Monitors are listed
in enumeration order; the tv index is the one BROWSER_MOVE_TV uses.`,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	targetsCmd.Flags().Bool("first", false, "Only show the window commands would act on")
}

func runTargets(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	first, _ := cmd.Flags().GetBool("first")

	targets, err := eng.executor.Targets(cmd.Context())
	if err != nil {
		return fmt.Errorf("locate targets: %w", err)
	}
	if targets == nil {
		targets = []model.WindowTarget{}
	}
	if first && len(targets) > 1 {
		targets = targets[:1]
	}
	monitors, err := eng.executor.Monitors()
	if err != nil {
		return fmt.Errorf("enumerate monitors: %w", err)
	}

	return output.Fprint(cmd.OutOrStdout(), output.TargetsResult{
		TS:       time.Now().Unix(),
		Targets:  targets,
		Monitors: monitors,
		TV:       appConfig.Targets.MonitorIndex,
	})
}
