package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/pcremote/internal/dispatch"
	"github.com/mj1618/pcremote/internal/protocol"
	"github.com/mj1618/pcremote/internal/transport"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the serial port and execute commands until interrupted",
	Long: `Open the serial port, wait for the controller board to settle, then read
newline-terminated commands and answer each with one STATUS: or ERROR: line.

Interrupting with Ctrl+C or SIGTERM exits cleanly. Losing the port exits
with status 1.

Examples:
  pcremote run
  pcremote run --port COM5 --baud 9600
  pcremote run --port /dev/ttyUSB0 --log-level debug`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("port", "", "Serial port (overrides config, default COM3)")
	runCmd.Flags().Int("baud", 0, "Baud rate (overrides config, default 115200)")
}

func runRun(cmd *cobra.Command, args []string) error {
	serialCfg := appConfig.Serial
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		serialCfg.Port = port
	}
	if baud, _ := cmd.Flags().GetInt("baud"); baud > 0 {
		serialCfg.Baud = baud
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port, err := transport.Open(ctx, transport.Options{
		Port:        serialCfg.Port,
		Baud:        serialCfg.Baud,
		ReadTimeout: serialCfg.ReadTimeout(),
		Settle:      serialCfg.Settle(),
	}, appLogger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	defer port.Close()

	loop := dispatch.NewLoop(
		eng.dispatcher,
		protocol.NewReader(port),
		protocol.NewWriter(port),
		serialCfg.Poll(),
		appLogger,
	)
	if err := loop.Run(ctx); err != nil {
		appLogger.Error("serial link lost", "port", serialCfg.Port, "err", err)
		return err
	}
	return nil
}
