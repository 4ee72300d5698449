package cmd

import (
	"github.com/mj1618/pcremote/internal/output"
	"github.com/mj1618/pcremote/internal/transport"
	"github.com/spf13/cobra"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := transport.ListPorts()
		if err != nil {
			return err
		}
		if ports == nil {
			ports = []transport.PortInfo{}
		}
		return output.Fprint(cmd.OutOrStdout(), ports)
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
