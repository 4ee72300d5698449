// Package transport opens the serial link to the remote controller.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// Options describe how to open the port.
type Options struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
	// Settle is how long to wait after opening before the first read. Many
	// boards reset when the port opens and print boot output meanwhile.
	Settle time.Duration
}

// Open opens the port, waits for the board to settle and discards anything
// it printed in the meantime. The returned port reads with ReadTimeout, so
// a Read that returns (0, nil) means no data arrived.
func Open(ctx context.Context, opts Options, logger *log.Logger) (serial.Port, error) {
	if opts.Port == "" {
		return nil, errors.New("no serial port configured")
	}
	if logger == nil {
		logger = log.Default()
	}

	port, err := serial.Open(opts.Port, &serial.Mode{BaudRate: opts.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Port, err)
	}
	if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", opts.Port, err)
	}
	logger.Info("serial port opened", "port", opts.Port, "baud", opts.Baud)

	if opts.Settle > 0 {
		logger.Debug("waiting for board to settle", "settle", opts.Settle)
		t := time.NewTimer(opts.Settle)
		select {
		case <-ctx.Done():
			t.Stop()
			port.Close()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	if err := port.ResetInputBuffer(); err != nil {
		logger.Warn("could not reset input buffer", "port", opts.Port, "err", err)
	}
	return port, nil
}

// PortInfo describes one serial port found on the system.
type PortInfo struct {
	Name         string `yaml:"name"                    json:"name"`
	USB          bool   `yaml:"usb"                     json:"usb"`
	VID          string `yaml:"vid,omitempty"           json:"vid,omitempty"`
	PID          string `yaml:"pid,omitempty"           json:"pid,omitempty"`
	SerialNumber string `yaml:"serial_number,omitempty" json:"serial_number,omitempty"`
	Product      string `yaml:"product,omitempty"       json:"product,omitempty"`
}

// ListPorts returns the serial ports on the system. USB details are filled
// in when the OS exposes them.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err == nil {
		ports := make([]PortInfo, 0, len(details))
		for _, d := range details {
			ports = append(ports, PortInfo{
				Name:         d.Name,
				USB:          d.IsUSB,
				VID:          d.VID,
				PID:          d.PID,
				SerialNumber: d.SerialNumber,
				Product:      d.Product,
			})
		}
		return ports, nil
	}

	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	ports := make([]PortInfo, 0, len(names))
	for _, n := range names {
		ports = append(ports, PortInfo{Name: n})
	}
	return ports, nil
}
