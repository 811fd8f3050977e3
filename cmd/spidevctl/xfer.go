// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	xferCmd.SetHelpTemplate(xferCmd.HelpTemplate() + extendedXferHelp)
	rootCmd.AddCommand(xferCmd)
}

var xferCmd = &cobra.Command{
	Use:     "xfer <byte1>...",
	Short:   "Perform a full-duplex exchange with the device",
	Args:    cobra.MinimumNArgs(1),
	RunE:    xfer,
	Example: "  spidevctl xfer 0x01 0x80 0x00",
}

var extendedXferHelp = `
Bytes:
  Bytes may be in decimal, hex (0x..) or octal (0..).

One byte is received for each byte sent.
`

func xfer(cmd *cobra.Command, args []string) error {
	tx, err := parseBytes(args)
	if err != nil {
		return err
	}
	s, err := openBus()
	if err != nil {
		return err
	}
	defer s.Close()
	rx, err := s.Exchange(tx)
	if err != nil {
		return err
	}
	fmt.Printf("% x\n", rx)
	return nil
}
