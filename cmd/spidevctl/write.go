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
	writeCmd.SetHelpTemplate(writeCmd.HelpTemplate() + extendedWriteHelp)
	rootCmd.AddCommand(writeCmd)
}

var writeCmd = &cobra.Command{
	Use:     "write <byte1>...",
	Short:   "Write bytes to the device",
	Args:    cobra.MinimumNArgs(1),
	RunE:    write,
	Example: "  spidevctl write 0x01 0x80 0x00",
}

var extendedWriteHelp = `
Bytes:
  Bytes may be in decimal, hex (0x..) or octal (0..).
`

func write(cmd *cobra.Command, args []string) error {
	tx, err := parseBytes(args)
	if err != nil {
		return err
	}
	s, err := openBus()
	if err != nil {
		return err
	}
	defer s.Close()
	n, err := s.Write(tx)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes\n", n)
	return nil
}
