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
	configCmd.SetHelpTemplate(configCmd.HelpTemplate() + extendedConfigHelp)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Display the negotiated bus transfer parameters",
	Args:    cobra.NoArgs,
	RunE:    config,
	Example: "  spidevctl -D /dev/spidev0.1 -s 1000000 config",
}

var extendedConfigHelp = `
The parameters displayed are those accepted by the driver, which may differ
from any requested via flags if the driver adjusts or rejects them.
`

func config(cmd *cobra.Command, args []string) error {
	s, err := openBus()
	if err != nil {
		return err
	}
	defer s.Close()
	fmt.Printf("mode: %s\n", s.Mode())
	fmt.Printf("bits per word: %d\n", s.BitsPerWord())
	fmt.Printf("lsb first: %t\n", s.LSBFirst())
	fmt.Printf("max speed: %dHz\n", s.MaxSpeed())
	return nil
}
