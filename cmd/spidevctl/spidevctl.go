// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/warthog618/spidev"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "spidevctl",
	Short: "spidevctl is a utility to perform SPI transfers via the Linux spidev driver",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	Version: version,
}

var rootOpts = struct {
	Device string
	Mode   uint8
	Bits   uint8
	Speed  uint32
}{}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootOpts.Device, "device", "D", "/dev/spidev0.0", "the spidev device to open")
	pf.Uint8VarP(&rootOpts.Mode, "mode", "m", 0, "the bus mode to request")
	pf.Uint8VarP(&rootOpts.Bits, "bits", "b", 0, "the word size, in bits, to request")
	pf.Uint32VarP(&rootOpts.Speed, "speed", "s", 0, "the max clock speed, in Hz, to request")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openBus opens the selected device, requesting any bus parameters
// specified by flags.
func openBus() (*spidev.Bus, error) {
	oo := []spidev.Option(nil)
	if rootOpts.Mode != 0 {
		oo = append(oo, spidev.WithMode(spidev.Mode(rootOpts.Mode)))
	}
	if rootOpts.Bits != 0 {
		oo = append(oo, spidev.WithBitsPerWord(rootOpts.Bits))
	}
	if rootOpts.Speed != 0 {
		oo = append(oo, spidev.WithMaxSpeed(rootOpts.Speed))
	}
	return spidev.Open(rootOpts.Device, oo...)
}

func parseBytes(args []string) ([]byte, error) {
	bb := []byte(nil)
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("can't parse byte '%s'", arg)
		}
		bb = append(bb, byte(v))
	}
	return bb, nil
}
