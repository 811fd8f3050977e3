// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:     "read <length>",
	Short:   "Read a number of bytes from the device",
	Args:    cobra.ExactArgs(1),
	RunE:    read,
	Example: "  spidevctl read 4",
}

func read(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("can't parse length '%s'", args[0])
	}
	s, err := openBus()
	if err != nil {
		return err
	}
	defer s.Close()
	rx, err := s.Read(int(n))
	if err != nil {
		return err
	}
	fmt.Printf("% x\n", rx)
	return nil
}
