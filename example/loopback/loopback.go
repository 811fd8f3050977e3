// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/warthog618/spidev"
)

// This example opens the bus in loopback mode and exchanges a buffer with
// itself. The controller must support loopback for this to work - most
// SoC controllers do.
func main() {
	s, err := spidev.Open("/dev/spidev0.0", spidev.WithMode(spidev.Loop))
	if err != nil {
		panic(err)
	}
	defer s.Close()
	tx := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}
	rx, err := s.Exchange(tx)
	if err != nil {
		panic(err)
	}
	fmt.Printf("tx: % x\n", tx)
	fmt.Printf("rx: % x\n", rx)
}
