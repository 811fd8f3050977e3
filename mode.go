// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spidev

import "strconv"

// Mode is the SPI bus mode, a bitmask of the mode flags defined in
// <linux/spi/spidev.h>.
type Mode uint8

// Mode flags.
const (
	// CPHA shifts the clock phase to sample on the trailing edge.
	CPHA Mode = 1 << iota

	// CPOL inverts the clock polarity so the clock idles high.
	CPOL

	// CSHigh makes chip select active high.
	CSHigh

	// LSBFirst transfers words least significant bit first.
	LSBFirst

	// ThreeWire shares a single wire for SI and SO.
	ThreeWire

	// Loop enables loopback.
	Loop

	// NoCS leaves the chip select line unused.
	NoCS

	// Ready allows the slave to pull low to pause the transfer.
	Ready
)

// The four standard clock polarity/phase combinations.
const (
	Mode0 Mode = 0
	Mode1 Mode = CPHA
	Mode2 Mode = CPOL
	Mode3 Mode = CPOL | CPHA
)

// String returns the mode in the form "Mode3|CSHigh|Loop".
func (m Mode) String() string {
	s := "Mode" + strconv.Itoa(int(m&(CPOL|CPHA)))
	for _, f := range modeFlagNames {
		if m&f.flag != 0 {
			s += "|" + f.name
		}
	}
	return s
}

var modeFlagNames = []struct {
	flag Mode
	name string
}{
	{CSHigh, "CSHigh"},
	{LSBFirst, "LSBFirst"},
	{ThreeWire, "ThreeWire"},
	{Loop, "Loop"},
	{NoCS, "NoCS"},
	{Ready, "Ready"},
}
