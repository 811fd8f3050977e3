// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

// Package spidev provides access to SPI devices via the Linux spidev driver.
//
// The package wraps a /dev/spidevB.C character device, B being the bus
// number and C the chip-select. The bus is opened and its transfer
// parameters negotiated once, then any number of half-duplex reads and
// writes, or full-duplex exchanges, may be performed before the bus is
// closed.
//
// Example of use:
//
//	s, err := spidev.Open("/dev/spidev0.0", spidev.WithMaxSpeed(1000000))
//	if err != nil {
//		panic(err)
//	}
//	defer s.Close()
//
//	rx, err := s.Exchange([]byte{0x01, 0x80, 0x00})
//
// Each Bus contains a single transfer descriptor which is overwritten by
// each transfer, so transfers are serialised with a mutex internally.
// Framing for particular peripherals is left to the caller - this package
// only moves raw bytes across the bus.
//
// This package is not related to bit bashed SPI over GPIO lines - it only
// supports buses provided by the kernel spidev driver.
package spidev

import (
	"runtime"
	"sync"
	"unsafe"
)

// Bus represents an open SPI bus, being one bus and chip-select pair
// provided by the spidev driver.
type Bus struct {
	// mu serialises transfers and guards the lifecycle state and the
	// transfer descriptor.
	mu sync.Mutex

	fd    int
	path  string
	state busState

	// effective parameters as accepted by the driver, not as requested.
	mode     Mode
	bpw      uint8
	lsbFirst bool
	maxSpeed uint32

	// the transfer descriptor, overwritten in place by each transfer.
	xfer iocTransfer

	// requested parameters, zero meaning leave at the driver default.
	reqMode  Mode
	reqBpw   uint8
	reqSpeed uint32
}

type busState int

const (
	unopened busState = iota
	ready
	closed
)

// Open opens the SPI device identified by path, e.g. "/dev/spidev0.0", and
// negotiates the bus transfer parameters.
//
// Parameters not specified by options are left at the driver default.
// The negotiated parameters are available from the Bus accessors, and may
// differ from those requested if the driver adjusts or rejects them.
//
// On failure the device is not left open - there is never a Bus to Close
// unless Open succeeds.
func Open(path string, options ...Option) (*Bus, error) {
	b := &Bus{path: path, fd: -1}
	for _, option := range options {
		option(b)
	}
	fd, err := sysOpen(path)
	if err != nil {
		return nil, &Error{Op: OpOpen, Path: path, Err: err}
	}
	b.fd = fd
	if err := b.negotiate(); err != nil {
		sysClose(fd)
		return nil, err
	}
	b.state = ready
	return b, nil
}

// negotiate pushes the requested parameters to the driver and reads back
// the effective values. Each step is fatal on failure.
func (b *Bus) negotiate() error {
	b.xfer = iocTransfer{}
	if b.reqMode != 0 {
		m := uint8(b.reqMode)
		if _, err := sysIoctl(b.fd, iocWrMode, unsafe.Pointer(&m)); err != nil {
			return b.wrapErr(OpSetMode, err)
		}
	}
	var m uint8
	if _, err := sysIoctl(b.fd, iocRdMode, unsafe.Pointer(&m)); err != nil {
		return b.wrapErr(OpGetMode, err)
	}
	b.mode = Mode(m)
	// bit order is only observed, never set - use the LSBFirst mode flag.
	var lsb uint8
	if _, err := sysIoctl(b.fd, iocRdLSBFirst, unsafe.Pointer(&lsb)); err != nil {
		return b.wrapErr(OpGetLSBFirst, err)
	}
	b.lsbFirst = lsb != 0
	if b.reqBpw != 0 {
		bpw := b.reqBpw
		if _, err := sysIoctl(b.fd, iocWrBitsPerWord, unsafe.Pointer(&bpw)); err != nil {
			return b.wrapErr(OpSetBitsPerWord, err)
		}
	}
	if _, err := sysIoctl(b.fd, iocRdBitsPerWord, unsafe.Pointer(&b.bpw)); err != nil {
		return b.wrapErr(OpGetBitsPerWord, err)
	}
	if b.reqSpeed != 0 {
		speed := b.reqSpeed
		if _, err := sysIoctl(b.fd, iocWrMaxSpeed, unsafe.Pointer(&speed)); err != nil {
			return b.wrapErr(OpSetMaxSpeed, err)
		}
	}
	if _, err := sysIoctl(b.fd, iocRdMaxSpeed, unsafe.Pointer(&b.maxSpeed)); err != nil {
		return b.wrapErr(OpGetMaxSpeed, err)
	}
	return nil
}

// Close releases the file handle for the bus.
//
// Close on an already closed bus is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != ready {
		return nil
	}
	b.state = closed
	return sysClose(b.fd)
}

// Read performs a half-duplex read of n bytes from the bus.
//
// The tx line is held at zero for the duration of the transfer.
func (b *Bus) Read(n int) ([]byte, error) {
	rx := make([]byte, n)
	if _, err := b.transfer(OpRead, nil, rx); err != nil {
		return nil, err
	}
	return rx, nil
}

// Write performs a half-duplex write of p to the bus, discarding anything
// received, and returns the number of bytes transferred as reported by the
// driver.
func (b *Bus) Write(p []byte) (int, error) {
	return b.transfer(OpWrite, p, nil)
}

// Exchange performs a full-duplex transfer, clocking tx out of the bus
// while simultaneously clocking in the returned bytes, one received for
// each sent.
func (b *Bus) Exchange(tx []byte) ([]byte, error) {
	rx := make([]byte, len(tx))
	if _, err := b.transfer(OpExchange, tx, rx); err != nil {
		return nil, err
	}
	return rx, nil
}

// transfer issues a single message transfer through the bus transfer
// descriptor.
func (b *Bus) transfer(op Op, tx, rx []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != ready {
		return 0, b.wrapErr(op, ErrClosed)
	}
	n := len(tx)
	if n == 0 {
		n = len(rx)
	}
	if n == 0 {
		// nothing to transfer - don't bother the driver.
		return 0, nil
	}
	b.xfer = iocTransfer{Length: uint32(n)}
	if len(tx) != 0 {
		b.xfer.TxBuf = uint64(uintptr(unsafe.Pointer(&tx[0])))
	}
	if len(rx) != 0 {
		b.xfer.RxBuf = uint64(uintptr(unsafe.Pointer(&rx[0])))
	}
	cnt, err := sysIoctl(b.fd, iocMessage(1), unsafe.Pointer(&b.xfer))
	runtime.KeepAlive(tx)
	runtime.KeepAlive(rx)
	if err != nil {
		return 0, b.wrapErr(op, err)
	}
	return cnt, nil
}

func (b *Bus) wrapErr(op Op, err error) error {
	return &Error{Op: op, Path: b.path, Err: err}
}

// Mode returns the effective bus mode, as accepted by the driver.
func (b *Bus) Mode() Mode {
	return b.mode
}

// BitsPerWord returns the effective word size for transfers, in bits.
func (b *Bus) BitsPerWord() uint8 {
	return b.bpw
}

// LSBFirst returns true if words are transferred least significant bit
// first.
func (b *Bus) LSBFirst() bool {
	return b.lsbFirst
}

// MaxSpeed returns the effective maximum clock speed for the bus, in Hz.
func (b *Bus) MaxSpeed() uint32 {
	return b.maxSpeed
}

// Option specifies a construction option for the Bus.
type Option func(*Bus)

// WithMode requests the bus mode to apply on open.
func WithMode(m Mode) Option {
	return func(b *Bus) {
		b.reqMode = m
	}
}

// WithBitsPerWord requests the word size, in bits, to apply on open.
func WithBitsPerWord(bpw uint8) Option {
	return func(b *Bus) {
		b.reqBpw = bpw
	}
}

// WithMaxSpeed requests the maximum clock speed, in Hz, to apply on open.
func WithMaxSpeed(hz uint32) Option {
	return func(b *Bus) {
		b.reqSpeed = hz
	}
}
