// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package spidev

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fake stands in for the spidev driver, implementing the ioctl surface
// used by the Bus.
//
// Half-duplex writes are appended to a fifo which feeds subsequent
// half-duplex reads, simulating a bus in loopback mode. Full-duplex
// transfers echo tx to rx when echo is set.
type fake struct {
	fd     int
	opened bool
	closes int

	openErr error
	errs    map[uint]unix.Errno // errno returned for a given request

	mode  uint8
	lsb   uint8
	bpw   uint8
	speed uint32

	// if non-zero, requested speeds above this are clamped down,
	// simulating a driver adjusting a requested parameter.
	speedLimit uint32

	echo      bool
	fifo      []byte
	transfers int
}

// newFake installs a fake driver with typical defaults behind the syscall
// hooks for the duration of the test.
func newFake(t *testing.T) *fake {
	f := &fake{
		fd:    3,
		bpw:   8,
		speed: 500000,
	}
	oo, oc, oi := sysOpen, sysClose, sysIoctl
	sysOpen = f.open
	sysClose = f.close
	sysIoctl = f.ioctl
	t.Cleanup(func() {
		sysOpen, sysClose, sysIoctl = oo, oc, oi
	})
	return f
}

func (f *fake) open(path string) (int, error) {
	if f.openErr != nil {
		return 0, f.openErr
	}
	f.opened = true
	return f.fd, nil
}

func (f *fake) close(fd int) error {
	f.closes++
	return nil
}

func (f *fake) ioctl(fd int, req uint, arg unsafe.Pointer) (int, error) {
	if errno, ok := f.errs[req]; ok {
		return 0, errno
	}
	switch req {
	case iocWrMode:
		f.mode = *(*uint8)(arg)
	case iocRdMode:
		*(*uint8)(arg) = f.mode
	case iocRdLSBFirst:
		*(*uint8)(arg) = f.lsb
	case iocWrBitsPerWord:
		f.bpw = *(*uint8)(arg)
	case iocRdBitsPerWord:
		*(*uint8)(arg) = f.bpw
	case iocWrMaxSpeed:
		f.speed = *(*uint32)(arg)
		if f.speedLimit != 0 && f.speed > f.speedLimit {
			f.speed = f.speedLimit
		}
	case iocRdMaxSpeed:
		*(*uint32)(arg) = f.speed
	case iocMessage(1):
		return f.message(arg)
	default:
		return 0, unix.EINVAL
	}
	return 0, nil
}

func (f *fake) message(arg unsafe.Pointer) (int, error) {
	f.transfers++
	x := (*iocTransfer)(arg)
	var tx, rx []byte
	if x.TxBuf != 0 {
		tx = unsafe.Slice((*byte)(unsafe.Pointer(uintptr(x.TxBuf))), x.Length)
	}
	if x.RxBuf != 0 {
		rx = unsafe.Slice((*byte)(unsafe.Pointer(uintptr(x.RxBuf))), x.Length)
	}
	switch {
	case f.echo:
		copy(rx, tx)
	case rx == nil:
		f.fifo = append(f.fifo, tx...)
	case tx == nil:
		n := copy(rx, f.fifo)
		f.fifo = f.fifo[n:]
	}
	return int(x.Length), nil
}
