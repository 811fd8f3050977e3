// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package spidev

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Request numbers for the spidev ioctls, from <linux/spi/spidev.h>.
const (
	iocRdMode        = 0x80016b01
	iocWrMode        = 0x40016b01
	iocRdLSBFirst    = 0x80016b02
	iocRdBitsPerWord = 0x80016b03
	iocWrBitsPerWord = 0x40016b03
	iocRdMaxSpeed    = 0x80046b04
	iocWrMaxSpeed    = 0x40046b04

	iocMessageBase = 0x40006b00
	iocSizeShift   = 16
)

// iocTransfer describes a single transfer to the SPI_IOC_MESSAGE ioctl.
// The field layout must exactly match struct spi_ioc_transfer, with buffer
// pointers cast to u64.
type iocTransfer struct {
	TxBuf          uint64
	RxBuf          uint64
	Length         uint32
	SpeedHz        uint32
	DelayUsecs     uint16
	BitsPerWord    uint8
	CSChange       uint8
	TxNBits        uint8
	RxNBits        uint8
	WordDelayUsecs uint8
	Pad            uint8
}

// iocMessage returns the request number for a batched transfer of n
// messages.
func iocMessage(n int) uint {
	return iocMessageBase | uint(n*int(unsafe.Sizeof(iocTransfer{})))<<iocSizeShift
}

// The entry points to the spidev driver, replaced by a fake driver in
// tests.
var (
	sysOpen  = unixOpen
	sysClose = unix.Close
	sysIoctl = unixIoctl
)

func unixOpen(path string) (int, error) {
	return unix.Open(path, unix.O_RDWR, 0)
}

func unixIoctl(fd int, req uint, arg unsafe.Pointer) (int, error) {
	cnt, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return 0, errno
	}
	return int(cnt), nil
}
