// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/spidev"
)

// This example reads all eight channels from an MCP3008 ADC connected to
// the first chip-select of SPI bus 0. The device and bus speed are defined
// in loadConfig, but can be altered via configuration (env, flag or config
// file). The conversion framing is performed here with raw exchanges - the
// spidev package itself only moves the bytes.
func main() {
	cfg := loadConfig()
	s, err := spidev.Open(
		cfg.MustGet("device").String(),
		spidev.WithMaxSpeed(uint32(cfg.MustGet("speed").Int())))
	if err != nil {
		panic(err)
	}
	defer s.Close()
	for ch := 0; ch < 8; ch++ {
		// start bit, then single-ended conversion on ch, then clock out
		// the 10-bit result.
		tx := []byte{0x01, byte(0x80 | ch<<4), 0x00}
		rx, err := s.Exchange(tx)
		if err != nil {
			panic(err)
		}
		d := uint16(rx[1]&0x03)<<8 | uint16(rx[2])
		fmt.Printf("ch%d=0x%03x\n", ch, d)
	}
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"device": "/dev/spidev0.0",
		"speed":  1350000,
	}
	def := dict.New(dict.WithMap(defaultConfig))
	shortFlags := map[byte]string{
		'c': "config-file",
	}
	// highest priority sources first - flags override environment
	cfg := config.New(
		pflag.New(pflag.WithShortFlags(shortFlags)),
		env.New(env.WithEnvPrefix("MCP3008_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "mcp3008.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust())
	return cfg
}
