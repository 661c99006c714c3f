// Package endian provides byte order utilities for the bzp container
// header.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, so header fields
// can be both parsed in place and appended to a growing buffer through one
// value. The container format is little-endian; the big-endian engine
// exists for tests and diagnostic tooling.
//
// The returned engines are the stdlib binary.LittleEndian and
// binary.BigEndian values: immutable, stateless, and safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder for convenient byte
// order operations on container headers.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the byte
// order of the bzp container format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
