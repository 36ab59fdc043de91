// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var (
	goNoteNameELF  = []byte("Go\x00\x00")
	goNoteRawStart = []byte("\xff Go build ID: \"")
	goNoteRawEnd   = []byte("\"\n \xff")
)

// goBuildIDTag is the note type the Go linker uses for the build ID.
const goBuildIDTag = 4

// parseBuildIDFromElf extracts the build ID from the .note.go.buildid
// section contents.
func parseBuildIDFromElf(data []byte, byteOrder binary.ByteOrder) (string, error) {
	if len(data) < 16 {
		return "", ErrNotEnoughBytesRead
	}
	nameLen := byteOrder.Uint32(data)
	idLen := byteOrder.Uint32(data[4:])
	tag := byteOrder.Uint32(data[8:])

	if tag != goBuildIDTag {
		return "", fmt.Errorf("build ID does not match expected value, 0x%x parsed", tag)
	}
	if uint32(len(data)) < 12+nameLen || uint32(len(data)) < 16+idLen {
		return "", ErrNotEnoughBytesRead
	}
	if !bytes.Equal(data[12:12+nameLen], goNoteNameELF) {
		return "", fmt.Errorf("note name not as expected")
	}
	return string(data[16 : 16+idLen]), nil
}

// parseBuildIDFromRaw scans raw section data for the quoted build ID
// marker. Used for formats without a dedicated note section.
func parseBuildIDFromRaw(data []byte) (string, error) {
	idx := bytes.Index(data, goNoteRawStart)
	if idx < 0 {
		// No Build ID.
		return "", nil
	}
	end := bytes.Index(data, goNoteRawEnd)
	if end < 0 {
		return "", fmt.Errorf("malformed build ID")
	}
	return string(data[idx+len(goNoteRawStart) : end]), nil
}
