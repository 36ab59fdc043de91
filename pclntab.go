// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"fmt"
)

// Header magics for the successive pcln table layouts.
const (
	go12magic  = 0xfffffffb
	go116magic = 0xfffffffa
	go118magic = 0xfffffff0
	go120magic = 0xfffffff1
)

type pclnVersion int

const (
	ver12 pclnVersion = iota
	ver116
	ver118
	ver120
)

// lineTable decodes the file-name table of a Go runtime pcln table. Only
// the pieces needed to enumerate the source files are parsed; everything
// else (functab, pc-value tables) is left untouched.
type lineTable struct {
	data     []byte
	order    binary.ByteOrder
	version  pclnVersion
	quantum  int
	ptrSize  int
	nfunctab uint32
	nfiletab uint32
	filetab  []byte
}

// pclnFiles decodes the raw bytes of the pcln table and returns the source
// file paths it references, in table order. Structurally malformed tables
// surface as an error rather than a panic.
func pclnFiles(data []byte) (files []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			files, err = nil, fmt.Errorf("malformed pcln table: %v", r)
		}
	}()
	t, err := newLineTable(data)
	if err != nil {
		return nil, err
	}
	return t.files(), nil
}

func newLineTable(data []byte) (*lineTable, error) {
	if len(data) < 16 || data[4] != 0 || data[5] != 0 ||
		(data[6] != 1 && data[6] != 2 && data[6] != 4) || // pc quantum
		(data[7] != 4 && data[7] != 8) { // pointer size
		return nil, fmt.Errorf("unsupported pcln table header")
	}

	// The magic identifies both the layout revision and the byte order.
	var version pclnVersion
	var order binary.ByteOrder
	switch {
	case binary.LittleEndian.Uint32(data) == go12magic:
		version, order = ver12, binary.LittleEndian
	case binary.BigEndian.Uint32(data) == go12magic:
		version, order = ver12, binary.BigEndian
	case binary.LittleEndian.Uint32(data) == go116magic:
		version, order = ver116, binary.LittleEndian
	case binary.BigEndian.Uint32(data) == go116magic:
		version, order = ver116, binary.BigEndian
	case binary.LittleEndian.Uint32(data) == go118magic:
		version, order = ver118, binary.LittleEndian
	case binary.BigEndian.Uint32(data) == go118magic:
		version, order = ver118, binary.BigEndian
	case binary.LittleEndian.Uint32(data) == go120magic:
		version, order = ver120, binary.LittleEndian
	case binary.BigEndian.Uint32(data) == go120magic:
		version, order = ver120, binary.BigEndian
	default:
		return nil, fmt.Errorf("unknown pcln table magic %#x", data[:4])
	}

	t := &lineTable{
		data:    data,
		order:   order,
		version: version,
		quantum: int(data[6]),
		ptrSize: int(data[7]),
	}

	switch version {
	case ver118, ver120:
		t.nfunctab = uint32(t.offset(0))
		t.nfiletab = uint32(t.offset(1))
		t.filetab = data[t.offset(5):]
	case ver116:
		t.nfunctab = uint32(t.offset(0))
		t.nfiletab = uint32(t.offset(1))
		t.filetab = data[t.offset(4):]
	case ver12:
		t.nfunctab = uint32(t.uintptr(data[8:]))
		functab := data[8+t.ptrSize:]
		functabsize := (int(t.nfunctab)*2 + 1) * t.ptrSize
		fileoff := t.order.Uint32(functab[functabsize:])
		t.filetab = data[fileoff:]
		t.nfiletab = t.order.Uint32(t.filetab)
	}
	return t, nil
}

// files enumerates the file-name table. The go1.2 layout stores a table of
// offsets into the pcln data (entry 0 unused); go1.16 onwards stores the
// names back to back, NUL terminated.
func (t *lineTable) files() []string {
	files := make([]string, 0, t.nfiletab)
	if t.version == ver12 {
		for i := uint32(1); i < t.nfiletab; i++ {
			off := t.order.Uint32(t.filetab[4*i:])
			files = append(files, t.stringAt(t.data, off))
		}
		return files
	}
	var pos uint32
	for i := uint32(0); i < t.nfiletab; i++ {
		s := t.stringAt(t.filetab, pos)
		files = append(files, s)
		pos += uint32(len(s) + 1)
	}
	return files
}

func (t *lineTable) stringAt(b []byte, off uint32) string {
	end := bytes.IndexByte(b[off:], 0)
	if end < 0 {
		panic("unterminated file name string")
	}
	return string(b[off : off+uint32(end)])
}

// uintptr reads a pointer-sized integer in the table's byte order.
func (t *lineTable) uintptr(b []byte) uint64 {
	if t.ptrSize == 4 {
		return uint64(t.order.Uint32(b))
	}
	return t.order.Uint64(b)
}

// offset returns the header word at the given index. The words follow the
// 8-byte header prologue.
func (t *lineTable) offset(word int) uint64 {
	return t.uintptr(t.data[8+word*t.ptrSize:])
}

// pclntabmagic is the raw little-endian form of the pre-1.16 magic, used
// when scanning sections for the table start.
var pclntabmagic = []byte{0xfb, 0xff, 0xff, 0xff}

// pclntab116magic is the raw form of the Go 1.16 and 1.17 magic.
var pclntab116magic = []byte{0xfa, 0xff, 0xff, 0xff}

// pclntab118magic is the raw form of the Go 1.18 and 1.19 magic.
var pclntab118magic = []byte{0xf0, 0xff, 0xff, 0xff}

// pclntab120magic is the raw form of the magic used since Go 1.20.
var pclntab120magic = []byte{0xf1, 0xff, 0xff, 0xff}

// searchFileForPCLNTab will search the .rdata and .text sections for the
// PCLN table. Note!! The address returned by this function needs to be
// adjusted by adding the image base address!!!
func searchFileForPCLNTab(f *pe.File) (uint32, []byte, error) {
	for _, v := range []string{".rdata", ".text"} {
		sec := f.Section(v)
		if sec == nil {
			continue
		}
		secData, err := sec.Data()
		if err != nil {
			continue
		}
		tab, err := searchSectionForTab(secData)
		if err != nil {
			continue
		}
		addr := sec.VirtualAddress + uint32(len(secData)-len(tab))
		return addr, tab, nil
	}
	return 0, []byte{}, ErrNoPCLNTab
}

// searchSectionForTab looks for the PCLN table within the section.
func searchSectionForTab(secData []byte) ([]byte, error) {
	for _, magic := range [][]byte{pclntab120magic, pclntab118magic, pclntab116magic, pclntabmagic} {
		off := bytes.LastIndex(secData, magic)
		for off != -1 {
			buf := secData[off:]
			if len(buf) >= 16 && buf[4] == 0 && buf[5] == 0 &&
				(buf[6] == 1 || buf[6] == 2 || buf[6] == 4) && // pc quantum
				(buf[7] == 4 || buf[7] == 8) { // pointer size
				return buf, nil
			}
			if off == 0 {
				break
			}
			off = bytes.LastIndex(secData[:off], magic)
		}
	}
	return nil, ErrNoPCLNTab
}
