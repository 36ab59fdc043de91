// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

var (
	elfMagic       = []byte{0x7f, 0x45, 0x4c, 0x46}
	peMagic        = []byte{0x4d, 0x5a}
	machoMagic1    = []byte{0xfe, 0xed, 0xfa, 0xce}
	machoMagic2    = []byte{0xfe, 0xed, 0xfa, 0xcf}
	machoMagic3    = []byte{0xce, 0xfa, 0xed, 0xfe}
	machoMagic4    = []byte{0xcf, 0xfa, 0xed, 0xfe}
	maxMagicBufLen = 4
)

// Open opens a compiled Go executable and returns a handler to the file.
func Open(filePath string) (*GoFile, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, maxMagicBufLen)
	n, err := f.Read(buf)
	f.Close()
	if err != nil {
		return nil, err
	}
	if n < maxMagicBufLen {
		return nil, ErrNotEnoughBytesRead
	}

	gofile := new(GoFile)
	switch {
	case fileMagicMatch(buf, elfMagic):
		elf, err := openELF(filePath)
		if err != nil {
			return nil, err
		}
		gofile.fh = elf
	case fileMagicMatch(buf, peMagic):
		pe, err := openPE(filePath)
		if err != nil {
			return nil, err
		}
		gofile.fh = pe
	case fileMagicMatch(buf, machoMagic1), fileMagicMatch(buf, machoMagic2),
		fileMagicMatch(buf, machoMagic3), fileMagicMatch(buf, machoMagic4):
		macho, err := openMachO(filePath)
		if err != nil {
			return nil, err
		}
		gofile.fh = macho
	default:
		return nil, ErrUnsupportedFile
	}
	gofile.FileInfo = gofile.fh.getFileInfo()

	// If the ID has been removed or tampered with, this will fail. If we
	// can't get a build ID, we skip it.
	buildID, err := gofile.fh.getBuildID()
	if err == nil {
		gofile.BuildID = buildID
	}

	return gofile, nil
}

// GoFile is a structure representing a Go binary file.
type GoFile struct {
	// FileInfo holds information about the file.
	FileInfo *FileInfo
	// BuildID is the Go build ID hash extracted from the binary.
	BuildID string
	fh      fileHandler
}

// Close releases the file handler.
func (f *GoFile) Close() error {
	return f.fh.Close()
}

// fileHandler is the format-specific surface the analysis runs against. The
// segment reads resolve virtual addresses against the file's loadable
// regions; reads not covered by any region return nil.
type fileHandler interface {
	io.Closer
	getSectionData(string) (uint64, []byte, error)
	readFromAddress(addr, size uint64) []byte
	buildInfoAddr() uint64
	getPCLNTABData() (uint64, []byte, error)
	getFileInfo() *FileInfo
	getBuildID() (string, error)
}

func fileMagicMatch(buf, magic []byte) bool {
	return bytes.HasPrefix(buf, magic)
}

// FileInfo holds information about the file.
type FileInfo struct {
	// Arch is the architecture the binary is compiled for.
	Arch string
	// OS is the operating system the binary is compiled for.
	OS string
	// ByteOrder is the byte order.
	ByteOrder binary.ByteOrder
	// WordSize is the natural integer size used by the file.
	WordSize int
}

const (
	intSize32 = 4
	intSize64 = 8
)

const (
	ArchAMD64 = "amd64"
	ArchARM   = "arm"
	ArchARM64 = "arm64"
	Arch386   = "i386"
	ArchMIPS  = "mips"
)
