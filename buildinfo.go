// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"bytes"
	"encoding/binary"
)

// buildInfoMagic is the marker the linker writes in front of the build-info
// header: \xff followed by " Go buildinf:".
var buildInfoMagic = []byte("\xff Go buildinf:")

const (
	// buildInfoAlign is the boundary the header is aligned to.
	buildInfoAlign = 16
	// buildInfoHeaderSize is the size of the fixed header: the 14-byte
	// magic, the pointer-size byte, the flags byte, and two pointer slots.
	buildInfoHeaderSize = 32
	// buildInfoMaxScan bounds the scan of the data region.
	buildInfoMaxScan = 64 * 1024
)

const (
	flagBigEndian     = 0x1
	flagInlineStrings = 0x2
)

// findBuildInfo locates the build-info header in the binary's data region
// and returns the data from the header start onwards. The magic must sit on
// a 16-byte boundary; misaligned hits are skipped by advancing to the next
// boundary strictly past the hit.
func findBuildInfo(fh fileHandler) ([]byte, error) {
	data := fh.readFromAddress(fh.buildInfoAddr(), buildInfoMaxScan)
	if len(data) == 0 {
		return nil, ErrNotGoExecutable
	}
	for off := 0; off < len(data); {
		i := bytes.Index(data[off:], buildInfoMagic)
		if i < 0 {
			break
		}
		hit := off + i
		if hit%buildInfoAlign != 0 {
			off = (hit + buildInfoAlign) &^ (buildInfoAlign - 1)
			continue
		}
		if len(data)-hit < buildInfoHeaderSize {
			break
		}
		return data[hit:], nil
	}
	return nil, ErrNotGoExecutable
}

// decodeBuildInfo decodes the Go version string and the module-info blob
// from the located header. Go 1.18 and later inline the strings after the
// header as varint-prefixed data; earlier versions store two pointers to
// runtime string headers, read back through the program segments.
func decodeBuildInfo(fh fileHandler, header []byte) (vers, mod string, err error) {
	ptrSize := int(header[14])
	flags := header[15]

	if flags&flagInlineStrings != 0 {
		var rest []byte
		vers, rest = decodeVarintString(header[buildInfoHeaderSize:])
		mod, _ = decodeVarintString(rest)
	} else {
		if ptrSize != intSize32 && ptrSize != intSize64 {
			return "", "", ErrNotGoExecutable
		}
		pr := ptrReader{order: binary.LittleEndian, size: ptrSize}
		if flags&flagBigEndian != 0 {
			pr.order = binary.BigEndian
		}
		vers = readStringFromPtr(fh, pr, pr.uint(header[16:]))
		mod = readStringFromPtr(fh, pr, pr.uint(header[16+ptrSize:]))
	}

	if vers == "" {
		return "", "", ErrNoVersion
	}
	if mod == "" {
		return "", "", ErrNoModuleInfo
	}

	// The module info is wrapped in 16-byte magic sentinels with a
	// trailing newline just inside the suffix.
	if len(mod) < 33 || mod[len(mod)-17] != '\n' {
		return "", "", ErrNoModuleSupport
	}
	return vers, mod[16 : len(mod)-16], nil
}

// decodeVarintString decodes a varint-length-prefixed string and returns it
// together with the remaining bytes. Malformed prefixes yield the empty
// string, which the caller treats as failure.
func decodeVarintString(data []byte) (string, []byte) {
	n, w := binary.Uvarint(data)
	if w <= 0 || n > uint64(len(data)-w) {
		return "", nil
	}
	return string(data[w : w+int(n)]), data[w+int(n):]
}

// ptrReader reads unsigned integers of the binary's pointer width in its
// byte order.
type ptrReader struct {
	order binary.ByteOrder
	size  int
}

func (p ptrReader) uint(b []byte) uint64 {
	if len(b) < p.size {
		return 0
	}
	if p.size == intSize32 {
		return uint64(p.order.Uint32(b))
	}
	return p.order.Uint64(b)
}

// readStringFromPtr dereferences a runtime string header at addr: a data
// pointer followed by a length, then the string bytes themselves. Any short
// read yields the empty string.
func readStringFromPtr(fh fileHandler, pr ptrReader, addr uint64) string {
	if addr == 0 {
		return ""
	}
	hdr := fh.readFromAddress(addr, uint64(2*pr.size))
	if len(hdr) < 2*pr.size {
		return ""
	}
	dataAddr := pr.uint(hdr)
	dataLen := pr.uint(hdr[pr.size:])
	if dataAddr == 0 || dataLen == 0 {
		return ""
	}
	data := fh.readFromAddress(dataAddr, dataLen)
	if uint64(len(data)) < dataLen {
		return ""
	}
	return string(data)
}
