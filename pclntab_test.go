// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPclntab118 assembles a minimal Go 1.18+ pcln table: the 8-byte
// header prologue, eight header words, and the file-name table. No
// functions are needed to enumerate files.
func buildPclntab118(order binary.ByteOrder, files []string) []byte {
	const ptrSize = 8
	const headerSize = 8 + 8*ptrSize

	var ftab []byte
	for _, f := range files {
		ftab = append(ftab, f...)
		ftab = append(ftab, 0)
	}

	data := make([]byte, headerSize, headerSize+len(ftab))
	order.PutUint32(data, go118magic)
	data[6] = 1       // pc quantum
	data[7] = ptrSize // pointer size
	order.PutUint64(data[8+1*ptrSize:], uint64(len(files))) // nfiletab
	order.PutUint64(data[8+5*ptrSize:], headerSize)         // filetab offset
	return append(data, ftab...)
}

// buildPclntab116 assembles a Go 1.16 layout table with 32-bit pointers:
// seven header words, file names back to back.
func buildPclntab116(order binary.ByteOrder, files []string) []byte {
	const ptrSize = 4
	const headerSize = 8 + 7*ptrSize

	var ftab []byte
	for _, f := range files {
		ftab = append(ftab, f...)
		ftab = append(ftab, 0)
	}

	data := make([]byte, headerSize, headerSize+len(ftab))
	order.PutUint32(data, go116magic)
	data[6] = 1
	data[7] = ptrSize
	order.PutUint32(data[8+1*ptrSize:], uint32(len(files))) // nfiletab
	order.PutUint32(data[8+4*ptrSize:], headerSize)         // filetab offset
	return append(data, ftab...)
}

// buildPclntab12 assembles a pre-1.16 layout table: an empty functab, the
// 4-byte file-table offset behind it, and an offset-indexed file table
// whose entry 0 is unused.
func buildPclntab12(order binary.ByteOrder, files []string) []byte {
	const ptrSize = 8
	const filetabOff = 8 + ptrSize + ptrSize + 4 // header, nfunctab, functab terminator, fileoff

	n := len(files)
	data := make([]byte, filetabOff+4*(n+1))
	order.PutUint32(data, go12magic)
	data[6] = 1
	data[7] = ptrSize
	// nfunctab at data[8:] stays zero.
	order.PutUint32(data[8+2*ptrSize:], filetabOff)  // fileoff behind the functab
	order.PutUint32(data[filetabOff:], uint32(n+1))  // table length, entry 0 unused
	for i, f := range files {
		order.PutUint32(data[filetabOff+4*(i+1):], uint32(len(data)))
		data = append(data, f...)
		data = append(data, 0)
	}
	return data
}

func TestPclnFiles118(t *testing.T) {
	r := require.New(t)

	files := []string{
		"/root/pkg/mod/example.com/b@v2.1.0/x/y.go",
		"/home/dev/src/example.com/a/main.go",
		"<autogenerated>",
	}
	for _, tt := range []struct {
		name  string
		order binary.ByteOrder
	}{
		{"little-endian", binary.LittleEndian},
		{"big-endian", binary.BigEndian},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pclnFiles(buildPclntab118(tt.order, files))
			r.NoError(err)
			assert.Equal(t, files, got)
		})
	}
}

func TestPclnFiles116(t *testing.T) {
	r := require.New(t)

	files := []string{"a.go", "b/c.go"}
	got, err := pclnFiles(buildPclntab116(binary.BigEndian, files))
	r.NoError(err)
	assert.Equal(t, files, got)
}

func TestPclnFiles12(t *testing.T) {
	r := require.New(t)

	files := []string{"/go/src/x/y.go", "/go/src/x/z.go"}
	got, err := pclnFiles(buildPclntab12(binary.LittleEndian, files))
	r.NoError(err)
	assert.Equal(t, files, got)
}

func TestPclnFilesBadHeader(t *testing.T) {
	r := require.New(t)

	_, err := pclnFiles([]byte{0xde, 0xad, 0xbe, 0xef})
	r.Error(err)

	// Right size, wrong magic.
	bad := make([]byte, 32)
	bad[6] = 1
	bad[7] = 8
	_, err = pclnFiles(bad)
	r.Error(err)

	// Known magic with an impossible pointer size.
	bad = buildPclntab118(binary.LittleEndian, []string{"a.go"})
	bad[7] = 3
	_, err = pclnFiles(bad)
	r.Error(err)
}

func TestPclnFilesTruncated(t *testing.T) {
	r := require.New(t)

	// Cutting the table inside the file-name data must surface as an
	// error, not a panic.
	data := buildPclntab118(binary.LittleEndian, []string{"some/longish/file/name.go"})
	_, err := pclnFiles(data[:len(data)-3])
	r.Error(err)
}

func TestSearchSectionForTab(t *testing.T) {
	r := require.New(t)

	tab := buildPclntab118(binary.LittleEndian, []string{"a.go"})
	section := append(make([]byte, 123), tab...)
	got, err := searchSectionForTab(section)
	r.NoError(err)
	assert.Equal(t, tab, got)

	_, err = searchSectionForTab(make([]byte, 64))
	r.ErrorIs(err, ErrNoPCLNTab)
}
