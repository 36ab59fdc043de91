// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSegment is a loadable region backed by an in-memory buffer.
type testSegment struct {
	addr uint64
	data []byte
}

// testFile is an in-memory fileHandler used to exercise the analysis
// without golden binaries.
type testFile struct {
	segments []testSegment
	sections map[string]testSegment
	dataAddr uint64
}

func (t *testFile) Close() error { return nil }

func (t *testFile) getSectionData(name string) (uint64, []byte, error) {
	s, ok := t.sections[name]
	if !ok {
		return 0, nil, ErrSectionDoesNotExist
	}
	return s.addr, s.data, nil
}

func (t *testFile) readFromAddress(addr, size uint64) []byte {
	for _, s := range t.segments {
		end := s.addr + uint64(len(s.data))
		if addr < s.addr || addr >= end {
			continue
		}
		n := size
		if max := end - addr; n > max {
			n = max
		}
		return s.data[addr-s.addr : addr-s.addr+n]
	}
	return nil
}

func (t *testFile) buildInfoAddr() uint64 { return t.dataAddr }

func (t *testFile) getPCLNTABData() (uint64, []byte, error) {
	return t.getSectionData(".gopclntab")
}

func (t *testFile) getFileInfo() *FileInfo {
	return &FileInfo{ByteOrder: binary.LittleEndian, WordSize: intSize64}
}

func (t *testFile) getBuildID() (string, error) { return "", nil }

func TestOpenUnsupportedFile(t *testing.T) {
	r := require.New(t)

	fp := filepath.Join(t.TempDir(), "not-a-binary")
	r.NoError(os.WriteFile(fp, []byte("just some text, no magic"), 0o644))

	_, err := Open(fp)
	r.ErrorIs(err, ErrUnsupportedFile)
}

func TestAnalyzeModuleCacheBinary(t *testing.T) {
	r := require.New(t)

	const (
		dataAddr    = 0x1000
		versHdrAddr = 0x2000
		modHdrAddr  = 0x2010
		versAddr    = 0x3000
		modAddr     = 0x3100
	)
	modinfo := "path\tcmd/x\n" +
		"mod\texample.com/a\tv1.0.0\th1:abc=\n" +
		"dep\texample.com/b\tv2.1.0\th1:def=\n"

	seg := make([]byte, 0x2200)
	copy(seg, buildInfoHeader(8, 0x00, nil))
	binary.LittleEndian.PutUint64(seg[16:], versHdrAddr)
	binary.LittleEndian.PutUint64(seg[24:], modHdrAddr)

	vers := "go1.18.5"
	wrapped := wrapModInfo(modinfo)
	binary.LittleEndian.PutUint64(seg[versHdrAddr-dataAddr:], versAddr)
	binary.LittleEndian.PutUint64(seg[versHdrAddr-dataAddr+8:], uint64(len(vers)))
	binary.LittleEndian.PutUint64(seg[modHdrAddr-dataAddr:], modAddr)
	binary.LittleEndian.PutUint64(seg[modHdrAddr-dataAddr+8:], uint64(len(wrapped)))
	copy(seg[versAddr-dataAddr:], vers)
	copy(seg[modAddr-dataAddr:], wrapped)

	files := []string{
		"/root/pkg/mod/example.com/b@v2.1.0/x/y.go",
		"/usr/local/go/src/fmt/print.go",
		"<autogenerated>",
	}
	fh := &testFile{
		segments: []testSegment{{addr: dataAddr, data: seg}},
		sections: map[string]testSegment{
			".gopclntab": {addr: 0, data: buildPclntab118(binary.LittleEndian, files)},
		},
		dataAddr: dataAddr,
	}

	f := &GoFile{fh: fh, FileInfo: fh.getFileInfo()}
	bin, err := f.Analyze()
	r.NoError(err)

	assert.Equal(t, "example.com/a", bin.Name)
	r.NotNil(bin.GoVersion)
	assert.Equal(t, "go1.18.5", bin.GoVersion.Name)

	r.Len(bin.Modules, 2)
	assert.Equal(t, "example.com/a@v1.0.0", bin.Modules[0].FullName())
	assert.True(t, bin.Modules[0].Main)
	assert.Empty(t, bin.Modules[0].Packages())
	assert.Equal(t, "example.com/b@v2.1.0", bin.Modules[1].FullName())
	assert.Equal(t, []string{"example.com/b/x"}, bin.Modules[1].Packages())

	assert.Equal(t, []string{"/usr/local/go/src/fmt/print.go"}, bin.StdLibFiles)
	assert.Empty(t, bin.UnclassifiedFiles)
}

func TestAnalyzeMissingPclntab(t *testing.T) {
	r := require.New(t)

	fh := &testFile{sections: map[string]testSegment{}}
	f := &GoFile{fh: fh}

	// The pcln table is checked before the build info: this fixture has
	// neither, and the missing table is what gets reported.
	_, err := f.Analyze()
	r.ErrorIs(err, ErrNoPCLNTab)
}
