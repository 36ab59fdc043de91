// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"debug/macho"
)

func openMachO(fp string) (*machoFile, error) {
	f, err := macho.Open(fp)
	if err != nil {
		return nil, err
	}
	return &machoFile{file: f}, nil
}

type machoFile struct {
	file *macho.File
}

func (m *machoFile) Close() error {
	return m.file.Close()
}

func (m *machoFile) getSectionData(name string) (uint64, []byte, error) {
	section := m.file.Section(name)
	if section == nil {
		return 0, nil, ErrSectionDoesNotExist
	}
	data, err := section.Data()
	return section.Addr, data, err
}

func (m *machoFile) readFromAddress(addr, size uint64) []byte {
	for _, load := range m.file.Loads {
		seg, ok := load.(*macho.Segment)
		if !ok {
			continue
		}
		if addr < seg.Addr || addr >= seg.Addr+seg.Filesz {
			continue
		}
		n := size
		if max := seg.Addr + seg.Filesz - addr; n > max {
			n = max
		}
		data := make([]byte, n)
		if _, err := seg.ReadAt(data, int64(addr-seg.Addr)); err != nil {
			return nil
		}
		return data
	}
	return nil
}

func (m *machoFile) buildInfoAddr() uint64 {
	if section := m.file.Section("__go_buildinfo"); section != nil {
		return section.Addr
	}
	if seg := m.file.Segment("__DATA"); seg != nil {
		return seg.Addr
	}
	return 0
}

func (m *machoFile) getPCLNTABData() (uint64, []byte, error) {
	return m.getSectionData("__gopclntab")
}

func (m *machoFile) getBuildID() (string, error) {
	_, data, err := m.getSectionData("__text")
	if err != nil {
		return "", err
	}
	return parseBuildIDFromRaw(data)
}

func (m *machoFile) getFileInfo() *FileInfo {
	fi := &FileInfo{
		ByteOrder: m.file.ByteOrder,
		OS:        "macOS",
	}
	switch m.file.Cpu {
	case macho.Cpu386:
		fi.WordSize = intSize32
		fi.Arch = Arch386
	case macho.CpuAmd64:
		fi.WordSize = intSize64
		fi.Arch = ArchAMD64
	case macho.CpuArm64:
		fi.WordSize = intSize64
		fi.Arch = ArchARM64
	default:
		fi.WordSize = intSize64
	}
	return fi
}
