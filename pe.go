// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"debug/pe"
	"encoding/binary"
)

func openPE(fp string) (*peFile, error) {
	f, err := pe.Open(fp)
	if err != nil {
		return nil, err
	}
	p := &peFile{file: f}
	switch hdr := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		p.imageBase = uint64(hdr.ImageBase)
	case *pe.OptionalHeader64:
		p.imageBase = hdr.ImageBase
	}
	return p, nil
}

type peFile struct {
	file      *pe.File
	imageBase uint64
}

func (p *peFile) Close() error {
	return p.file.Close()
}

func (p *peFile) getSectionData(name string) (uint64, []byte, error) {
	section := p.file.Section(name)
	if section == nil {
		return 0, nil, ErrSectionDoesNotExist
	}
	data, err := section.Data()
	return p.imageBase + uint64(section.VirtualAddress), data, err
}

// PE has no program-header table; the sections stand in as the loadable
// regions, with their raw data size as the on-disk extent.
func (p *peFile) readFromAddress(addr, size uint64) []byte {
	for _, section := range p.file.Sections {
		vaddr := p.imageBase + uint64(section.VirtualAddress)
		filesz := uint64(section.Size)
		if addr < vaddr || addr >= vaddr+filesz {
			continue
		}
		n := size
		if max := vaddr + filesz - addr; n > max {
			n = max
		}
		data := make([]byte, n)
		if _, err := section.ReadAt(data, int64(addr-vaddr)); err != nil {
			return nil
		}
		return data
	}
	return nil
}

const (
	peSectionRead          = 0x40000000
	peSectionWrite         = 0x80000000
	peSectionUninitialized = 0x00000080
)

// buildInfoAddr returns the first initialized read-write section, which is
// where the linker places the build-info blob on Windows.
func (p *peFile) buildInfoAddr() uint64 {
	for _, section := range p.file.Sections {
		c := section.Characteristics
		if c&(peSectionRead|peSectionWrite) != peSectionRead|peSectionWrite {
			continue
		}
		if c&peSectionUninitialized != 0 {
			continue
		}
		return p.imageBase + uint64(section.VirtualAddress)
	}
	return 0
}

// PE binaries carry no .gopclntab section, so the table is found by
// scanning the data sections for its header magic.
func (p *peFile) getPCLNTABData() (uint64, []byte, error) {
	addr, data, err := searchFileForPCLNTab(p.file)
	return p.imageBase + uint64(addr), data, err
}

func (p *peFile) getBuildID() (string, error) {
	section := p.file.Section(".text")
	if section == nil {
		return "", ErrSectionDoesNotExist
	}
	data, err := section.Data()
	if err != nil {
		return "", err
	}
	return parseBuildIDFromRaw(data)
}

func (p *peFile) getFileInfo() *FileInfo {
	fi := &FileInfo{ByteOrder: binary.LittleEndian, OS: "windows"}
	switch p.file.Machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		fi.WordSize = intSize32
		fi.Arch = Arch386
	case pe.IMAGE_FILE_MACHINE_ARM64:
		fi.WordSize = intSize64
		fi.Arch = ArchARM64
	default:
		fi.WordSize = intSize64
		fi.Arch = ArchAMD64
	}
	return fi
}
