// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"debug/elf"
	"fmt"
)

func openELF(fp string) (*elfFile, error) {
	f, err := elf.Open(fp)
	if err != nil {
		return nil, err
	}
	return &elfFile{file: f}, nil
}

type elfFile struct {
	file *elf.File
}

func (e *elfFile) Close() error {
	return e.file.Close()
}

func (e *elfFile) getSectionData(name string) (uint64, []byte, error) {
	section := e.file.Section(name)
	if section == nil {
		return 0, nil, ErrSectionDoesNotExist
	}
	data, err := section.Data()
	return section.Addr, data, err
}

// readFromAddress resolves a virtual address against the program segments.
// The first segment covering the address wins; the read is clamped to the
// segment's file size. Addresses not covered by any segment return nil.
func (e *elfFile) readFromAddress(addr, size uint64) []byte {
	for _, prog := range e.file.Progs {
		if addr < prog.Vaddr || addr >= prog.Vaddr+prog.Filesz {
			continue
		}
		n := size
		if max := prog.Vaddr + prog.Filesz - addr; n > max {
			n = max
		}
		data := make([]byte, n)
		if _, err := prog.ReadAt(data, int64(addr-prog.Vaddr)); err != nil {
			return nil
		}
		return data
	}
	return nil
}

// buildInfoAddr returns the start of the data region holding the build-info
// blob: the .go.buildinfo section when present, otherwise the first
// writable loadable segment.
func (e *elfFile) buildInfoAddr() uint64 {
	if s := e.file.Section(".go.buildinfo"); s != nil {
		return s.Addr
	}
	for _, prog := range e.file.Progs {
		if prog.Type == elf.PT_LOAD && prog.Flags&elf.PF_W != 0 {
			return prog.Vaddr
		}
	}
	return 0
}

func (e *elfFile) getPCLNTABData() (uint64, []byte, error) {
	return e.getSectionData(".gopclntab")
}

func (e *elfFile) getBuildID() (string, error) {
	_, data, err := e.getSectionData(".note.go.buildid")
	if err != nil {
		return "", fmt.Errorf("error when getting note section: %w", err)
	}
	return parseBuildIDFromElf(data, e.file.ByteOrder)
}

func (e *elfFile) getFileInfo() *FileInfo {
	var wordSize int
	switch e.file.Class {
	case elf.ELFCLASS32:
		wordSize = intSize32
	case elf.ELFCLASS64:
		wordSize = intSize64
	}

	fi := &FileInfo{
		ByteOrder: e.file.ByteOrder,
		OS:        "linux",
		WordSize:  wordSize,
	}
	switch e.file.Machine {
	case elf.EM_X86_64:
		fi.Arch = ArchAMD64
	case elf.EM_386:
		fi.Arch = Arch386
	case elf.EM_ARM:
		fi.Arch = ArchARM
	case elf.EM_AARCH64:
		fi.Arch = ArchARM64
	case elf.EM_MIPS:
		fi.Arch = ArchMIPS
	}
	return fi
}
