// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughBytesRead is returned if a read call returned less bytes than what is needed.
	ErrNotEnoughBytesRead = errors.New("not enough bytes read")
	// ErrUnsupportedFile is returned if the file format is unsupported.
	ErrUnsupportedFile = errors.New("unsupported file")
	// ErrSectionDoesNotExist is returned when accessing a section that does not exist.
	ErrSectionDoesNotExist = errors.New("section does not exist")
	// ErrNotGoExecutable is returned when no aligned build-info header can be
	// located in the binary's data region.
	ErrNotGoExecutable = errors.New("not a Go executable")
	// ErrNoVersion is returned when the Go version string in the build-info
	// blob reads empty.
	ErrNoVersion = errors.New("no version found")
	// ErrNoModuleInfo is returned when the build-info decoder yields an empty
	// module-information blob.
	ErrNoModuleInfo = errors.New("no module information in the binary")
	// ErrNoModuleSupport is returned when the module-information blob fails
	// the bounding magic check.
	ErrNoModuleSupport = errors.New("binary is not built with go module support")
	// ErrNoPCLNTab is returned if no PCLN table can be located.
	ErrNoPCLNTab = errors.New("no pcln table present in Go binary")
)

// FileClassificationError is returned when a source file path splits against
// a module key in a way that contradicts the module layout. The error aborts
// the analysis; partial attribution is never returned.
type FileClassificationError struct {
	File   string
	Module string
}

func (e *FileClassificationError) Error() string {
	return fmt.Sprintf("file name %s could not be classified against module %s", e.File, e.Module)
}
