// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"errors"
	"fmt"
)

// goDistributionPrefix is prepended to the path directive when the binary is
// a command from the Go standard distribution. The "@" embedding cannot
// collide with a module name since "@" is not a valid module-name character,
// and module versions never contain "@" either.
const goDistributionPrefix = "go-distribution@"

// Module is a Go module compiled into a binary, identified by its import
// path and version. The package set is populated once, during path
// classification, and read-only afterwards.
type Module struct {
	// Name is the module's import path, e.g. github.com/x/y.
	Name string
	// Version is the module's semantic version, e.g. v1.2.3.
	Version string
	// Main reports whether this is the binary's main module.
	Main bool

	packages []string
	seen     map[string]struct{}
}

// FullName returns the module identity as name@version.
func (m *Module) FullName() string {
	return m.Name + "@" + m.Version
}

// Packages returns the package paths attributed to this module, in
// insertion order.
func (m *Module) Packages() []string {
	return m.packages
}

func (m *Module) addPackage(pkg string) {
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	if _, ok := m.seen[pkg]; ok {
		return
	}
	m.seen[pkg] = struct{}{}
	m.packages = append(m.packages, pkg)
}

// GoBinary is the result of analyzing a compiled Go executable: the main
// module identity, the modules compiled in, and the per-module package
// attribution.
type GoBinary struct {
	// Name is the main module's path, or go-distribution@<path> for
	// binaries from the Go standard distribution.
	Name string
	// GoVersion is the compiler version recorded in the build info.
	// Nil if the version string could not be parsed.
	GoVersion *GoVersion
	// BuildID is the Go build ID hash, when present.
	BuildID string
	// Modules holds the main module followed by the dependency modules,
	// in build-info declaration order.
	Modules []*Module
	// StdLibFiles are source files recognized as Go standard library.
	StdLibFiles []string
	// UnclassifiedFiles are source files that could not be attributed to
	// any module or to the standard library.
	UnclassifiedFiles []string
}

// MainModule returns the binary's main module, or nil for a Go
// distribution binary.
func (b *GoBinary) MainModule() *Module {
	for _, m := range b.Modules {
		if m.Main {
			return m
		}
	}
	return nil
}

// Analyze extracts the module and package information embedded in the
// binary. The pcln table is required; binaries without one are rejected.
func (f *GoFile) Analyze() (*GoBinary, error) {
	_, pclnData, err := f.fh.getPCLNTABData()
	if err != nil {
		if errors.Is(err, ErrSectionDoesNotExist) || errors.Is(err, ErrNoPCLNTab) {
			return nil, ErrNoPCLNTab
		}
		return nil, fmt.Errorf("failed to get pcln table data: %w", err)
	}

	header, err := findBuildInfo(f.fh)
	if err != nil {
		return nil, err
	}

	vers, modData, err := decodeBuildInfo(f.fh, header)
	if err != nil {
		return nil, err
	}

	name, mods := parseModInfo(modData)

	files, err := pclnFiles(pclnData)
	if err != nil {
		return nil, err
	}

	left, err := classifyFilePaths(mods, files)
	if err != nil {
		return nil, err
	}

	bin := &GoBinary{
		Name:      name,
		GoVersion: ParseGoVersion(vers),
		BuildID:   f.BuildID,
		Modules:   mods,
	}
	for _, file := range left {
		if isStdLibFile(file) {
			bin.StdLibFiles = append(bin.StdLibFiles, file)
		} else {
			bin.UnclassifiedFiles = append(bin.UnclassifiedFiles, file)
		}
	}
	return bin, nil
}
