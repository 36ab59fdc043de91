// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	version "github.com/hashicorp/go-version"

	"github.com/binmod/binmod/extern"
)

// GoVersion holds information about the compiler version recorded in a
// binary's build info.
type GoVersion struct {
	// Name is the raw version tag, e.g. go1.18.5.
	Name string

	parsed *version.Version
}

// ParseGoVersion parses a version tag extracted from a binary. Toolchain
// suffixes like go1.21-bigcorp are accepted. Tags that do not describe a Go
// release yield nil.
func ParseGoVersion(tag string) *GoVersion {
	stripped := extern.StripGo(tag)
	if stripped == "" {
		return nil
	}
	v, err := version.NewVersion(stripped)
	if err != nil {
		return nil
	}
	return &GoVersion{Name: tag, parsed: v}
}

// AtLeast reports whether the version is the given release or newer.
// Unparsable arguments report false.
func (g *GoVersion) AtLeast(tag string) bool {
	other := ParseGoVersion(tag)
	if other == nil {
		return false
	}
	return g.parsed.GreaterThanOrEqual(other.parsed)
}

// GoVersionCompare compares two version tags.
// If a < b, -1 is returned.
// If a == b, 0 is returned.
// If a > b, 1 is returned.
// Comparing an unparsable tag panics.
func GoVersionCompare(a, b string) int {
	av := ParseGoVersion(a)
	bv := ParseGoVersion(b)
	if av == nil || bv == nil {
		panic("not a go version string")
	}
	return av.parsed.Compare(bv.parsed)
}
