// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"path"
	"strings"
)

//go:generate go run ./gen stdpkgs

// IsStandardLibrary returns true if the package is from the standard
// library. Otherwise, false is returned.
func IsStandardLibrary(pkg string) bool {
	_, ok := stdPkgs[pkg]
	return ok
}

// isStdLibFile reports whether an unattributed source file looks like it
// was compiled out of a GOROOT tree. GOROOT paths embed a src directory;
// trimmed builds record the bare package-relative path.
func isStdLibFile(file string) bool {
	if i := strings.Index(file, "/src/"); i >= 0 {
		return IsStandardLibrary(path.Dir(file[i+len("/src/"):]))
	}
	return IsStandardLibrary(path.Dir(file))
}
