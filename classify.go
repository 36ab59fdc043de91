// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"path"
	"strings"
)

// autogeneratedFile is the placeholder the compiler records for sources it
// synthesized itself. Never attributed to a module.
const autogeneratedFile = "<autogenerated>"

// classifyFilePaths attributes the source files compiled into the binary to
// the modules they were built from, populating each module's package set.
// Files that belong to no module (standard library, cgo shims) are returned
// for the caller to report on.
//
// Three layouts are recognized:
//   - module cache: paths embed <cache>/<module>@<version>/...
//   - vendored: paths embed <root>/vendor/<module>/...
//   - trimpath: all paths are relative and start with <module>@<version>
func classifyFilePaths(mods []*Module, files []string) ([]string, error) {
	trimmed := isTrimmed(files)

	var cachePrefix, vendorPrefix string
	if !trimmed {
		cachePrefix = moduleCachePrefix(mods, files)
		vendorPrefix = vendorDirPrefix(mods, files)
	}

	var unmatched []string
	for _, file := range files {
		if file == autogeneratedFile {
			continue
		}

		var stripped string
		var key func(*Module) string
		switch {
		case vendorPrefix != "" && strings.HasPrefix(file, vendorPrefix):
			// Vendored sources carry no version in the path, so the
			// match runs against the bare module name.
			stripped = file[len(vendorPrefix):]
			key = func(m *Module) string { return m.Name }
		case cachePrefix != "" && strings.HasPrefix(file, cachePrefix):
			stripped = file[len(cachePrefix):]
			key = (*Module).FullName
		case trimmed:
			stripped = file
			key = (*Module).FullName
		default:
			unmatched = append(unmatched, file)
			continue
		}

		matched := false
		for _, m := range mods {
			ok, err := m.claimFile(stripped, key(m), file)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
			}
		}
		if !matched {
			unmatched = append(unmatched, file)
		}
	}
	return unmatched, nil
}

// claimFile matches a stripped file path against the module key and, on a
// match, records the containing package. The key must be a clean prefix of
// the path and occur in it only once; a path that splits into more than two
// parts around the key means the prefixes derived earlier are inconsistent
// with this file, which is a structural failure of the whole analysis.
func (m *Module) claimFile(stripped, key, file string) (bool, error) {
	if !strings.HasPrefix(stripped, key) {
		return false, nil
	}
	parts := strings.Split(stripped, key)
	if len(parts) != 2 || parts[0] != "" {
		return false, &FileClassificationError{File: file, Module: m.Name}
	}
	dir := path.Dir(parts[1])
	if dir == "/" || dir == "." {
		dir = ""
	}
	m.addPackage(m.Name + dir)
	return true, nil
}

// isTrimmed reports whether the binary was built with path trimming: every
// file path is relative.
func isTrimmed(files []string) bool {
	for _, f := range files {
		if strings.HasPrefix(f, "/") {
			return false
		}
	}
	return true
}

// moduleCachePrefix derives the module-cache root. Modules are tried in
// declaration order; for the first module whose name@version identity is
// embedded in some file, the first such file supplies the root.
func moduleCachePrefix(mods []*Module, files []string) string {
	for _, m := range mods {
		needle := "/" + m.FullName()
		for _, f := range files {
			if i := strings.Index(f, needle); i >= 0 {
				return f[:i+1]
			}
		}
	}
	return ""
}

// vendorDirPrefix derives the vendor-directory root. A candidate root is
// only accepted when a second file shares the root without living under its
// vendor subtree, which rules out accidental "vendor/" path components in
// dependency sources.
func vendorDirPrefix(mods []*Module, files []string) string {
	for _, m := range mods {
		needle := "vendor/" + m.Name + "/"
		for _, f := range files {
			i := strings.Index(f, needle)
			if i < 0 {
				continue
			}
			root := f[:i]
			if vendorRootConfirmed(files, f, root) {
				return root + "vendor/"
			}
		}
	}
	return ""
}

func vendorRootConfirmed(files []string, match, root string) bool {
	vendored := root + "vendor/"
	for _, f := range files {
		if f == match {
			continue
		}
		if strings.HasPrefix(f, root) && !strings.HasPrefix(f, vendored) {
			return true
		}
	}
	return false
}
