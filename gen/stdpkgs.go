// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"golang.org/x/mod/semver"
)

const outputFile = "stdpkg_gen.go"

func generateStdPkgs() {
	repo, err := openGoRepo()
	if err != nil {
		fmt.Println("Error when opening the Go repo:", err)
		return
	}

	set := map[string]struct{}{}
	for _, branch := range releaseBranches(repo) {
		fmt.Println("Fetching std pkgs for branch:", branch)
		if err := collectStdPkgs(repo, branch, set); err != nil {
			fmt.Println("Error when fetching std pkgs:", err)
			return
		}
	}

	pkgs := make([]string, 0, len(set))
	for pkg := range set {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	buf := bytes.NewBuffer(nil)
	err = packageTemplate.Execute(buf, struct {
		Timestamp time.Time
		StdPkg    []string
	}{
		Timestamp: time.Now().UTC(),
		StdPkg:    pkgs,
	})
	if err != nil {
		fmt.Println("Error when generating the code:", err)
		return
	}

	if err := os.WriteFile(outputFile, buf.Bytes(), 0o644); err != nil {
		fmt.Println("Error when writing the output:", err)
	}
}

// releaseBranches derives the release branch names from the repo's version
// tags: go1.21.3 contributes release-branch.go1.21.
func releaseBranches(repo *git.Repository) []string {
	tags, err := repo.Tags()
	if err != nil {
		return nil
	}

	seen := map[string]struct{}{}
	_ = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !strings.HasPrefix(name, "go") {
			return nil
		}
		rawver := "v" + strings.TrimPrefix(name, "go")
		mm := semver.MajorMinor(rawver)
		if mm == "" {
			return nil
		}
		branch := "go" + strings.TrimPrefix(mm, "v")
		if branch == "go1.0" {
			branch = "go1"
		}
		seen["release-branch."+branch] = struct{}{}
		return nil
	})

	branches := make([]string, 0, len(seen))
	for b := range seen {
		branches = append(branches, b)
	}
	sort.Strings(branches)
	return branches
}

func collectStdPkgs(repo *git.Repository, branch string, set map[string]struct{}) error {
	ref, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", branch), true)
	if err != nil {
		// Old releases predate the branch scheme.
		return nil
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return err
	}
	tree, err := commit.Tree()
	if err != nil {
		return err
	}

	files := tree.Files()
	return files.ForEach(func(f *object.File) error {
		name := f.Name
		if !strings.HasPrefix(name, "src/") ||
			strings.HasPrefix(name, "src/cmd/") ||
			strings.Contains(name, "/testdata/") {
			return nil
		}
		dir := path.Dir(strings.TrimPrefix(name, "src/"))
		for ; dir != "." && dir != "/"; dir = path.Dir(dir) {
			if strings.HasSuffix(dir, "_asm") {
				continue
			}
			set[dir] = struct{}{}
		}
		return nil
	})
}

var packageTemplate = template.Must(template.New("").Parse(`// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

// Code generated by go generate; DO NOT EDIT.
// This file was generated at
// {{ .Timestamp }}

package binmod

var stdPkgs = map[string]struct{}{
{{- range .StdPkg }}
	"{{ . }}": {},
{{- end }}
}
`))
