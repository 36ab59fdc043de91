// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// GoRepoEnv points the generator at an existing golang/go checkout, for CI
// cases where cloning is too slow.
const GoRepoEnv = "BINMOD_GO_REPO"

const goRepoURL = "https://github.com/golang/go.git"

func openGoRepo() (*git.Repository, error) {
	if dir, ok := os.LookupEnv(GoRepoEnv); ok {
		return git.PlainOpen(dir)
	}

	dir := filepath.Join(os.TempDir(), "binmod-go-repo")
	repo, err := git.PlainOpen(dir)
	if err == nil {
		fmt.Println("syncing repo in", dir)
		err = repo.Fetch(&git.FetchOptions{
			RemoteName: "origin",
			Tags:       git.AllTags,
			Progress:   os.Stdout,
		})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil, err
		}
		return repo, nil
	}

	fmt.Println("cloning repo into", dir)
	return git.PlainClone(dir, false, &git.CloneOptions{
		URL:        goRepoURL,
		NoCheckout: true,
		Tags:       git.AllTags,
		Progress:   os.Stdout,
	})
}
