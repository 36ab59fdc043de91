// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	r := require.New(t)

	b := NewBuilder(PkgManager{Name: "gomodules"}, PkgInfo{Name: "example.com/a", Version: "v1.0.0"})
	b.AddPkgNode(PkgInfo{Name: "example.com/b/x", Version: "v2.1.0"}, "example.com/b/x@v2.1.0")
	r.NoError(b.ConnectDep(RootNodeID, "example.com/b/x@v2.1.0"))

	g := b.Build()
	assert.Equal(t, "gomodules", g.PkgManager.Name)
	r.Len(g.Pkgs, 2)
	assert.Equal(t, RootNodeID, g.Pkgs[0].ID)
	assert.Equal(t, []string{"example.com/b/x@v2.1.0"}, g.Pkgs[0].Deps)
}

func TestBuilderDuplicateNode(t *testing.T) {
	b := NewBuilder(PkgManager{Name: "gomodules"}, PkgInfo{Name: "root"})
	b.AddPkgNode(PkgInfo{Name: "p", Version: "v1"}, "p@v1")
	b.AddPkgNode(PkgInfo{Name: "p-other", Version: "v1"}, "p@v1")

	g := b.Build()
	require.Len(t, g.Pkgs, 2)
	assert.Equal(t, "p", g.Pkgs[1].Info.Name, "first insertion wins")
}

func TestBuilderConnectUnknownNode(t *testing.T) {
	b := NewBuilder(PkgManager{Name: "gomodules"}, PkgInfo{Name: "root"})
	assert.Error(t, b.ConnectDep(RootNodeID, "missing"))
	assert.Error(t, b.ConnectDep("missing", RootNodeID))
}
