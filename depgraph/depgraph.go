// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

// Package depgraph holds the dependency-graph datatype the analysis emits
// into. Graphs are flat by construction here: one root, one node per
// package@version, no inter-package edges.
package depgraph

import "fmt"

// RootNodeID is the predefined identifier of a graph's root node.
const RootNodeID = "root-node"

// PkgManager identifies the package ecosystem a graph describes.
type PkgManager struct {
	Name string `json:"name"`
}

// PkgInfo identifies a package node.
type PkgInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Pkg is a finalized graph node.
type Pkg struct {
	ID   string   `json:"id"`
	Info PkgInfo  `json:"info"`
	Deps []string `json:"deps,omitempty"`
}

// Graph is a finalized dependency graph.
type Graph struct {
	PkgManager PkgManager `json:"pkgManager"`
	RootNodeID string     `json:"rootNodeId"`
	Pkgs       []Pkg      `json:"pkgs"`
}

// Builder assembles a dependency graph. Node insertion order is preserved
// in the built graph.
type Builder struct {
	pkgManager PkgManager
	nodes      map[string]*node
	order      []string
}

type node struct {
	info PkgInfo
	deps []string
}

// NewBuilder returns a builder whose root node carries the given package
// info.
func NewBuilder(pm PkgManager, root PkgInfo) *Builder {
	b := &Builder{
		pkgManager: pm,
		nodes:      make(map[string]*node),
	}
	b.AddPkgNode(root, RootNodeID)
	return b
}

// AddPkgNode adds a package node under the given identifier. Adding an
// identifier twice is a no-op; node identity wins over later info.
func (b *Builder) AddPkgNode(info PkgInfo, id string) {
	if _, ok := b.nodes[id]; ok {
		return
	}
	b.nodes[id] = &node{info: info}
	b.order = append(b.order, id)
}

// ConnectDep records a dependency edge between two existing nodes.
func (b *Builder) ConnectDep(from, to string) error {
	f, ok := b.nodes[from]
	if !ok {
		return fmt.Errorf("unknown node %q", from)
	}
	if _, ok := b.nodes[to]; !ok {
		return fmt.Errorf("unknown node %q", to)
	}
	f.deps = append(f.deps, to)
	return nil
}

// Build finalizes the graph.
func (b *Builder) Build() *Graph {
	g := &Graph{
		PkgManager: b.pkgManager,
		RootNodeID: RootNodeID,
		Pkgs:       make([]Pkg, 0, len(b.order)),
	}
	for _, id := range b.order {
		n := b.nodes[id]
		g.Pkgs = append(g.Pkgs, Pkg{ID: id, Info: n.info, Deps: n.deps})
	}
	return g
}
