// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"runtime"

	"github.com/binmod/binmod/depgraph"
)

// pkgManagerName is the ecosystem tag carried by emitted graphs.
const pkgManagerName = "gomodules"

// yieldInterval bounds how many nodes are emitted between scheduler
// yields. Binaries with tens of thousands of packages should not hold the
// current goroutine for the whole emission.
const yieldInterval = 1024

// DepGraph converts the analyzed binary into a dependency graph: the root
// node carries the binary name, and every package@version pair becomes a
// node connected directly to the root. Emission order is module declaration
// order, then package insertion order.
func (b *GoBinary) DepGraph() *depgraph.Graph {
	root := depgraph.PkgInfo{Name: b.Name}
	if main := b.MainModule(); main != nil {
		root.Version = main.Version
	}
	builder := depgraph.NewBuilder(depgraph.PkgManager{Name: pkgManagerName}, root)

	emitted := 0
	for _, m := range b.Modules {
		for _, pkg := range m.Packages() {
			id := pkg + "@" + m.Version
			builder.AddPkgNode(depgraph.PkgInfo{Name: pkg, Version: m.Version}, id)
			builder.ConnectDep(depgraph.RootNodeID, id)
			emitted++
			if emitted%yieldInterval == 0 {
				runtime.Gosched()
			}
		}
	}
	return builder.Build()
}
