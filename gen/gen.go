// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

// This program regenerates stdpkg_gen.go. It can be invoked by running
// go generate.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("go run ./gen [stdpkgs]")
		return
	}

	switch os.Args[1] {
	case "stdpkgs":
		generateStdPkgs()
	default:
		fmt.Println("unknown target:", os.Args[1])
		os.Exit(1)
	}
}
