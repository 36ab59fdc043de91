// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"strings"
)

// parseModInfo splits the textual module-info blob into the binary's name
// and its module records. The blob is newline-separated with tab-separated
// fields:
//
//	path	<import-path>
//	mod	<main-module>	<version>	[hash]
//	dep	<module>	<version>	[hash]
//	=>	<module>	<version>	<hash>
//
// When the mod directive is missing the binary is a command from the Go
// standard distribution and its name is synthesized from the path
// directive.
func parseModInfo(data string) (string, []*Module) {
	lines := strings.Split(data, "\n")

	var name string
	var mods []*Module

	if len(lines) > 1 {
		fields := strings.Split(lines[1], "\t")
		if fields[0] == "mod" && len(fields) >= 3 {
			name = fields[1]
			mods = append(mods, &Module{Name: fields[1], Version: fields[2], Main: true})
		}
	}
	if name == "" {
		pathFields := strings.Split(lines[0], "\t")
		if len(pathFields) > 1 {
			name = goDistributionPrefix + pathFields[1]
		} else {
			name = goDistributionPrefix
		}
	}

	if len(lines) < 3 {
		return name, mods
	}
	for _, line := range lines[2:] {
		fields := strings.Split(line, "\t")
		if len(fields) < 3 || fields[1] == "" || fields[2] == "" {
			continue
		}
		mods = append(mods, &Module{Name: fields[1], Version: fields[2]})
	}
	return name, mods
}
