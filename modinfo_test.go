// Copyright 2024 The binmod Authors. All rights reserved.
// Use of this source code is governed by the license that
// can be found in the LICENSE file.

package binmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModInfo(t *testing.T) {
	r := require.New(t)

	name, mods := parseModInfo(testModInfo)
	assert.Equal(t, "example.com/a", name)

	r.Len(mods, 2)
	assert.True(t, mods[0].Main)
	assert.Equal(t, "example.com/a", mods[0].Name)
	assert.Equal(t, "v1.0.0", mods[0].Version)
	assert.False(t, mods[1].Main)
	assert.Equal(t, "example.com/b@v2.1.0", mods[1].FullName())
}

func TestParseModInfoReplacement(t *testing.T) {
	r := require.New(t)

	blob := "path\tcmd/x\n" +
		"mod\texample.com/a\tv1.0.0\th1:abc=\n" +
		"dep\texample.com/b\tv2.1.0\th1:def=\n" +
		"=>\texample.com/b-fork\tv2.2.0\th1:ghi=\n"

	_, mods := parseModInfo(blob)
	r.Len(mods, 3)
	assert.Equal(t, "example.com/b@v2.1.0", mods[1].FullName())
	assert.Equal(t, "example.com/b-fork@v2.2.0", mods[2].FullName())
}

func TestParseModInfoGoDistribution(t *testing.T) {
	name, mods := parseModInfo("path\tcmd/vet\n")
	assert.Equal(t, "go-distribution@cmd/vet", name)
	assert.Empty(t, mods)
}

func TestParseModInfoSkipsIncompleteRecords(t *testing.T) {
	r := require.New(t)

	blob := "path\tcmd/x\n" +
		"mod\texample.com/a\tv1.0.0\n" +
		"dep\texample.com/b\n" + // no version
		"build\tCGO_ENABLED=0\n" + // build setting, not a module record
		"dep\texample.com/c\tv0.3.0\n"

	_, mods := parseModInfo(blob)
	r.Len(mods, 2)
	assert.Equal(t, "example.com/a", mods[0].Name)
	assert.Equal(t, "example.com/c", mods[1].Name)
}

func TestParseModInfoVersionsNeverContainAt(t *testing.T) {
	// The go-distribution name relies on "@" never appearing in a module
	// version, so the synthesized name cannot collide with a real module.
	_, mods := parseModInfo(testModInfo)
	for _, m := range mods {
		assert.NotContains(t, m.Version, "@")
	}
}
