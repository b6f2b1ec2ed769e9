// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/expiryd/configuration"
)

const dir = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)
	rc := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func writeConfigFile(t *testing.T, name string, content string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write config: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfigFile(t, "expiryd.conf", `
local M = {}

M.data_directory = "."
M.pidfile = "expiryd.pid"

M.database = {
    directory = "data",
    name = "expiryd.leveldb",
}

M.window = {
    block_time_ms = 600000,
    frame_size_in_slots = 4,
    slots_per_era = 4,
    genesis_step = 100,
}

M.logging = {
    size = 1048576,
    count = 20,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`)

	options, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err)

	assert.True(t, filepath.IsAbs(options.DataDirectory))
	assert.True(t, filepath.IsAbs(options.PidFile))
	assert.True(t, filepath.IsAbs(options.Database.Directory))
	assert.True(t, filepath.IsAbs(options.Database.Name))
	assert.True(t, filepath.IsAbs(options.Logging.Directory))

	assert.Equal(t, uint64(600000), options.Window.BlockTimeMilliseconds)
	assert.Equal(t, uint64(4), options.Window.FrameSizeInSlots)
	assert.Equal(t, uint64(4), options.Window.SlotsPerEra)
	assert.Equal(t, uint64(100), options.Window.GenesisStep)

	assert.Equal(t, 20, options.Logging.Count)
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"])

	// directories were created
	info, err := os.Stat(options.Database.Directory)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

// lua can compute values, not just declare them
func TestGetConfigurationComputed(t *testing.T) {
	fileName := writeConfigFile(t, "computed.conf", `
local M = {}

M.data_directory = "."

M.window = {
    block_time_ms = 10 * 60 * 1000,
    frame_size_in_slots = 2 + 2,
    slots_per_era = 4,
}

return M
`)

	options, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err)

	assert.Equal(t, uint64(600000), options.Window.BlockTimeMilliseconds)
	assert.Equal(t, uint64(4), options.Window.FrameSizeInSlots)

	// unset genesis stays at the default: fixed at start-up time
	assert.Equal(t, uint64(0), options.Window.GenesisStep)
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {
	fileName := writeConfigFile(t, "nodir.conf", `
local M = {}
return M
`)

	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err)
}

func TestGetConfigurationRejectsPathAsFileName(t *testing.T) {
	fileName := writeConfigFile(t, "badname.conf", `
local M = {}
M.data_directory = "."
M.logging = {
    file = "sub/dir/file.log",
}
return M
`)

	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err)
}

func TestGetConfigurationBadLua(t *testing.T) {
	fileName := writeConfigFile(t, "broken.conf", `this is not lua at all {{{`)

	_, err := configuration.GetConfiguration(fileName)
	assert.Error(t, err)
}
