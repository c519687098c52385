// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package config

import (
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg, remaining, err := ParseArgs(nil)
	assert.Nil(t, err)
	assert.Empty(t, remaining)
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, int64(10000), cfg.Fee)
	assert.Equal(t, txscript.SigHashAll, cfg.SigHashType())
	assert.False(t, cfg.Json)
	assert.Equal(t, "", cfg.Passphrase)
}

func TestCountFlag(t *testing.T) {
	cfg, _, err := ParseArgs([]string{"-c", "3"})
	assert.Nil(t, err)
	assert.Equal(t, 3, cfg.Count)

	cfg, _, err = ParseArgs([]string{"--count=12"})
	assert.Nil(t, err)
	assert.Equal(t, 12, cfg.Count)

	// Zero and negative counts are rejected with the offending value.
	_, _, err = ParseArgs([]string{"-c", "0"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer: 0")

	_, _, err = ParseArgs([]string{"--count=-2"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer: -2")

	// Non-numeric values fail the parse itself.
	_, _, err = ParseArgs([]string{"-c", "abc"})
	assert.Error(t, err)
}

func TestFeeFlag(t *testing.T) {
	cfg, _, err := ParseArgs([]string{"-f", "0"})
	assert.Nil(t, err)
	assert.Equal(t, int64(0), cfg.Fee)

	_, _, err = ParseArgs([]string{"--fee=-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fee must not be negative")
}

func TestSigHashFlag(t *testing.T) {
	cfg, _, err := ParseArgs([]string{"-s", "NONE"})
	assert.Nil(t, err)
	assert.Equal(t, txscript.SigHashNone, cfg.SigHashType())

	cfg, _, err = ParseArgs([]string{"-s", "SINGLE"})
	assert.Nil(t, err)
	assert.Equal(t, txscript.SigHashSingle, cfg.SigHashType())

	// Tokens are case-sensitive.
	_, _, err = ParseArgs([]string{"-s", "all"})
	assert.Error(t, err)

	_, _, err = ParseArgs([]string{"-s", "bogus"})
	assert.Error(t, err)
}

func TestAnyOneCanPayComposes(t *testing.T) {
	// -a composes with -s regardless of flag order.
	cfg, _, err := ParseArgs([]string{"-s", "SINGLE", "-a"})
	assert.Nil(t, err)
	assert.Equal(t, txscript.SigHashSingle|txscript.SigHashAnyOneCanPay, cfg.SigHashType())

	cfg, _, err = ParseArgs([]string{"-a", "-s", "SINGLE"})
	assert.Nil(t, err)
	assert.Equal(t, txscript.SigHashSingle|txscript.SigHashAnyOneCanPay, cfg.SigHashType())

	cfg, _, err = ParseArgs([]string{"-a"})
	assert.Nil(t, err)
	assert.Equal(t, txscript.SigHashAll|txscript.SigHashAnyOneCanPay, cfg.SigHashType())
}

func TestVersionWinsOverValidation(t *testing.T) {
	// -v short-circuits regardless of other flags, so an out-of-range
	// count or fee must not fail the parse when it is present.
	cfg, _, err := ParseArgs([]string{"-v", "-c", "0"})
	assert.Nil(t, err)
	assert.True(t, cfg.ShowVersion)

	cfg, _, err = ParseArgs([]string{"--fee=-1", "--version"})
	assert.Nil(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestRemainingArgs(t *testing.T) {
	cfg, remaining, err := ParseArgs([]string{"-c", "3", "genaddr", "myaccount"})
	assert.Nil(t, err)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, []string{"genaddr", "myaccount"}, remaining)
}

func TestOutputAndPassphrase(t *testing.T) {
	cfg, _, err := ParseArgs([]string{"-j", "-p", "correct horse"})
	assert.Nil(t, err)
	assert.True(t, cfg.Json)
	assert.Equal(t, "correct horse", cfg.Passphrase)
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := ParseArgs([]string{"--bogus"})
	assert.Error(t, err)
}
