// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The usage block shown on parse errors and missing command words must
// list every recognized command.
func TestUsageListsAllCommands(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	assert.Contains(t, out, "Usage: hw [options] <command> [<args>]")
	for _, name := range []string{
		"init", "list", "listpage", "new", "genaddr", "label",
		"balance", "balances", "tx", "send", "sendmany",
		"newacc", "newms", "addkeys", "accinfo", "listacc", "dumpkeys",
		"wif", "coins", "allcoins",
		"signtx", "importtx", "removetx", "decodetx",
		"buildrawtx", "signrawtx",
	} {
		assert.Contains(t, out, name)
	}
}
