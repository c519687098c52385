// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hwallet/hw/config"
	"github.com/hwallet/hw/rpcclient"
	"github.com/hwallet/hw/wallet"
)

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: hw [options] <command> [<args>]\n")
	fmt.Fprintf(w, `
wallet :
    init                  initialize a new wallet, optionally from a mnemonic
    balances              show the balance of every account
    allcoins              list the unspent coins of every account

accounts :
    newacc                create a new regular account
    newms                 create a new multisig account (name, M, N and keys)
    addkeys               add thirdparty keys to a multisig account
    accinfo               show the information of an account
    listacc               list all accounts
    dumpkeys              dump the extended keys of an account
    balance               show the balance of an account
    coins                 list the unspent coins of an account

addresses :
    list                  list the first page of addresses of an account
    listpage              list one page of addresses of an account
    new                   derive labeled addresses for an account
    genaddr               derive unlabeled addresses for an account
    label                 relabel the address at an index
    wif                   dump the private key of an address in WIF

transactions :
    tx                    list the transactions of an account
    send                  send an amount to an address
    sendmany              send to many address:amount destinations
    signtx                sign a hex transaction with the account keys
    importtx              import a hex transaction
    removetx              remove a pending transaction
    decodetx              decode a hex transaction
    buildrawtx            build a raw transaction from JSON inputs/outputs
    signrawtx             sign a raw transaction with detached JSON data

Use hw -h to list the global options.
`)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(1)
}

func errExit(err error) {
	fmt.Fprintf(os.Stderr, "hw error: %v\n", err)
	os.Exit(1)
}

func main() {
	cfg, args, err := config.LoadConfig()
	if err != nil {
		// A failed option parse never proceeds to dispatch; report the
		// error together with the usage text.
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	if len(args) == 0 {
		usage()
	}

	engine, err := rpcclient.New(&rpcclient.Config{
		Server:        cfg.RPCServer,
		User:          cfg.RPCUser,
		Pass:          cfg.RPCPassword,
		Cert:          cfg.RPCCert,
		NoTLS:         cfg.NoTLS,
		TLSSkipVerify: cfg.TLSSkipVerify,
		Proxy:         cfg.Proxy,
		ProxyUser:     cfg.ProxyUser,
		ProxyPass:     cfg.ProxyPass,
	})
	if err != nil {
		errExit(err)
	}

	res, err := wallet.Dispatch(engine, cfg, args[0], args[1:])
	if err != nil {
		errExit(err)
	}
	if err := wallet.Render(os.Stdout, res, cfg.Json); err != nil {
		errExit(err)
	}
}
