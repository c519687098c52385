// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/pkg/errors"
)

// DecodeTx deserializes a hex encoded transaction. Bad hex and a malformed
// transaction structure are both fatal; no partial value is ever returned.
func DecodeTx(hexStr string) (*wire.MsgTx, error) {
	if len(hexStr)%2 != 0 {
		return nil, errors.Errorf("could not decode transaction: odd length hex %q", hexStr)
	}
	serialized, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode transaction")
	}
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(serialized)); err != nil {
		return nil, errors.Wrap(err, "could not decode transaction")
	}
	return tx, nil
}

// EncodeTx is the inverse of DecodeTx. Decoding a transaction and encoding
// it again yields the original hex.
func EncodeTx(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", errors.Wrap(err, "could not encode transaction")
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// DecodeKeys decodes a batch of extended public keys. Decoding is all or
// nothing: one bad token rejects the entire batch.
func DecodeKeys(tokens []string) ([]*hdkeychain.ExtendedKey, error) {
	keys := make([]*hdkeychain.ExtendedKey, 0, len(tokens))
	for _, token := range tokens {
		key, err := hdkeychain.NewKeyFromString(token)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode keys: %q", token)
		}
		if key.IsPrivate() {
			return nil, errors.Errorf("could not decode keys: %q is a private key", token)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// DecodeDestinations parses address:amount tokens. Each token must split on
// its first colon into an address and an integer satoshi amount.
func DecodeDestinations(tokens []string) ([]Destination, error) {
	dests := make([]Destination, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.SplitN(token, ":", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("could not decode destination %q, expected address:amount", token)
		}
		amount, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode destination amount in %q", token)
		}
		if amount < 0 {
			return nil, errors.Errorf("could not decode destination %q, amount must not be negative", token)
		}
		dests = append(dests, Destination{Address: parts[0], Amount: btcutil.Amount(amount)})
	}
	return dests, nil
}

// DecodeTxID parses a transaction id in its usual reversed hex form.
func DecodeTxID(s string) (*chainhash.Hash, error) {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode transaction id %q", s)
	}
	return hash, nil
}

// DecodeJSON validates a raw JSON argument without interpreting it; the
// engine owns its meaning.
func DecodeJSON(s string) (json.RawMessage, error) {
	if !json.Valid([]byte(s)) {
		return nil, errors.Errorf("could not decode JSON %q", s)
	}
	return json.RawMessage(s), nil
}

// DecodeIndex parses a non-negative integer argument such as a page number
// or a derivation index.
func DecodeIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	if index < 0 {
		return 0, errors.Errorf("invalid number %q, must not be negative", s)
	}
	return index, nil
}

// DecodeAmount parses a satoshi amount argument.
func DecodeAmount(s string) (btcutil.Amount, error) {
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid amount %q", s)
	}
	return btcutil.Amount(amount), nil
}
