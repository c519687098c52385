// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package config

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// SigHashFlag is the base signature hash mode set by the -s option. The
// accepted tokens are case-sensitive. The AnyOneCanPay modifier is a
// separate boolean option and is folded in by Config.SigHashType.
type SigHashFlag txscript.SigHashType

func (f *SigHashFlag) UnmarshalFlag(value string) error {
	switch value {
	case "ALL":
		*f = SigHashFlag(txscript.SigHashAll)
	case "NONE":
		*f = SigHashFlag(txscript.SigHashNone)
	case "SINGLE":
		*f = SigHashFlag(txscript.SigHashSingle)
	default:
		return fmt.Errorf("unknown sighash type %q, must be one of ALL, NONE, SINGLE", value)
	}
	return nil
}

func (f SigHashFlag) MarshalFlag() (string, error) {
	switch txscript.SigHashType(f) {
	case txscript.SigHashAll:
		return "ALL", nil
	case txscript.SigHashNone:
		return "NONE", nil
	case txscript.SigHashSingle:
		return "SINGLE", nil
	}
	return "", fmt.Errorf("unknown sighash type %d", f)
}

func (f SigHashFlag) String() string {
	s, err := f.MarshalFlag()
	if err != nil {
		return "UNKNOWN"
	}
	return s
}
