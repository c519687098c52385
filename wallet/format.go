// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Render writes a result value to w. A nil result produces no output at
// all. With indentedJSON set, the value is rendered as 2-space indented
// JSON; otherwise it is rendered in the default block format. No other
// transformation happens here.
func Render(w io.Writer, res Result, indentedJSON bool) error {
	if res == nil {
		return nil
	}
	if indentedJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return errors.Wrap(err, "could not marshal result")
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return errors.Wrap(err, "could not marshal result")
	}
	return enc.Close()
}
