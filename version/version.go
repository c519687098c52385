// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package version

import (
	"fmt"
)

const (
	appMajor uint = 0
	appMinor uint = 2
	appPatch uint = 0

	// appPreRelease should contain only lower case letters and must not be
	// empty for a pre-release build.
	appPreRelease = "dev"
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).
func String() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if appPreRelease != "" {
		version = fmt.Sprintf("%s-%s", version, appPreRelease)
	}
	return version
}
