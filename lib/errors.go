// SPDX-License-Identifier: MIT
// Package: photonic/lib
//
// errors.go — sentinel errors shared by the component families.

package lib

import "errors"

// ErrConflictingArgs indicates two mutually exclusive arguments were given
// (for example both R and theta on a beam splitter).
var ErrConflictingArgs = errors.New("lib: conflicting arguments")
