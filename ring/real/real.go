// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package real provides the float64 scalar ring for tensor components.
//
// Example:
//
//	ring := real.New()
//	t, err := tensor.New(basis, 0, 2, components, ring)
package real

import (
	"github.com/ricci-ml/ricci/internal/ring/real"
)

// Ring is the float64 ring. The zero value is ready to use.
type Ring = real.Ring

// New returns a float64 Ring.
func New() Ring { return real.New() }
