// Copyright 2025 Acorn Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package prox exposes Acorn's proximal operators over dense coefficient
// arrays.
//
// Operators consume arrays only through element access, shape queries and
// the in-place vector primitives, so they are oblivious to which vector
// backend a binary was built with.
package prox

import (
	"github.com/acorn-ml/acorn/internal/prox"
)

// Float is the set of element types proximal operators act on.
type Float = prox.Float

// Prox is a proximal operator over a coefficient range.
type Prox[T Float] = prox.Prox[T]

// ProxL2Sq is the squared-L2 penalization strength/2 * ||x||^2.
type ProxL2Sq[T Float] = prox.ProxL2Sq[T]

// ProxTV is the 1-D total-variation penalization.
type ProxTV[T Float] = prox.ProxTV[T]

// NewProxL2Sq creates a squared-L2 proximal operator.
func NewProxL2Sq[T Float](strength T, positive bool) *ProxL2Sq[T] {
	return prox.NewProxL2Sq(strength, positive)
}

// NewProxTV creates a total-variation proximal operator.
func NewProxTV[T Float](strength T, positive bool) *ProxTV[T] {
	return prox.NewProxTV(strength, positive)
}
