// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader reads declarative YAML definitions of metrics and sparse
// symbolic tensors.
//
// Example usage:
//
//	import "github.com/ricci-ml/ricci/loader"
//
//	g, err := loader.LoadMetric("schwarzschild.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Tensor())
//
// See the internal loader package documentation for the document shapes.
package loader

import (
	"github.com/ricci-ml/ricci/internal/loader"
)

// Tensor is a sparse tensor over the symbolic scalar ring.
type Tensor = loader.Tensor

// Metric is a metric over the symbolic scalar ring.
type Metric = loader.Metric

// ErrBadDocument reports a definition document that matches neither the
// metric nor the tensor shape.
var ErrBadDocument = loader.ErrBadDocument

// Load reads a definition file and returns its tensor form: tensor
// documents directly, metric documents as the metric's (0,2)-tensor.
func Load(path string) (*Tensor, error) { return loader.Load(path) }

// Parse is Load over in-memory document bytes.
func Parse(data []byte) (*Tensor, error) { return loader.Parse(data) }

// LoadMetric reads a metric document from a file.
func LoadMetric(path string) (*Metric, error) { return loader.LoadMetric(path) }

// ParseMetric parses a metric document.
func ParseMetric(data []byte) (*Metric, error) { return loader.ParseMetric(data) }

// LoadTensor reads a sparse tensor document from a file.
func LoadTensor(path string) (*Tensor, error) { return loader.LoadTensor(path) }

// ParseTensor parses a sparse tensor document.
func ParseTensor(data []byte) (*Tensor, error) { return loader.ParseTensor(data) }
