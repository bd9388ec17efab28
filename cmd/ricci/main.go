// Copyright 2025 Ricci ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the ricci CLI: inspect and contract tensor
// definitions written as YAML documents.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ricci-ml/ricci/loader"
	"github.com/ricci-ml/ricci/tensor"
)

const version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "ricci",
		Short: "Sparse symbolic tensor algebra for differential geometry",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("ricci %s\n", version)
			},
		},
		&cobra.Command{
			Use:   "show <file.yaml>",
			Short: "Render a tensor or metric definition",
			Args:  cobra.ExactArgs(1),
			Run:   runShow,
		},
		&cobra.Command{
			Use:   "contract <file.yaml> <i> <j>",
			Short: "Contract contravariant slot i against covariant slot j",
			Args:  cobra.ExactArgs(3),
			Run:   runContract,
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShow(cmd *cobra.Command, args []string) {
	t, err := loader.Load(args[0])
	if err != nil {
		log.Fatalf("Failed to load %s: %v", args[0], err)
	}

	p, q := t.Type()
	fmt.Printf("type (%d,%d) over basis %s\n", p, q, t.Basis())
	fmt.Println(t)
}

func runContract(cmd *cobra.Command, args []string) {
	t, err := loader.Load(args[0])
	if err != nil {
		log.Fatalf("Failed to load %s: %v", args[0], err)
	}

	i, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("Bad contravariant slot %q: %v", args[1], err)
	}
	j, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("Bad covariant slot %q: %v", args[2], err)
	}

	result, err := tensor.Contract(t, i, j)
	if err != nil {
		log.Fatalf("Contraction failed: %v", err)
	}

	p, q := result.Type()
	fmt.Printf("type (%d,%d) over basis %s\n", p, q, result.Basis())
	fmt.Println(result)
}
