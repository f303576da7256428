// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command artparse parses an ART file and prints its structure.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/m1el/mischief-re"
	"github.com/m1el/mischief-re/internal/cliutil"
)

var showActions bool

var rootCmd = &cobra.Command{
	Use:   "artparse [path]",
	Short: "parse an ART file and print its structure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&showActions, "actions", false, "print every action in the log, not just the summary")
	cliutil.RegisterS3()
}

func runParse(ctx context.Context, path string) error {
	buf, err := cliutil.ReadAll(ctx, path)
	if err != nil {
		return err
	}

	af, err := mischief.ParseFromBytes(buf)
	if err != nil {
		return err
	}

	fmt.Printf("version: %#x\n", af.Version)
	fmt.Printf("active layer: %d\n", af.ActiveLayer)
	fmt.Printf("background: %+v alpha=%v\n", af.BackgroundColor, af.BackgroundAlpha)
	fmt.Printf("pen: kind=%d size=%v eraser=%v\n", af.PenInfo.Kind, af.PenInfo.Size, af.PenInfo.IsEraser)
	fmt.Printf("pins: %d\n", len(af.Pins))
	fmt.Printf("layers: %d\n", len(af.Layers))
	for i, l := range af.Layers {
		fmt.Printf("  [%d] %q visible=%v opacity=%v actions=%d\n", i, l.Name, l.Visible, l.Opacity, l.ActionCount)
	}
	fmt.Printf("images: %d\n", len(af.Images))
	fmt.Printf("actions: %d\n", len(af.Actions))
	if showActions {
		for i, la := range af.Actions {
			fmt.Printf("  [%d] layer=%d %T\n", i, la.Layer, la.Action)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
