// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
	"github.com/johnbedeir/monokle/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultMonokleCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "monokle: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
