// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/spf13/cobra"
)

const (
	FmtOutputYAML = "yaml"
	FmtOutputJSON = "json"
)

type FmtOptions struct {
	Files           []string
	Recursive       bool
	Output          string
	WithoutComments bool

	CommonFlags CommonFlags
}

func NewFmtOptions() *FmtOptions {
	return &FmtOptions{}
}

func NewFmtCmd(o *FmtOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Format manifests",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&o.Recursive, "recursive", "R", false, "Include files in subdirectories")
	cmd.Flags().StringVarP(&o.Output, "output", "o", FmtOutputYAML, "Output format (yaml, json)")
	cmd.Flags().BoolVar(&o.WithoutComments, "without-comments", false, "Drop comments")
	o.CommonFlags.Set(cmd)
	return cmd
}

func (o *FmtOptions) Run() error {
	ui, err := o.CommonFlags.UI()
	if err != nil {
		return err
	}

	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := files.NewFiles(o.Files, o.CommonFlags.FileOpts(o.Recursive))
	if err != nil {
		return err
	}

	return o.RunWithFiles(filesToProcess, ui)
}

func (o *FmtOptions) RunWithFiles(filesToProcess []*files.File, ui ui.UI) error {
	var printerFunc func(io.Writer) yamlmeta.DocumentPrinter

	switch o.Output {
	case FmtOutputYAML, "":
		printerFunc = func(w io.Writer) yamlmeta.DocumentPrinter { return yamlmeta.NewYAMLPrinter(w) }
	case FmtOutputJSON:
		printerFunc = func(w io.Writer) yamlmeta.DocumentPrinter { return yamlmeta.NewJSONPrinter(w) }
	default:
		return fmt.Errorf("Unknown output format '%s'", o.Output)
	}

	printedOnce := false

	for _, file := range filesToProcess {
		if !file.IsManifest() {
			ui.Debugf("skipping %s\n", file.Description())
			continue
		}

		data, err := file.Bytes()
		if err != nil {
			return err
		}

		docSet, err := yamlmeta.NewDocumentSetFromBytes(data, yamlmeta.DocSetOpts{
			WithoutComments: o.WithoutComments,
			AssociatedName:  file.RelativePath(),
		})
		if err != nil {
			return err
		}

		bs, err := docSet.AsBytesWithPrinter(printerFunc)
		if err != nil {
			return err
		}
		if len(bs) == 0 {
			continue
		}

		if printedOnce && o.Output != FmtOutputJSON {
			ui.Printf("---\n")
		}
		printedOnce = true

		ui.Printf("%s", bs)
	}

	return nil
}
