// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/valuesmerge"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/spf13/cobra"
)

const (
	MergeOutputYAML    = "yaml"
	MergeOutputJSON    = "json"
	MergeOutputDiff    = "diff"
	MergeOutputPatch   = "patch"
	MergeOutputChanges = "changes"
)

type MergeOptions struct {
	TemplateFile    string
	ValuesFile      string
	ValueKey        string
	AnyMappingValue bool
	Output          string

	CommonFlags CommonFlags
}

func NewMergeOptions() *MergeOptions {
	return &MergeOptions{}
}

func NewMergeCmd(o *MergeOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a values file into a template",
		Long: `Merge a values file into a template.

Value-bearing scalars of the template are overwritten from the values file
or removed when the values file does not have them; sequences are replaced
as a whole; values missing from the template are added.

By default the scalar value of every mapping entry is value-bearing, as in
plain Helm values files. Pass --any-mapping-value=false to merge only scalars
held under --value-key.`,
		RunE: func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.TemplateFile, "template", "t", "", "Template file (ie local path, HTTP URL, -)")
	cmd.Flags().StringVarP(&o.ValuesFile, "values", "v", "", "Values file (ie local path, HTTP URL, -)")
	cmd.Flags().StringVar(&o.ValueKey, "value-key", valuesmerge.DefaultValueKey, "Mapping key holding value-bearing scalars")
	cmd.Flags().BoolVar(&o.AnyMappingValue, "any-mapping-value", true, "Treat every mapping value scalar as value-bearing (disable to use --value-key)")
	cmd.Flags().StringVarP(&o.Output, "output", "o", MergeOutputYAML, "Output format (yaml, json, diff, patch, changes)")
	o.CommonFlags.Set(cmd)
	return cmd
}

func (o *MergeOptions) Run() error {
	ui, err := o.CommonFlags.UI()
	if err != nil {
		return err
	}

	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	fileOpts := o.CommonFlags.FileOpts(false)

	templateFile, err := singleFile(o.TemplateFile, "template", fileOpts)
	if err != nil {
		return err
	}

	valuesFile, err := singleFile(o.ValuesFile, "values", fileOpts)
	if err != nil {
		return err
	}

	return o.RunWithFiles(templateFile, valuesFile, ui)
}

func (o *MergeOptions) RunWithFiles(templateFile, valuesFile *files.File, ui ui.UI) error {
	opts := valuesmerge.Opts{
		ValueKey:        o.ValueKey,
		AnyMappingValue: o.AnyMappingValue,
		TemplateName:    templateFile.RelativePath(),
		ValuesName:      valuesFile.RelativePath(),
	}

	templateDoc, err := parseSingleDoc(templateFile)
	if err != nil {
		return fmt.Errorf("Parsing template: %w", err)
	}

	valuesDoc, err := parseSingleDoc(valuesFile)
	if err != nil {
		return fmt.Errorf("Parsing values: %w", err)
	}

	t1 := time.Now()

	merged, err := valuesmerge.Merge(templateDoc, valuesDoc, opts)
	if err != nil {
		return err
	}

	ui.Debugf("merge: %s\n", time.Now().Sub(t1))

	switch o.Output {
	case MergeOutputYAML, "":
		bs, err := merged.AsYAMLBytes()
		if err != nil {
			return err
		}
		ui.Printf("%s\n", bytes.TrimSpace(bs))

	case MergeOutputJSON:
		bs, err := merged.AsJSONBytes()
		if err != nil {
			return err
		}
		ui.Printf("%s\n", bs)

	case MergeOutputDiff:
		return o.printDiff(templateDoc, merged, ui)

	case MergeOutputPatch:
		patch, err := valuesmerge.MergePatch(templateDoc, merged)
		if err != nil {
			return err
		}
		ui.Printf("%s\n", patch)

	case MergeOutputChanges:
		o.printChanges(valuesmerge.Changes(templateDoc, merged, opts), ui)

	default:
		return fmt.Errorf("Unknown output format '%s'", o.Output)
	}

	return nil
}

func (o *MergeOptions) printDiff(templateDoc, merged *yamlmeta.Document, ui ui.UI) error {
	from, err := templateDoc.AsYAMLBytes()
	if err != nil {
		return err
	}
	to, err := merged.AsYAMLBytes()
	if err != nil {
		return err
	}

	colors := ui.Colors()

	for _, line := range valuesmerge.Diff(from, to) {
		switch line.Kind {
		case valuesmerge.LineAdded:
			ui.Printf("%s\n", colors.Added("%s", line))
		case valuesmerge.LineRemoved:
			ui.Printf("%s\n", colors.Removed("%s", line))
		default:
			ui.Printf("%s\n", line)
		}
	}
	return nil
}

func (o *MergeOptions) printChanges(changes []valuesmerge.Change, ui ui.UI) {
	colors := ui.Colors()

	for _, change := range changes {
		var text string
		switch change.Kind {
		case valuesmerge.ChangeAdded:
			text = colors.Added("%s", change.To)
		case valuesmerge.ChangeRemoved:
			text = colors.Removed("%s", change.From)
		default:
			text = change.InlineDiff()
		}
		ui.Printf("%s %s %s: %s\n", colors.Header("%-7s", change.Kind), change.Path,
			colors.Faint("(%s)", change.Position.AsCompactString()), text)
	}
}

func parseSingleDoc(file *files.File) (*yamlmeta.Document, error) {
	data, err := file.Bytes()
	if err != nil {
		return nil, err
	}

	docSet, err := yamlmeta.NewDocumentSetFromBytes(data, yamlmeta.DocSetOpts{AssociatedName: file.RelativePath()})
	if err != nil {
		return nil, err
	}
	if len(docSet.Items) > 1 {
		return nil, fmt.Errorf("Expected %s to contain a single document, but found %d", file.Description(), len(docSet.Items))
	}
	return docSet.Items[0], nil
}
