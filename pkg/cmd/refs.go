// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/kindhandlers"
	"github.com/johnbedeir/monokle/pkg/manifest"
	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/spf13/cobra"
)

const (
	RefsOutputText = "text"
	RefsOutputJSON = "json"
)

// RuleFlags select the rule table used for resolution.
type RuleFlags struct {
	RuleFiles       []string
	WithoutBuiltins bool
}

func (f *RuleFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.RuleFiles, "rules", nil, "Reference rule file, YAML or TOML (can be specified multiple times)")
	cmd.Flags().BoolVar(&f.WithoutBuiltins, "without-builtin-rules", false, "Only use rules from rule files")
}

func (f *RuleFlags) Registry(opts files.Opts) (*kindhandlers.Registry, error) {
	registry := kindhandlers.NewRegistry()
	if !f.WithoutBuiltins {
		registry = kindhandlers.NewBuiltinRegistry()
	}

	if len(f.RuleFiles) > 0 {
		ruleFiles, err := files.NewFiles(f.RuleFiles, opts)
		if err != nil {
			return nil, err
		}
		err = registry.LoadFiles(ruleFiles)
		if err != nil {
			return nil, err
		}
	}
	return registry, nil
}

type RefsOptions struct {
	Files       []string
	Recursive   bool
	Output      string
	Unsatisfied bool

	RuleFlags   RuleFlags
	CommonFlags CommonFlags
}

func NewRefsOptions() *RefsOptions {
	return &RefsOptions{Recursive: true}
}

func NewRefsCmd(o *RefsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refs",
		Aliases: []string{"r"},
		Short:   "Show references between resources",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().BoolVarP(&o.Recursive, "recursive", "R", true, "Include files in subdirectories")
	cmd.Flags().StringVarP(&o.Output, "output", "o", RefsOutputText, "Output format (text, json)")
	cmd.Flags().BoolVar(&o.Unsatisfied, "unsatisfied", false, "Also list references without target")
	o.RuleFlags.Set(cmd)
	o.CommonFlags.Set(cmd)
	return cmd
}

func (o *RefsOptions) Run() error {
	ui, err := o.CommonFlags.UI()
	if err != nil {
		return err
	}

	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	fileOpts := o.CommonFlags.FileOpts(o.Recursive)

	registry, err := o.RuleFlags.Registry(fileOpts)
	if err != nil {
		return err
	}

	inputFiles, err := files.NewFiles(o.Files, fileOpts)
	if err != nil {
		return err
	}

	return o.RunWithFiles(inputFiles, registry, ui)
}

func (o *RefsOptions) RunWithFiles(inputFiles []*files.File, registry *kindhandlers.Registry, ui ui.UI) error {
	resources, skipped, err := manifest.ResourcesFromFiles(inputFiles)
	if err != nil {
		return err
	}

	for _, skip := range skipped {
		ui.Debugf("skipping %s\n", skip)
	}

	t1 := time.Now()
	graph := refs.Resolve(resources, registry.RuleSet())
	ui.Debugf("resolve: %s (%d resources, %d references)\n", time.Now().Sub(t1), len(resources), len(graph.References()))

	return printGraph(graph, o.Output, o.Unsatisfied, ui)
}

func printGraph(graph *refs.Graph, output string, unsatisfied bool, ui ui.UI) error {
	switch output {
	case RefsOutputText, "":
		printGraphText(graph, unsatisfied, ui)
		return nil

	case RefsOutputJSON:
		bs, err := json.MarshalIndent(newGraphView(graph, unsatisfied), "", "  ")
		if err != nil {
			return err
		}
		ui.Printf("%s\n", bs)
		return nil

	default:
		return fmt.Errorf("Unknown output format '%s'", output)
	}
}

func printGraphText(graph *refs.Graph, unsatisfied bool, ui ui.UI) {
	colors := ui.Colors()

	for _, res := range graph.Resources() {
		outgoing := graph.Outgoing(res.ID)
		if len(outgoing) == 0 {
			continue
		}

		ui.Printf("%s %s\n", colors.Header("%s", res.Description()), colors.Faint("(%s)", res.Position.AsCompactString()))

		for _, edge := range outgoing {
			target, _ := graph.Resource(edge.TargetID)
			ui.Printf("  %s -> %s %s\n", edge.SourcePath, target.Description(), colors.Faint("(%s)", edge.Position.AsCompactString()))
		}
	}

	for _, ref := range graph.Ambiguous() {
		ui.Warnf("Warning: %s '%s' matches %d %s resources\n",
			ref.SourcePath, ref.Value, len(ref.TargetIDs), ref.Rule.TargetKind)
	}

	if unsatisfied {
		for _, ref := range graph.Unsatisfied() {
			source, _ := graph.Resource(ref.SourceID)
			ui.Printf("%s %s: %s %s '%s' not found %s\n", colors.Removed("unsatisfied"), source.Description(),
				ref.SourcePath, ref.Rule.TargetKind, ref.Value, colors.Faint("(%s)", ref.Position.AsCompactString()))
		}
	}
}

type resourceView struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Position string `json:"position"`
}

type referenceView struct {
	Source     resourceView        `json:"source"`
	SourcePath string              `json:"sourcePath"`
	Value      string              `json:"value"`
	Position   string              `json:"position"`
	Rule       refs.RuleDescriptor `json:"rule"`
	Targets    []resourceView      `json:"targets"`
}

type graphView struct {
	References []referenceView `json:"references"`
}

func newGraphView(graph *refs.Graph, unsatisfied bool) graphView {
	view := graphView{References: []referenceView{}}

	for _, ref := range graph.ResolvedReferences() {
		if len(ref.TargetIDs) == 0 && !unsatisfied {
			continue
		}

		source, _ := graph.Resource(ref.SourceID)
		refView := referenceView{
			Source:     newResourceView(source),
			SourcePath: ref.SourcePath.String(),
			Value:      ref.Value,
			Position:   ref.Position.AsCompactString(),
			Rule:       ref.Rule,
			Targets:    []resourceView{},
		}
		for _, id := range ref.TargetIDs {
			target, _ := graph.Resource(id)
			refView.Targets = append(refView.Targets, newResourceView(target))
		}
		view.References = append(view.References, refView)
	}
	return view
}

func newResourceView(res *refs.Resource) resourceView {
	return resourceView{ID: res.ID, Resource: res.Description(), Position: res.Position.AsCompactString()}
}
