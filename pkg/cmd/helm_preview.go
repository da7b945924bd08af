// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/helmpreview"
	"github.com/johnbedeir/monokle/pkg/kindhandlers"
	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/spf13/cobra"
)

type HelmPreviewOptions struct {
	Chart       helmpreview.Opts
	ConfigFile  string
	RootDir     string
	DryRunFile  string
	ShowRefs    bool
	Unsatisfied bool

	RuleFlags   RuleFlags
	CommonFlags CommonFlags
}

func NewHelmPreviewOptions() *HelmPreviewOptions {
	return &HelmPreviewOptions{}
}

func NewHelmPreviewCmd(o *HelmPreviewOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helm-preview",
		Short: "Prepare and read Helm dry-run previews",
		Long: `Prepare and read Helm dry-run previews.

Without --dry-run-output the helm command previewing the chart is printed:
a chart from a repository (--chart, --repo) or a saved local chart preview
(--preview-config, paths resolved against --root-dir).
With --dry-run-output the saved stdout of that command is read and the
resources it renders are listed (optionally with their references).`,
		RunE: func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.Chart.Chart, "chart", "", "Chart name")
	cmd.Flags().StringVar(&o.Chart.Repo, "repo", "", "Chart repository URL")
	cmd.Flags().StringVar(&o.Chart.Version, "version", "", "Chart version")
	cmd.Flags().StringVar(&o.Chart.ValuesFile, "values", "", "Values file passed to helm")
	cmd.Flags().StringVar(&o.Chart.KubeContext, "kube-context", "", "Kubernetes context passed to helm")
	cmd.Flags().StringVar(&o.ConfigFile, "preview-config", "", "Saved preview configuration of a local chart (YAML or JSON)")
	cmd.Flags().StringVar(&o.RootDir, "root-dir", "", "Directory relative chart and values paths are resolved against")
	cmd.Flags().StringVar(&o.DryRunFile, "dry-run-output", "", "Saved helm dry-run stdout (ie local path, HTTP URL, -)")
	cmd.Flags().BoolVar(&o.ShowRefs, "refs", false, "Show references between rendered resources")
	cmd.Flags().BoolVar(&o.Unsatisfied, "unsatisfied", false, "Also list references without target")
	o.RuleFlags.Set(cmd)
	o.CommonFlags.Set(cmd)
	return cmd
}

func (o *HelmPreviewOptions) Run() error {
	ui, err := o.CommonFlags.UI()
	if err != nil {
		return err
	}

	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	fileOpts := o.CommonFlags.FileOpts(false)

	if len(o.ConfigFile) > 0 {
		if len(o.DryRunFile) > 0 {
			return fmt.Errorf("Expected only one of --preview-config or --dry-run-output to be specified")
		}
		configFile, err := singleFile(o.ConfigFile, "preview configuration", fileOpts)
		if err != nil {
			return err
		}
		return o.RunWithConfigFile(configFile, ui)
	}

	if len(o.DryRunFile) == 0 {
		args, err := helmpreview.InstallArgs(o.Chart)
		if err != nil {
			return err
		}
		ui.Printf("%s\n", strings.Join(args, " "))
		return nil
	}

	outputFile, err := singleFile(o.DryRunFile, "dry-run output", fileOpts)
	if err != nil {
		return err
	}

	registry, err := o.RuleFlags.Registry(fileOpts)
	if err != nil {
		return err
	}

	return o.RunWithFile(outputFile, registry, ui)
}

// RunWithConfigFile prints the helm command of a saved preview.
func (o *HelmPreviewOptions) RunWithConfigFile(configFile *files.File, ui ui.UI) error {
	data, err := configFile.Bytes()
	if err != nil {
		return err
	}

	cfg, err := helmpreview.NewPreviewConfigurationFromBytes(data, configFile.RelativePath())
	if err != nil {
		return err
	}

	args, err := cfg.Args(o.RootDir, o.Chart.KubeContext)
	if err != nil {
		return err
	}
	ui.Printf("%s\n", strings.Join(args, " "))
	return nil
}

func (o *HelmPreviewOptions) RunWithFile(outputFile *files.File, registry *kindhandlers.Registry, ui ui.UI) error {
	data, err := outputFile.Bytes()
	if err != nil {
		return err
	}

	preview := helmpreview.Resources(string(data), outputFile.RelativePath())

	for _, warning := range preview.Warnings {
		ui.Warnf("Warning: %s\n", warning)
	}

	colors := ui.Colors()

	for _, res := range preview.Resources {
		ui.Printf("%s %s\n", res.Description(), colors.Faint("(%s)", res.Position.AsCompactString()))
	}

	if o.ShowRefs {
		ui.Printf("\n")
		err := printGraph(refs.Resolve(preview.Resources, registry.RuleSet()), RefsOutputText, o.Unsatisfied, ui)
		if err != nil {
			return err
		}
	}

	if len(preview.Notes) > 0 {
		ui.Printf("\n%s\n%s\n", colors.Header("NOTES:"), preview.Notes)
	}
	return nil
}
