// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/johnbedeir/monokle/pkg/version"
	"github.com/spf13/cobra"
)

type MonokleOptions struct{}

func NewDefaultMonokleOptions() *MonokleOptions {
	return &MonokleOptions{}
}

func NewDefaultMonokleCmd() *cobra.Command {
	return NewMonokleCmd(NewDefaultMonokleOptions())
}

func NewMonokleCmd(o *MonokleOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "monokle",
		Version: version.Version,
		Short:   "monokle merges Helm values and shows references between Kubernetes resources",
		Long: `monokle merges Helm values and shows references between Kubernetes resources.

  monokle merge -t template.yaml -v values.yaml
  monokle refs -f manifests/
  monokle helm-preview --chart nginx --repo https://charts.bitnami.com/bitnami --values values.yaml
  monokle fmt -f manifests/`,
		RunE: cobrautil.ShowHelp,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewMergeCmd(NewMergeOptions()))
	cmd.AddCommand(NewRefsCmd(NewRefsOptions()))
	cmd.AddCommand(NewHelmPreviewCmd(NewHelmPreviewOptions()))
	cmd.AddCommand(NewKindsCmd(NewKindsOptions()))
	cmd.AddCommand(NewFmtCmd(NewFmtOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
