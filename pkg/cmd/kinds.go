// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/kindhandlers"
	"github.com/spf13/cobra"
)

type KindsOptions struct {
	ShowRules bool

	RuleFlags   RuleFlags
	CommonFlags CommonFlags
}

func NewKindsOptions() *KindsOptions {
	return &KindsOptions{}
}

func NewKindsCmd(o *KindsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List resource kinds known to reference resolution",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.ShowRules, "rules-detail", false, "Show outgoing reference rules of every kind")
	o.RuleFlags.Set(cmd)
	o.CommonFlags.Set(cmd)
	return cmd
}

func (o *KindsOptions) Run() error {
	ui, err := o.CommonFlags.UI()
	if err != nil {
		return err
	}

	registry, err := o.RuleFlags.Registry(o.CommonFlags.FileOpts(false))
	if err != nil {
		return err
	}

	o.RunWithRegistry(registry, ui)
	return nil
}

func (o *KindsOptions) RunWithRegistry(registry *kindhandlers.Registry, ui ui.UI) {
	colors := ui.Colors()

	for _, handler := range registry.Handlers() {
		scope := "cluster"
		if handler.Namespaced {
			scope = "namespaced"
		}
		ui.Printf("%s %s\n", colors.Header("%s", handler.Kind),
			colors.Faint("(%s, %s, %s, %d rules)", apiVersionText(handler), scope, handler.Section, len(handler.OutgoingRefRules)))

		if o.ShowRules {
			for _, rule := range handler.OutgoingRefRules {
				desc := rule.Descriptor(handler.Kind)
				ui.Printf("  %s -> %s%s\n", desc.Path, desc.TargetKind, ruleSuffix(desc.Optional, desc.When))
			}
		}
	}
}

func apiVersionText(handler kindhandlers.Handler) string {
	if len(handler.ClusterAPIVersion) > 0 {
		return fmt.Sprintf("%s, cluster %s", handler.APIVersionMatcher, handler.ClusterAPIVersion)
	}
	return handler.APIVersionMatcher
}

func ruleSuffix(optional bool, when string) string {
	var suffix string
	if optional {
		suffix += " (optional)"
	}
	if len(when) > 0 {
		suffix += " when " + when
	}
	return suffix
}
