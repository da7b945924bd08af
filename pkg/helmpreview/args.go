// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package helmpreview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Opts describe a chart from a repository previewed with one values file.
type Opts struct {
	KubeContext string
	ValuesFile  string
	Repo        string
	Chart       string
	Version     string
}

func (o Opts) Validate() error {
	switch {
	case len(o.Chart) == 0:
		return fmt.Errorf("Expected chart name to be specified")
	case len(o.Repo) == 0:
		return fmt.Errorf("Expected chart repository to be specified")
	case len(o.ValuesFile) == 0:
		return fmt.Errorf("Expected values file to be specified")
	}
	return nil
}

// InstallArgs returns helm's argv (starting with "helm") for a dry-run
// install with a generated release name. Empty context and version are
// omitted.
func InstallArgs(o Opts) ([]string, error) {
	err := o.Validate()
	if err != nil {
		return nil, err
	}

	args := []string{"helm", "install"}
	if len(o.KubeContext) > 0 {
		args = append(args, "--kube-context", o.KubeContext)
	}
	args = append(args, "-f", o.ValuesFile, "--repo", o.Repo, o.Chart)
	if len(o.Version) > 0 {
		args = append(args, "--version", o.Version)
	}
	return append(args, "--generate-name", "--dry-run"), nil
}

type Command string

const (
	CommandTemplate Command = "template"
	CommandInstall  Command = "install"
)

// PreviewConfiguration is a saved preview of a local chart: values files
// are applied in order and Options become --key value flags (flags
// without value when the value is empty).
type PreviewConfiguration struct {
	Name                   string            `json:"name" yaml:"name"`
	ChartPath              string            `json:"chartPath" yaml:"chartPath"`
	OrderedValuesFilePaths []string          `json:"orderedValuesFilePaths" yaml:"orderedValuesFilePaths"`
	Command                Command           `json:"command" yaml:"command"`
	Options                map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// NewPreviewConfigurationFromBytes decodes a saved preview written as
// YAML or JSON. Unknown fields are rejected.
func NewPreviewConfigurationFromBytes(data []byte, name string) (PreviewConfiguration, error) {
	var cfg PreviewConfiguration

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("Loading preview configuration '%s': Expected non-empty file", name)
		}
		return cfg, fmt.Errorf("Loading preview configuration '%s': %s", name, err)
	}
	return cfg, nil
}

// Args builds the helm argv. Relative paths are resolved against
// rootDir. Install previews target kubeContext and are dry runs.
func (c PreviewConfiguration) Args(rootDir, kubeContext string) ([]string, error) {
	if len(c.ChartPath) == 0 {
		return nil, fmt.Errorf("Expected preview configuration '%s' to have chart path", c.Name)
	}

	command := c.Command
	if len(command) == 0 {
		command = CommandTemplate
	}

	args := []string{"helm", string(command)}

	switch command {
	case CommandTemplate:
	case CommandInstall:
		if len(kubeContext) > 0 {
			args = append(args, "--kube-context", kubeContext)
		}
	default:
		return nil, fmt.Errorf("Unknown preview command '%s' (known: %s, %s)", command, CommandTemplate, CommandInstall)
	}

	for _, path := range c.OrderedValuesFilePaths {
		args = append(args, "-f", resolvePath(rootDir, path))
	}

	var keys []string
	for key := range c.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key)
		if val := c.Options[key]; len(val) > 0 {
			args = append(args, val)
		}
	}

	args = append(args, resolvePath(rootDir, c.ChartPath))

	if command == CommandInstall {
		args = append(args, "--generate-name", "--dry-run")
	}
	return args, nil
}

func resolvePath(rootDir, path string) string {
	if filepath.IsAbs(path) || len(rootDir) == 0 {
		return path
	}
	return filepath.Join(rootDir, path)
}
