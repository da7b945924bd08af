// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package kindhandlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-version"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/refs"
	"gopkg.in/yaml.v3"
)

// SupportedSchemaVersions is the range of rule file schemaVersion values
// this build understands.
const SupportedSchemaVersions = ">= 1.0, < 2.0"

var supportedSchemaVersions = version.MustConstraints(version.NewConstraint(SupportedSchemaVersions))

type RuleFile struct {
	SchemaVersion string        `yaml:"schemaVersion" toml:"schemaVersion"`
	Handlers      []HandlerSpec `yaml:"handlers" toml:"handlers"`
}

type HandlerSpec struct {
	Kind              string `yaml:"kind" toml:"kind"`
	APIVersionMatcher string `yaml:"apiVersionMatcher" toml:"apiVersionMatcher"`
	ClusterAPIVersion string `yaml:"clusterApiVersion" toml:"clusterApiVersion"`
	// Namespaced defaults to true.
	Namespaced  *bool  `yaml:"namespaced" toml:"namespaced"`
	Section     string `yaml:"section" toml:"section"`
	Description string `yaml:"description" toml:"description"`
	// PodRules adds PodOutgoingRefRules for kinds embedding a pod template.
	PodRules     bool       `yaml:"podRules" toml:"podRules"`
	OutgoingRefs []RuleSpec `yaml:"outgoingRefs" toml:"outgoingRefs"`
}

type RuleSpec struct {
	Path            string            `yaml:"path" toml:"path"`
	TargetKind      string            `yaml:"targetKind" toml:"targetKind"`
	Optional        bool              `yaml:"optional" toml:"optional"`
	SiblingMatchers map[string]string `yaml:"siblingMatchers" toml:"siblingMatchers"`
	When            string            `yaml:"when" toml:"when"`
}

// LoadFiles parses rule files and registers their handlers. Nothing is
// registered if any file is invalid.
func (r *Registry) LoadFiles(ruleFiles []*files.File) error {
	var handlers []Handler

	for _, file := range ruleFiles {
		data, err := file.Bytes()
		if err != nil {
			return fmt.Errorf("Reading rule file '%s': %s", file.RelativePath(), err)
		}

		fileHandlers, err := ParseRuleFile(data, file.RelativePath(), file.Type())
		if err != nil {
			return err
		}
		handlers = append(handlers, fileHandlers...)
	}

	return r.Register(handlers...)
}

// ParseRuleFile decodes TOML when fileType is files.TypeTOML and YAML
// (or JSON) otherwise.
func ParseRuleFile(data []byte, name string, fileType files.Type) ([]Handler, error) {
	var ruleFile RuleFile

	var err error
	if fileType == files.TypeTOML {
		err = decodeTOML(data, &ruleFile)
	} else {
		err = decodeYAML(data, &ruleFile)
	}
	if err != nil {
		return nil, &RuleError{File: name, Rule: -1, Err: err}
	}

	return ruleFile.AsHandlers(name)
}

func decodeYAML(data []byte, ruleFile *RuleFile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(ruleFile)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("Expected non-empty rule file")
		}
		return fmt.Errorf("Unmarshaling YAML: %s", err)
	}
	return nil
}

func decodeTOML(data []byte, ruleFile *RuleFile) error {
	md, err := toml.Decode(string(data), ruleFile)
	if err != nil {
		return fmt.Errorf("Unmarshaling TOML: %s", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("Unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func (f RuleFile) checkSchemaVersion() error {
	if len(f.SchemaVersion) == 0 {
		return fmt.Errorf("Expected schemaVersion to be specified (supported: %s)", SupportedSchemaVersions)
	}
	ver, err := version.NewVersion(f.SchemaVersion)
	if err != nil {
		return fmt.Errorf("Parsing schemaVersion '%s': %s", f.SchemaVersion, err)
	}
	if !supportedSchemaVersions.Check(ver) {
		return fmt.Errorf("Expected schemaVersion '%s' to satisfy '%s'", f.SchemaVersion, SupportedSchemaVersions)
	}
	return nil
}

func (f RuleFile) AsHandlers(name string) ([]Handler, error) {
	err := f.checkSchemaVersion()
	if err != nil {
		return nil, &RuleError{File: name, Rule: -1, Err: err}
	}

	var result []Handler

	for i, spec := range f.Handlers {
		handlerName := spec.Kind
		if len(handlerName) == 0 {
			handlerName = fmt.Sprintf("#%d", i)
		}

		handler, err := spec.asHandler()
		if err != nil {
			var ruleErr *RuleError
			if errors.As(err, &ruleErr) {
				ruleErr.File = name
				ruleErr.Handler = handlerName
				return nil, ruleErr
			}
			return nil, &RuleError{File: name, Handler: handlerName, Rule: -1, Err: err}
		}
		result = append(result, handler)
	}

	return result, nil
}

func (s HandlerSpec) asHandler() (Handler, error) {
	handler := Handler{
		Kind:              s.Kind,
		APIVersionMatcher: s.APIVersionMatcher,
		ClusterAPIVersion: s.ClusterAPIVersion,
		Namespaced:        true,
		Section:           s.Section,
		Description:       s.Description,
	}
	if len(handler.APIVersionMatcher) == 0 {
		handler.APIVersionMatcher = refs.AnyAPIVersion
	}
	if s.Namespaced != nil {
		handler.Namespaced = *s.Namespaced
	}
	if s.PodRules {
		handler.OutgoingRefRules = append(handler.OutgoingRefRules, PodOutgoingRefRules...)
	}

	for i, ruleSpec := range s.OutgoingRefs {
		rule, err := ruleSpec.asRule()
		if err != nil {
			return Handler{}, &RuleError{Rule: i, Err: err}
		}
		handler.OutgoingRefRules = append(handler.OutgoingRefRules, rule)
	}

	return handler, handler.Validate()
}

func (s RuleSpec) asRule() (refs.Rule, error) {
	rule, err := refs.NewRule(s.Path, s.TargetKind, s.Optional, s.SiblingMatchers)
	if err != nil {
		return refs.Rule{}, err
	}
	if len(s.When) > 0 {
		cond, err := NewExprCondition(s.When)
		if err != nil {
			return refs.Rule{}, err
		}
		rule.Condition = cond
	}
	return rule, nil
}
