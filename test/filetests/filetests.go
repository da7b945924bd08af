// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filetests houses a test harness for running merges and reference
resolutions described in files and asserting the expected output.
*/
package filetests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnbedeir/monokle/pkg/kindhandlers"
	"github.com/johnbedeir/monokle/pkg/manifest"
	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/johnbedeir/monokle/pkg/valuesmerge"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/k14s/difflib"
)

const separator = "\n+++\n\n"

// Evaluate is the processing desired from the inputs of a test case to the final result.
type Evaluate func(inputs []string) (string, *TestErr)

// FileTests contain a suite of test cases, each described in a separate file.
//
// Test cases:
// - are found within the directory at "PathToTests"
// - hold "Inputs" input sections followed by the expected output; sections are divided by `+++` and a blank line.
//
// Expected output starting with `ERR:` indicates that expected output is an error message;
// otherwise expected output is the literal output of the evaluation.
//
// For example:
//
//	replicas:
//	  value: 1
//	+++
//
//	replicas:
//	  value: 3
//	+++
//
//	replicas:
//	  value: 3
type FileTests struct {
	PathToTests string
	Inputs      int
	EvalFunc    Evaluate
}

// Run runs each test: enumerates each file within FileTests.PathToTests, splits and evaluates it using FileTests.EvalFunc.
func (f FileTests) Run(t *testing.T) {
	var files []string

	err := filepath.Walk(f.PathToTests, func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}
	if len(files) == 0 {
		t.Fatalf("Expected to find filetests in %s", f.PathToTests)
	}

	for _, filePath := range files {
		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), separator, f.Inputs+1)
			if len(pieces) != f.Inputs+1 {
				t.Fatalf("expected file %s to include %d +++ separators", filePath, f.Inputs)
			}
			expectedStr := pieces[f.Inputs]

			resultStr, testErr := f.EvalFunc(pieces[:f.Inputs])

			switch {
			case strings.HasPrefix(expectedStr, "ERR:"):
				if testErr == nil {
					err = fmt.Errorf("expected eval error, but did not receive it")
				} else {
					expectedStr = strings.TrimPrefix(expectedStr, "ERR:")
					expectedStr = strings.TrimPrefix(expectedStr, " ")
					err = f.expectEquals(testErr.UserErr().Error(), expectedStr)
				}
			default:
				if testErr == nil {
					err = f.expectEquals(resultStr, expectedStr)
				} else {
					err = testErr.TestErr()
				}
			}

			if err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

// TestErr captures an error result from a single test.
type TestErr struct {
	realErr error
	testErr error
}

// NewTestErr creates a new TestErr
func NewTestErr(realErr, testErr error) *TestErr {
	return &TestErr{realErr, testErr}
}

// UserErr yields the error returned to the user
func (e TestErr) UserErr() error { return e.realErr }

// TestErr yields the error wrapped with helpful test context
func (e TestErr) TestErr() error { return e.testErr }

func (f FileTests) expectEquals(resultStr, expectedStr string) error {
	resultStr = TrimTrailingMultilineWhitespace(resultStr)
	expectedStr = TrimTrailingMultilineWhitespace(expectedStr)

	if resultStr != expectedStr {
		return fmt.Errorf("not equal; diff expected...result:\n%s", difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n")))
	}
	return nil
}

// MergeEval merges the second input (values) into the first input (template).
func MergeEval(opts valuesmerge.Opts) Evaluate {
	return func(inputs []string) (string, *TestErr) {
		template, err := yamlmeta.NewDocumentFromBytes([]byte(inputs[0]), yamlmeta.DocSetOpts{AssociatedName: "template.yml"})
		if err != nil {
			return "", NewTestErr(err, fmt.Errorf("template unmarshal error: %v", err))
		}

		values, err := yamlmeta.NewDocumentFromBytes([]byte(inputs[1]), yamlmeta.DocSetOpts{AssociatedName: "values.yml"})
		if err != nil {
			return "", NewTestErr(err, fmt.Errorf("values unmarshal error: %v", err))
		}

		merged, err := valuesmerge.Merge(template, values, opts)
		if err != nil {
			return "", NewTestErr(err, fmt.Errorf("merge error: %v", err))
		}

		bs, err := merged.AsYAMLBytes()
		if err != nil {
			return "", NewTestErr(err, fmt.Errorf("marshal error: %v", err))
		}
		return string(bs), nil
	}
}

// RefsEval resolves references between the resources of the first input,
// listing edges followed by unsatisfied references.
func RefsEval(registry *kindhandlers.Registry) Evaluate {
	return func(inputs []string) (string, *TestErr) {
		resources, _, err := manifest.ResourcesFromBytes([]byte(inputs[0]), "manifests.yml")
		if err != nil {
			return "", NewTestErr(err, fmt.Errorf("manifests unmarshal error: %v", err))
		}

		graph := refs.Resolve(resources, registry.RuleSet())

		var lines []string
		for _, edge := range graph.Edges() {
			source, _ := graph.Resource(edge.SourceID)
			target, _ := graph.Resource(edge.TargetID)
			lines = append(lines, fmt.Sprintf("%s %s -> %s (%s)", source.Description(),
				edge.SourcePath, target.Description(), edge.Position.AsCompactString()))
		}
		for _, ref := range graph.Unsatisfied() {
			source, _ := graph.Resource(ref.SourceID)
			lines = append(lines, fmt.Sprintf("unsatisfied %s %s -> %s '%s' (%s)", source.Description(),
				ref.SourcePath, ref.Rule.TargetKind, ref.Value, ref.Position.AsCompactString()))
		}
		return strings.Join(lines, "\n") + "\n", nil
	}
}

// TrimTrailingMultilineWhitespace returns a string with trailing whitespace trimmed from every line as well
// as trimmed trailing empty lines
func TrimTrailingMultilineWhitespace(s string) string {
	var trimmedLines []string
	for _, line := range strings.Split(s, "\n") {
		trimmedLine := strings.TrimRight(line, "\t ")
		trimmedLines = append(trimmedLines, trimmedLine)
	}
	multiline := strings.Join(trimmedLines, "\n")
	return strings.TrimRight(multiline, "\n")
}
