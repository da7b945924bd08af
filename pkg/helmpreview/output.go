// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package helmpreview

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

const notesMarker = "NOTES:"

var documentSeparator = regexp.MustCompile(`(?m)^---[ \t]*(#.*)?$`)

// SplitOutput separates rendered manifests from chart notes at the
// first "NOTES:" marker.
func SplitOutput(stdout string) (manifests, notes string) {
	idx := strings.Index(stdout, notesMarker)
	if idx < 0 {
		return stdout, ""
	}
	return stdout[:idx], strings.TrimSpace(stdout[idx+len(notesMarker):])
}

// Warning reports a document of the output that was ignored because it
// could not be parsed.
type Warning struct {
	Document int
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("Ignoring document %d: %s", w.Document, w.Err)
}

// Preview is the parsed result of a dry run.
type Preview struct {
	Resources []*refs.Resource
	Notes     string
	Warnings  []Warning
}

// Resources reads resources out of dry-run stdout. Each document is
// parsed on its own so one broken document does not hide the rest.
// Documents that are not resources (e.g. the release header) are dropped.
func Resources(stdout, name string) Preview {
	manifests, notes := SplitOutput(stdout)
	preview := Preview{Notes: notes}

	for i, chunk := range splitDocuments(manifests) {
		if len(strings.TrimSpace(chunk)) == 0 {
			continue
		}

		doc, err := yamlmeta.NewDocumentFromBytes([]byte(chunk), yamlmeta.DocSetOpts{AssociatedName: name})
		if err != nil {
			preview.Warnings = append(preview.Warnings, Warning{Document: i, Err: err})
			continue
		}

		root, ok := doc.RootMap()
		if !ok {
			continue
		}

		res, err := refs.NewResource(fmt.Sprintf("%s#%d", name, i), root)
		if err != nil {
			continue
		}
		preview.Resources = append(preview.Resources, res)
	}

	return preview
}

// splitDocuments cuts text at document separators. Chunks are padded with
// newlines so parsed positions keep their line numbers in text.
func splitDocuments(text string) []string {
	var chunks []string
	start := 0

	for _, loc := range documentSeparator.FindAllStringIndex(text, -1) {
		chunks = append(chunks, padLines(text, start, loc[0]))
		start = loc[1]
	}
	return append(chunks, padLines(text, start, len(text)))
}

func padLines(text string, start, end int) string {
	return strings.Repeat("\n", strings.Count(text[:start], "\n")) + text[start:end]
}
