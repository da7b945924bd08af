// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

// Package manifest turns manifest text into resources for reference
// resolution.
package manifest

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

// Skipped is a document that is not a resource, e.g. an empty document
// or one without kind.
type Skipped struct {
	Name   string
	Index  int
	Reason error
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s#%d: %s", s.Name, s.Index, s.Reason)
}

// ResourcesFromBytes parses a multi document stream. Resource IDs are
// name#index with index counting documents from 0.
func ResourcesFromBytes(data []byte, name string) ([]*refs.Resource, []Skipped, error) {
	docSet, err := yamlmeta.NewDocumentSetFromBytes(data, yamlmeta.DocSetOpts{AssociatedName: name})
	if err != nil {
		return nil, nil, err
	}

	var resources []*refs.Resource
	var skipped []Skipped

	for i, doc := range docSet.Items {
		if doc.IsEmpty() {
			continue
		}

		id := fmt.Sprintf("%s#%d", name, i)

		root, ok := doc.RootMap()
		if !ok {
			skipped = append(skipped, Skipped{name, i, fmt.Errorf("Expected document to be a map, but was %s", yamlmeta.TypeName(doc.Value))})
			continue
		}

		res, err := refs.NewResource(id, root)
		if err != nil {
			skipped = append(skipped, Skipped{name, i, err})
			continue
		}
		resources = append(resources, res)
	}

	return resources, skipped, nil
}

// ResourcesFromFiles reads every manifest file (YAML or JSON); other
// files are ignored.
func ResourcesFromFiles(manifestFiles []*files.File) ([]*refs.Resource, []Skipped, error) {
	var resources []*refs.Resource
	var skipped []Skipped

	for _, file := range manifestFiles {
		if !file.IsManifest() {
			continue
		}

		data, err := file.Bytes()
		if err != nil {
			return nil, nil, fmt.Errorf("Reading %s: %s", file.Description(), err)
		}

		fileResources, fileSkipped, err := ResourcesFromBytes(data, file.RelativePath())
		if err != nil {
			return nil, nil, err
		}

		resources = append(resources, fileResources...)
		skipped = append(skipped, fileSkipped...)
	}

	return resources, skipped, nil
}
