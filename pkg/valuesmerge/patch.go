// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package valuesmerge

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

// MergePatch returns the JSON merge patch (RFC 7386) that turns
// template into merged.
func MergePatch(template, merged *yamlmeta.Document) ([]byte, error) {
	templateJSON, err := template.AsJSONBytes()
	if err != nil {
		return nil, err
	}

	mergedJSON, err := merged.AsJSONBytes()
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.CreateMergePatch(templateJSON, mergedJSON)
	if err != nil {
		return nil, fmt.Errorf("Creating merge patch: %w", err)
	}
	return patch, nil
}
