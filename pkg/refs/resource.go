// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package refs

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"github.com/johnbedeir/monokle/pkg/nodepath"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

type Resource struct {
	ID         string
	APIVersion string
	Kind       string
	Namespace  string
	Name       string
	Content    *yamlmeta.Map
	Position   *filepos.Position
}

var (
	apiVersionPath = nodepath.MustParse("$.apiVersion")
	kindPath       = nodepath.MustParse("$.kind")
	namePath       = nodepath.MustParse("$.metadata.name")
	namespacePath  = nodepath.MustParse("$.metadata.namespace")
)

// NewResource reads identity fields from content. apiVersion, kind and
// metadata.name are required.
func NewResource(id string, content *yamlmeta.Map) (*Resource, error) {
	if content == nil {
		return nil, fmt.Errorf("Expected resource '%s' to be a map", id)
	}

	res := &Resource{
		ID:       id,
		Content:  content,
		Position: content.Position,
	}

	required := []struct {
		Path  nodepath.Path
		Field *string
	}{
		{apiVersionPath, &res.APIVersion},
		{kindPath, &res.Kind},
		{namePath, &res.Name},
	}

	for _, req := range required {
		val := scalarString(content, req.Path)
		if len(val) == 0 {
			return nil, fmt.Errorf("Expected resource '%s' to have non-empty '%s'", id, req.Path.Steps())
		}
		*req.Field = val
	}

	res.Namespace = scalarString(content, namespacePath)
	return res, nil
}

func (r *Resource) GroupVersionKind() schema.GroupVersionKind {
	return schema.FromAPIVersionAndKind(r.APIVersion, r.Kind)
}

// Description is a short human readable identity, e.g. Secret/ns1/creds.
func (r *Resource) Description() string {
	if len(r.Namespace) == 0 {
		return r.Kind + "/" + r.Name
	}
	return r.Kind + "/" + r.Namespace + "/" + r.Name
}

func scalarString(content *yamlmeta.Map, path nodepath.Path) string {
	val, found := nodepath.Lookup(content, path)
	if !found {
		return ""
	}
	scalar, ok := val.(*yamlmeta.Scalar)
	if !ok {
		return ""
	}
	return scalar.AsString()
}
