// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/orderedmap"
)

func NewGoFromAST(val interface{}) interface{} {
	return convertToGo(val)
}

func convertToGo(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *DocumentSet:
		panic("Unexpected docset value within document")

	case *Document:
		return convertToGo(typedVal.Value)

	case *Map:
		result := orderedmap.NewMap()
		for _, item := range typedVal.Items {
			// Catch any cases where unique key invariant is violated
			if _, found := result.Get(item.Key); found {
				panic(fmt.Sprintf("Unexpected duplicate key: %s", item.Key))
			}
			result.Set(item.Key, convertToGo(item.Value))
		}
		return result

	case *Array:
		result := []interface{}{}
		for _, item := range typedVal.Items {
			result = append(result, convertToGo(item.Value))
		}
		return result

	case *Scalar:
		return typedVal.Value

	case nil:
		return nil

	default:
		panic(fmt.Sprintf("Unexpected %T in document", val))
	}
}
