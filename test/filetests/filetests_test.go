// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package filetests_test

import (
	"testing"

	"github.com/johnbedeir/monokle/pkg/kindhandlers"
	"github.com/johnbedeir/monokle/pkg/valuesmerge"
	"github.com/johnbedeir/monokle/test/filetests"
	"github.com/stretchr/testify/assert"
)

func TestMergeFileTests(t *testing.T) {
	filetests.FileTests{
		PathToTests: "merge",
		Inputs:      2,
		EvalFunc:    filetests.MergeEval(valuesmerge.Opts{}),
	}.Run(t)
}

func TestMergePlainValuesFileTests(t *testing.T) {
	filetests.FileTests{
		PathToTests: "merge-plain",
		Inputs:      2,
		EvalFunc:    filetests.MergeEval(valuesmerge.Opts{AnyMappingValue: true}),
	}.Run(t)
}

func TestRefsFileTests(t *testing.T) {
	filetests.FileTests{
		PathToTests: "refs",
		Inputs:      1,
		EvalFunc:    filetests.RefsEval(kindhandlers.NewBuiltinRegistry()),
	}.Run(t)
}

func TestTrimTrailingMultilineWhitespace(t *testing.T) {
	for _, testcase := range []struct {
		give, want string
	}{
		{
			give: `we want yaml`,
			want: `we want yaml`,
		},
		{
			give: `we want yaml `,
			want: `we want yaml`,
		},
		{
			give: `we want yaml	`,
			want: `we want yaml`,
		},
		{
			give: `we want yaml
`,
			want: `we want yaml`,
		},
		{
			give: `
we 
want	
yaml  `,
			want: `
we
want
yaml`,
		},
	} {
		assert.Equal(t, testcase.want, filetests.TrimTrailingMultilineWhitespace(testcase.give))
	}
}
