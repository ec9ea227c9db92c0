package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sourcery/inspector/annotation"
	"github.com/viant/sourcery/inspector/graph"
)

func TestRender(t *testing.T) {
	aFile := &graph.File{Name: "Person.swift", Path: "Person.swift"}
	aFile.AddVariable(&graph.Variable{
		Name:        "age",
		TypeName:    graph.NewTypeName("Int"),
		AccessLevel: graph.AccessLevel{Read: graph.AccessPublic, Write: graph.AccessPublic},
		Annotations: annotation.Annotations{"skipEquality": annotation.Bool(true)},
	})

	testCases := []struct {
		description string
		format      string
		expect      []string
		expectErr   bool
	}{
		{
			description: "yaml",
			format:      formatYAML,
			expect:      []string{"name: Person.swift", "typeName: Int", "skipEquality: true", "read: public"},
		},
		{
			description: "json",
			format:      formatJSON,
			expect:      []string{`"name": "age"`, `"typeName": "Int"`, `"skipEquality": true`},
		},
		{
			description: "unsupported",
			format:      "xml",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := render(buf, aFile, testCase.format)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, fragment := range testCase.expect {
				assert.Contains(t, buf.String(), fragment)
			}
		})
	}
}
