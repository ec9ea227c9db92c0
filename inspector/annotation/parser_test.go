package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/sourcery/inspector/annotation"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected annotation.Annotations
	}{
		{
			name:     "no comments",
			lines:    nil,
			expected: annotation.Annotations{},
		},
		{
			name:  "single flag",
			lines: []string{"// sourcery: skipEquability"},
			expected: annotation.Annotations{
				"skipEquability": annotation.Bool(true),
			},
		},
		{
			name:  "multiple annotations on the same line",
			lines: []string{`// sourcery: skipEquability, jsonKey = "json_key"`},
			expected: annotation.Annotations{
				"skipEquability": annotation.Bool(true),
				"jsonKey":        annotation.String("json_key"),
			},
		},
		{
			name: "multi-line annotations with numbers",
			lines: []string{
				`// sourcery: skipEquability, jsonKey = "json_key"`,
				"// sourcery: thirdProperty = -3",
			},
			expected: annotation.Annotations{
				"skipEquability": annotation.Bool(true),
				"jsonKey":        annotation.String("json_key"),
				"thirdProperty":  annotation.Number(-3),
			},
		},
		{
			name: "interleaved with documentation",
			lines: []string{
				"// sourcery: isSet",
				"/// isSet is used for something useful",
				"// sourcery: numberOfIterations = 2",
			},
			expected: annotation.Annotations{
				"isSet":              annotation.Bool(true),
				"numberOfIterations": annotation.Number(2),
			},
		},
		{
			name: "blank line stops scanning",
			lines: []string{
				"// sourcery: isSet",
				"",
				"// sourcery: numberOfIterations = 2",
			},
			expected: annotation.Annotations{
				"numberOfIterations": annotation.Number(2),
			},
		},
		{
			name: "code line stops scanning",
			lines: []string{
				"// sourcery: isSet",
				"let other = 1",
				"// sourcery: numberOfIterations = 2",
			},
			expected: annotation.Annotations{
				"numberOfIterations": annotation.Number(2),
			},
		},
		{
			name: "block comments are transparent",
			lines: []string{
				"// sourcery: first",
				"/* plain",
				" * comment",
				" */",
				"    // sourcery: second",
			},
			expected: annotation.Annotations{
				"first":  annotation.Bool(true),
				"second": annotation.Bool(true),
			},
		},
		{
			name: "closest line wins on duplicated keys",
			lines: []string{
				"// sourcery: key = 1",
				"// sourcery: key = 2",
			},
			expected: annotation.Annotations{
				"key": annotation.Number(2),
			},
		},
		{
			name:  "last pair wins within a line",
			lines: []string{"// sourcery: key = 1, key = second"},
			expected: annotation.Annotations{
				"key": annotation.String("second"),
			},
		},
		{
			name:  "comma inside quotes",
			lines: []string{`// sourcery: name = "a, b", flag`},
			expected: annotation.Annotations{
				"name": annotation.String("a, b"),
				"flag": annotation.Bool(true),
			},
		},
		{
			name:  "raw token and tight spacing",
			lines: []string{"//sourcery: mode=fast,limit=10"},
			expected: annotation.Annotations{
				"mode":  annotation.String("fast"),
				"limit": annotation.Number(10),
			},
		},
		{
			name:     "doc comment marker is not an annotation",
			lines:    []string{"/// sourcery: ignored"},
			expected: annotation.Annotations{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := annotation.Parse(tt.lines)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestDocumentation(t *testing.T) {
	lines := []string{
		"/// dropped, above the blank line",
		"",
		"/// Number of iterations",
		"// sourcery: numberOfIterations = 2",
		"/// used by the runner",
	}
	assert.Equal(t, []string{"Number of iterations", "used by the runner"}, annotation.Documentation(lines))
}

func TestValue(t *testing.T) {
	flag := annotation.Bool(true)
	value, ok := flag.Bool()
	assert.True(t, ok)
	assert.True(t, value)
	_, ok = flag.Number()
	assert.False(t, ok)

	number := annotation.Number(-3)
	assert.Equal(t, annotation.KindNumber, number.Kind())
	assert.Equal(t, int64(-3), number.Interface())
	assert.Equal(t, "-3", number.String())

	text := annotation.String("json_key")
	data, err := text.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `"json_key"`, string(data))
	assert.Equal(t, "string", text.Kind().String())
}
