package graph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/sourcery/inspector/graph"
)

func TestTypeName(t *testing.T) {
	testCases := []struct {
		name         string
		optional     bool
		unwrapped    string
		isArray      bool
		isDictionary bool
		isTuple      bool
	}{
		{name: "Int", unwrapped: "Int"},
		{name: "Int?", optional: true, unwrapped: "Int"},
		{name: "String!", optional: true, unwrapped: "String"},
		{name: "Optional<Int>", optional: true, unwrapped: "Int"},
		{name: "[Int]", unwrapped: "[Int]", isArray: true},
		{name: "[Int?]?", optional: true, unwrapped: "[Int?]", isArray: true},
		{name: "[String: [Int]]", unwrapped: "[String: [Int]]", isDictionary: true},
		{name: "Dictionary<String, Int>", unwrapped: "Dictionary<String, Int>", isDictionary: true},
		{name: "(Int, String)", unwrapped: "(Int, String)", isTuple: true},
		{name: "(a: Int, b: [String: Int])", unwrapped: "(a: Int, b: [String: Int])", isTuple: true},
		{name: "[Int]-[Int]", unwrapped: "[Int]-[Int]"},
		{name: "[String: (Int) -> Void]", unwrapped: "[String: (Int) -> Void]", isDictionary: true},
		{name: "[(Int) -> Void]", unwrapped: "[(Int) -> Void]", isArray: true},
		{name: "((Int) -> Void, Int)", unwrapped: "((Int) -> Void, Int)", isTuple: true},
		{name: "(Int) -> Void", unwrapped: "(Int) -> Void"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			typeName := graph.NewTypeName(testCase.name)
			assert.Equal(t, testCase.optional, typeName.IsOptional())
			assert.Equal(t, testCase.unwrapped, typeName.UnwrappedTypeName())
			assert.Equal(t, testCase.isArray, typeName.IsArray())
			assert.Equal(t, testCase.isDictionary, typeName.IsDictionary())
			assert.Equal(t, testCase.isTuple, typeName.IsTuple())
			assert.False(t, typeName.IsUnresolved())
		})
	}

	unresolved := graph.NewTypeName("<<unknown type, please add type attribution to variable 'var x = foo()'>>")
	assert.True(t, unresolved.IsUnresolved())
}

func TestAccessLevel_String(t *testing.T) {
	access := graph.AccessLevel{Read: graph.AccessPublic, Write: graph.AccessPrivate}
	assert.Equal(t, "public/private", access.String())
}

func TestVariable(t *testing.T) {
	constant := &graph.Variable{
		Name:        "name",
		TypeName:    graph.NewTypeName("String?"),
		AccessLevel: graph.AccessLevel{Read: graph.AccessInternal, Write: graph.AccessNone},
	}
	assert.False(t, constant.IsMutable())
	assert.True(t, constant.IsOptional())

	moved := *constant
	moved.Location = &graph.Location{Line: 10}
	moved.Hash, _ = graph.Fingerprint("let name: String?")
	assert.True(t, constant.Equal(&moved))

	moved.AccessLevel.Write = graph.AccessInternal
	assert.True(t, moved.IsMutable())
	assert.False(t, constant.Equal(&moved))
	assert.False(t, constant.Equal(nil))
}

func TestFile_LookupVariable(t *testing.T) {
	aFile := &graph.File{
		Variables: []*graph.Variable{{Name: "a"}, {Name: "b"}},
	}
	require.NotNil(t, aFile.LookupVariable("b"))
	assert.Equal(t, "b", aFile.LookupVariable("b").Name)
	assert.Nil(t, aFile.LookupVariable("c"))

	aFile.AddVariable(&graph.Variable{Name: "c"})
	assert.NotNil(t, aFile.LookupVariable("c"))
}

func TestProject_Init(t *testing.T) {
	pkg := &graph.Package{Name: "Shop", Path: "/work/Shop/Sources/Shop"}
	pkg.AddFile(&graph.File{Path: "/work/Shop/Sources/Shop/Cart.swift", Variables: []*graph.Variable{{Name: "items"}}})
	project := &graph.Project{Name: "Shop", RootPath: "/work/Shop"}
	project.AddPackage(pkg)
	project.Init()

	actual := project.GetPackage("Sources/Shop")
	require.NotNil(t, actual)
	cart := actual.LookupFile("Sources/Shop/Cart.swift")
	require.NotNil(t, cart)
	assert.Equal(t, "Cart.swift", cart.Name)
	assert.Len(t, project.Variables(), 1)
}

func TestHash(t *testing.T) {
	first, err := graph.Hash([]byte("var a = 1"))
	require.NoError(t, err)
	same, _ := graph.Hash([]byte("var a = 1"))
	other, _ := graph.Hash([]byte("var a = 2"))
	assert.Equal(t, first, same)
	assert.NotEqual(t, first, other)

	indented, err := graph.Fingerprint("  var a =\n\t1")
	require.NoError(t, err)
	assert.Equal(t, first, indented)
}

func TestLoadConfig(t *testing.T) {
	config, err := graph.LoadConfig(context.Background(), "testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, &graph.Config{SkipTests: false, Recursive: true, IncludeLocal: true}, config)

	_, err = graph.LoadConfig(context.Background(), "testdata/missing.yaml")
	assert.Error(t, err)
}
