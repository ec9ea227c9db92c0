package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DetectProject(t *testing.T) {
	testCases := []struct {
		description string
		files       map[string]string
		dirs        []string
		target      string
		expectType  string
		expectName  string
		expectRel   string
	}{
		{
			description: "swift package manifest",
			files: map[string]string{
				"Package.swift":              "// swift-tools-version:5.9\nlet package = Package(\n    name: \"Model\",\n    targets: []\n)\n",
				"Sources/Model/Person.swift": "struct Person {}\n",
			},
			target:     "Sources/Model/Person.swift",
			expectType: "spm",
			expectName: "Model",
			expectRel:  "Sources/Model/Person.swift",
		},
		{
			description: "xcode project",
			dirs:        []string{"App.xcodeproj"},
			files: map[string]string{
				"App/View.swift": "struct View {}\n",
			},
			target:     "App/View.swift",
			expectType: "xcode",
			expectName: "App",
			expectRel:  "App/View.swift",
		},
		{
			description: "podfile target",
			files: map[string]string{
				"Podfile":         "platform :ios, '15.0'\ntarget 'Shop' do\nend\n",
				"Shop/Cart.swift": "struct Cart {}\n",
			},
			target:     "Shop",
			expectType: "cocoapods",
			expectName: "Shop",
			expectRel:  "Shop",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			root := t.TempDir()
			for _, dir := range testCase.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
			}
			for name, content := range testCase.files {
				location := filepath.Join(root, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
				require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
			}

			project, err := New().DetectProject(filepath.Join(root, testCase.target))
			require.NoError(t, err)
			assert.Equal(t, testCase.expectType, project.Type)
			assert.Equal(t, testCase.expectName, project.Name)
			assert.Equal(t, testCase.expectRel, project.RelativePath)
			resolvedRoot, _ := filepath.Abs(root)
			assert.Equal(t, resolvedRoot, project.RootPath)
		})
	}
}

func TestDetector_DetectRepository(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "config"),
		[]byte("[core]\n\tbare = false\n[remote \"origin\"]\n\turl = https://github.com/acme/Inventory.git\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Item.swift"), []byte("struct Item {}\n"), 0o644))

	repo, err := New().DetectRepository(filepath.Join(root, "Item.swift"))
	require.NoError(t, err)
	assert.Equal(t, "git", repo.Kind)
	assert.Equal(t, "https://github.com/acme/Inventory.git", repo.Origin)
	require.NotNil(t, repo.Info)
	assert.Equal(t, "git", repo.Info.Type)
	assert.Equal(t, "Inventory", repo.Info.Name)
}

func TestDetermineProjectType(t *testing.T) {
	assert.Equal(t, "spm", determineProjectType("Package.swift"))
	assert.Equal(t, "xcode", determineProjectType("Demo.xcworkspace"))
	assert.Equal(t, "carthage", determineProjectType("Cartfile"))
	assert.Equal(t, "unknown", determineProjectType("Makefile"))
}
