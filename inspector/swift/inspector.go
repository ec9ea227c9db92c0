package swift

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/sourcery/inspector/graph"
	"github.com/viant/sourcery/inspector/repository"
	"github.com/viant/sourcery/inspector/syntax"
	"github.com/viant/sourcery/inspector/variable"
)

const (
	defaultFilename = "source.swift"
	fileExtension   = ".swift"
	manifestFile    = "Package.swift"
)

// nested declarations inside these nodes are local and skipped unless configured
var localScopes = map[string]bool{
	"function_declaration":  true,
	"init_declaration":      true,
	"deinit_declaration":    true,
	"subscript_declaration": true,
	"computed_property":     true,
	"willset_didset_block":  true,
	"lambda_literal":        true,
}

// Inspector provides functionality to inspect Swift code and extract variable information
type Inspector struct {
	config  *graph.Config
	builder *variable.Builder
	logger  *slog.Logger
	fs      afs.Service
}

// NewInspector creates a new Swift Inspector with the provided configuration
func NewInspector(config *graph.Config, logger *slog.Logger) *Inspector {
	if config == nil {
		config = graph.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{
		config:  config,
		builder: variable.New(logger),
		logger:  logger,
		fs:      afs.New(),
	}
}

// Declarations parses Swift source and returns the variable declarations it contains
func (i *Inspector) Declarations(src []byte) ([]*syntax.Declaration, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(swift.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		i.logger.Warn("source contains syntax errors, declarations may be incomplete")
	}
	var result []*syntax.Declaration
	i.collect(rootNode, src, splitLines(src), &result)
	return result, nil
}

// collect walks the tree and appends property declarations in source order
func (i *Inspector) collect(node *sitter.Node, src []byte, lines []string, result *[]*syntax.Declaration) {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		switch child.Type() {
		case "property_declaration", "protocol_property_declaration":
			*result = append(*result, parsePropertyDeclaration(child, src, lines)...)
			if i.config.IncludeLocal {
				i.collect(child, src, lines, result)
			}
			continue
		}
		if localScopes[child.Type()] && !i.config.IncludeLocal {
			continue
		}
		i.collect(child, src, lines, result)
	}
}

// InspectSource parses Swift source code from a byte slice and extracts variables
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(src, defaultFilename)
}

// InspectFile reads a Swift source file and extracts variables
func (i *Inspector) InspectFile(filename string) (*graph.File, error) {
	src, err := i.fs.DownloadWithURL(context.Background(), filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(src, filename)
}

func (i *Inspector) inspect(src []byte, filename string) (*graph.File, error) {
	declarations, err := i.Declarations(src)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", filename, err)
	}
	_, name := path.Split(url.Path(filename))
	aFile := &graph.File{Name: name, Path: filename}
	for _, decl := range declarations {
		aVariable, err := i.builder.Build(decl)
		if err != nil {
			return nil, fmt.Errorf("failed to build variable at %s:%d: %w", filename, decl.Line, err)
		}
		if aVariable == nil {
			aFile.Skipped = append(aFile.Skipped, decl.Name)
			continue
		}
		aFile.AddVariable(aVariable)
	}
	i.logger.Debug("inspected file",
		slog.String("file", filename),
		slog.Int("variables", len(aFile.Variables)),
		slog.Int("skipped", len(aFile.Skipped)))
	return aFile, nil
}

// InspectPackage inspects a directory and extracts variables from all Swift files
func (i *Inspector) InspectPackage(packagePath string) (*graph.Package, error) {
	files, err := i.sourceFiles(context.Background(), packagePath, i.config.Recursive)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Swift files found in package: %s", packagePath)
	}
	return i.inspectFiles(packagePath, files)
}

// InspectProject detects the project enclosing projectPath and inspects each of its Swift source directories
func (i *Inspector) InspectProject(projectPath string) (*graph.Project, error) {
	repo, err := repository.New().DetectRepository(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project %s: %w", projectPath, err)
	}
	info := repo.Info
	project := &graph.Project{
		Name:          info.Name,
		Type:          info.Type,
		RootPath:      info.RootPath,
		RepositoryURL: repo.Origin,
	}
	if project.Name == "" {
		project.Name = filepath.Base(info.RootPath)
	}

	files, err := i.sourceFiles(context.Background(), info.RootPath, true)
	if err != nil {
		return nil, err
	}
	var dirs []string
	byDir := map[string][]string{}
	for _, file := range files {
		dir := filepath.Dir(url.Path(file))
		if _, ok := byDir[dir]; !ok {
			dirs = append(dirs, dir)
		}
		byDir[dir] = append(byDir[dir], file)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		pkg, err := i.inspectFiles(dir, byDir[dir])
		if err != nil {
			return nil, err
		}
		project.AddPackage(pkg)
	}
	project.Init()
	i.logger.Debug("inspected project",
		slog.String("name", project.Name),
		slog.String("type", project.Type),
		slog.Int("packages", len(project.Packages)))
	return project, nil
}

// sourceFiles lists Swift files under location in sorted order
func (i *Inspector) sourceFiles(ctx context.Context, location string, recursive bool) ([]string, error) {
	var files []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() || (!recursive && parent != "") {
			return true, nil
		}
		name := info.Name()
		if !strings.HasSuffix(name, fileExtension) || name == manifestFile {
			return true, nil
		}
		if i.config.SkipTests && isTestFile(name) {
			return true, nil
		}
		files = append(files, url.Join(baseURL, parent, name))
		return true, nil
	}
	if err := i.fs.Walk(ctx, location, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", location, err)
	}
	sort.Strings(files)
	return files, nil
}

func (i *Inspector) inspectFiles(packagePath string, files []string) (*graph.Package, error) {
	_, pkgName := path.Split(strings.TrimSuffix(url.Path(packagePath), "/"))
	pkg := &graph.Package{Name: pkgName, Path: packagePath}
	for _, file := range files {
		aFile, err := i.InspectFile(file)
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", file, err)
		}
		pkg.AddFile(aFile)
	}
	return pkg, nil
}

func isTestFile(name string) bool {
	base := strings.TrimSuffix(name, fileExtension)
	return strings.HasSuffix(base, "Tests") || strings.HasSuffix(base, "Test") || strings.HasSuffix(base, "Spec")
}
