package inspector

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/viant/sourcery/inspector/graph"
	"github.com/viant/sourcery/inspector/swift"
)

// Inspector provides an interface for inspecting source code
type Inspector interface {
	// InspectSource parses source code from a byte slice and extracts variables
	InspectSource(src []byte) (*graph.File, error)

	// InspectFile parses a source file and extracts variables
	InspectFile(filename string) (*graph.File, error)

	// InspectPackage inspects a directory and extracts variables of all its source files
	InspectPackage(packagePath string) (*graph.Package, error)
}

// Factory creates appropriate inspectors based on language
type Factory struct {
	config *graph.Config
	logger *slog.Logger
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *graph.Config, logger *slog.Logger) *Factory {
	if config == nil {
		config = graph.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		config: config,
		logger: logger,
	}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".swift":
		return swift.NewInspector(f.config, f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(filename string) (*graph.File, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}

	return inspector.InspectFile(filename)
}

// InspectPackage is a convenience method that inspects a Swift package directory
func (f *Factory) InspectPackage(packagePath string) (*graph.Package, error) {
	return swift.NewInspector(f.config, f.logger).InspectPackage(packagePath)
}

// InspectProject detects the Swift project enclosing projectPath and inspects all its source directories
func (f *Factory) InspectProject(projectPath string) (*graph.Project, error) {
	return swift.NewInspector(f.config, f.logger).InspectProject(projectPath)
}
