package graph

// File represents a source code file with its variables
type File struct {
	Name      string      `json:"name" yaml:"name"`
	Path      string      `json:"path" yaml:"path"`
	Variables []*Variable `json:"variables" yaml:"variables"`
	Skipped   []string    `json:"skipped,omitempty" yaml:"skipped,omitempty"` // names of filtered declarations

	variableMap map[string]int // Map of variables for quick lookup
}

// Package represents a directory of source files
type Package struct {
	Name    string  `json:"name" yaml:"name"`
	Path    string  `json:"path" yaml:"path"`
	FileSet []*File `json:"files" yaml:"files"`

	fileMap map[string]int // Map of files for quick lookup
}

// AddVariable adds a variable to the file
func (f *File) AddVariable(variable *Variable) {
	if f.variableMap == nil {
		f.variableMap = make(map[string]int)
	}
	f.Variables = append(f.Variables, variable)
	f.variableMap[variable.Name] = len(f.Variables) - 1
}

// LookupVariable retrieves a variable by name from the file
func (f *File) LookupVariable(name string) *Variable {
	if len(f.variableMap) == 0 {
		f.IndexVariables()
	}
	if idx, ok := f.variableMap[name]; ok && idx < len(f.Variables) {
		return f.Variables[idx]
	}
	return nil
}

// IndexVariables rebuilds the variable lookup index
func (f *File) IndexVariables() {
	f.variableMap = make(map[string]int)
	for i, variable := range f.Variables {
		if variable == nil {
			continue
		}
		f.variableMap[variable.Name] = i
	}
}

// AddFile adds a file to the package
func (p *Package) AddFile(file *File) {
	if p.fileMap == nil {
		p.fileMap = make(map[string]int)
	}
	p.FileSet = append(p.FileSet, file)
	p.fileMap[file.Path] = len(p.FileSet) - 1
}

// LookupFile retrieves a file by path
func (p *Package) LookupFile(path string) *File {
	if idx, ok := p.fileMap[path]; ok && idx < len(p.FileSet) {
		return p.FileSet[idx]
	}
	return nil
}

// Variables returns variables of all package files in file order
func (p *Package) Variables() []*Variable {
	var result []*Variable
	for _, file := range p.FileSet {
		result = append(result, file.Variables...)
	}
	return result
}
