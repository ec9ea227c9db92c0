package graph

import (
	"path/filepath"

	"github.com/viant/afs/url"
)

// Project represents a Swift project with multiple source directories
type Project struct {
	Name          string         `json:"name" yaml:"name"`
	Type          string         `json:"type" yaml:"type"`
	RootPath      string         `json:"rootPath" yaml:"rootPath"`
	RepositoryURL string         `json:"repositoryURL,omitempty" yaml:"repositoryURL,omitempty"`
	Packages      []*Package     `json:"packages" yaml:"packages"`
	packageMap    map[string]int //position
}

// AddPackage adds a package to the project
func (p *Project) AddPackage(pkg *Package) {
	if p.packageMap == nil {
		p.packageMap = make(map[string]int)
	}
	p.Packages = append(p.Packages, pkg)
	p.packageMap[pkg.Path] = len(p.Packages) - 1
}

// GetPackage retrieves a package by its path
func (p *Project) GetPackage(path string) *Package {
	if idx, ok := p.packageMap[path]; ok && idx < len(p.Packages) {
		return p.Packages[idx]
	}
	return nil
}

// Variables returns variables of all project packages in package order
func (p *Project) Variables() []*Variable {
	var result []*Variable
	for _, pkg := range p.Packages {
		result = append(result, pkg.Variables()...)
	}
	return result
}

// Init makes package and file paths relative to the project root
func (p *Project) Init() {
	if p.RootPath == "" {
		return
	}
	p.packageMap = make(map[string]int)
	for i, pkg := range p.Packages {
		if relPath, err := filepath.Rel(p.RootPath, url.Path(pkg.Path)); err == nil {
			pkg.Path = filepath.ToSlash(relPath)
		}
		p.packageMap[pkg.Path] = i
		pkg.fileMap = make(map[string]int)
		for j, file := range pkg.FileSet {
			if file.Path != "" {
				location := url.Path(file.Path)
				if relPath, err := filepath.Rel(p.RootPath, location); err == nil {
					file.Name = filepath.Base(location)
					file.Path = filepath.ToSlash(relPath)
				}
			}
			pkg.fileMap[file.Path] = j
		}
	}
}
