package repository

type Repository struct {
	Kind   string
	Root   string
	Origin string
	Info   *Project
}

// Project represents information about a detected Swift project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (spm, xcode, cocoapods, carthage, git)
	Name         string // Name of the project (extracted from the manifest)
	RelativePath string // Path from project root to the specified file
}
