package repository

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
)

var (
	packageNameExpr = regexp.MustCompile(`(?s)Package\s*\(\s*name\s*:\s*"([^"]+)"`)
	podNameExpr     = regexp.MustCompile(`target\s+['"]([^'"]+)['"]`)
)

// Detector identifies Swift project root folders and provides project-related information
type Detector struct {
	// project root marker files/directories in priority order, glob patterns allowed
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			"Package.swift", // Swift Package Manager
			"*.xcodeproj",   // Xcode projects
			"*.xcworkspace", // Xcode workspaces
			"Podfile",       // CocoaPods
			"Cartfile",      // Carthage
			".git",          // Generic VCS marker
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(filePath string, baseURL ...string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findProjectRoot(startDir)
	info := &Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath == "" && len(baseURL) > 0 && baseURL[0] != "" {
		info.RootPath = baseURL[0]
	} else if rootPath != "" {
		info.RootPath = rootPath
		info.Type = determineProjectType(marker)
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	if rootPath != "" {
		info.Name = d.extractProjectName(rootPath, marker)
	}
	return info, nil
}

// DetectRepository identifies the repository containing the given file path
func (d *Detector) DetectRepository(filePath string) (*Repository, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	info, err := d.DetectProject(filePath)
	if err != nil {
		return nil, err
	}
	if gitRoot := d.findGitRoot(startDir); gitRoot != "" {
		return &Repository{
			Kind:   "git",
			Root:   gitRoot,
			Origin: d.extractGitOrigin(gitRoot),
			Info:   info,
		}, nil
	}
	return &Repository{
		Kind: info.Type,
		Root: info.RootPath,
		Info: info,
	}, nil
}

// findProjectRoot searches up from startDir and returns the root with the matched marker path
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if matched := d.matchMarker(dir, marker); matched != "" {
				return dir, matched
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) matchMarker(dir, marker string) string {
	if strings.Contains(marker, "*") {
		matches, _ := filepath.Glob(filepath.Join(dir, marker))
		if len(matches) == 0 {
			return ""
		}
		return filepath.Base(matches[0])
	}
	if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
		return ""
	}
	return marker
}

// findGitRoot finds the root of the git repository containing the given directory
func (d *Detector) findGitRoot(startDir string) string {
	dir := startDir
	homeDir := os.Getenv("HOME")
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || homeDir == parent {
			return ""
		}
		dir = parent
	}
}

// extractGitOrigin extracts the origin URL from git config
func (d *Detector) extractGitOrigin(gitRoot string) string {
	file, err := os.Open(filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "[remote \"origin\"]") {
			foundRemote = true
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}

// extractProjectName attempts to extract a project name from the matched marker
func (d *Detector) extractProjectName(rootPath string, marker string) string {
	switch determineProjectType(marker) {
	case "spm":
		return d.extractManifestName(filepath.Join(rootPath, marker), packageNameExpr, rootPath)
	case "cocoapods":
		return d.extractManifestName(filepath.Join(rootPath, marker), podNameExpr, rootPath)
	case "xcode":
		return strings.TrimSuffix(marker, filepath.Ext(marker))
	case "git":
		if origin := d.extractGitOrigin(rootPath); origin != "" {
			parts := strings.Split(strings.TrimSuffix(origin, ".git"), "/")
			return parts[len(parts)-1]
		}
	}
	return filepath.Base(rootPath)
}

func (d *Detector) extractManifestName(manifest string, expr *regexp.Regexp, rootPath string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), manifest)
	if err != nil {
		return filepath.Base(rootPath)
	}
	matches := expr.FindSubmatch(content)
	if len(matches) < 2 {
		return filepath.Base(rootPath)
	}
	return string(matches[1])
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch {
	case marker == "Package.swift":
		return "spm"
	case strings.HasSuffix(marker, ".xcodeproj"), strings.HasSuffix(marker, ".xcworkspace"):
		return "xcode"
	case marker == "Podfile":
		return "cocoapods"
	case marker == "Cartfile":
		return "carthage"
	case marker == ".git":
		return "git"
	default:
		return "unknown"
	}
}
