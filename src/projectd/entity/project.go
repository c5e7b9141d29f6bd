// Package entity contains the domain types shared by the projectd master and worker processes.
package entity

import (
	"path/filepath"
	"strings"
)

// ImplicitProjectName is used for the project that exists when no manifest can be found.
const ImplicitProjectName = "__auto__"

// ProjectConfigDescriptor identifies a candidate project.
// An implicit descriptor never carries a manifest path.
type ProjectConfigDescriptor struct {
	Name             string `json:"name" yaml:"name"`
	IsImplicit       bool   `json:"isImplicit" yaml:"isImplicit"`
	ManifestFilePath string `json:"manifestFilePath,omitempty" yaml:"manifestFilePath,omitempty"`
}

// ImplicitProject returns the descriptor of the fallback project.
func ImplicitProject(name string) ProjectConfigDescriptor {
	if name == "" {
		name = ImplicitProjectName
	}
	return ProjectConfigDescriptor{
		Name:       name,
		IsImplicit: true,
	}
}

// ManifestProject returns the descriptor for a manifest found at manifestPath.
// Manifests inside a dependency directory are named by their path relative to root,
// every other manifest by its parent directory and file name.
func ManifestProject(root, manifestPath string) ProjectConfigDescriptor {
	name := filepath.Join(filepath.Base(filepath.Dir(manifestPath)), filepath.Base(manifestPath))
	if InDependencyDir(manifestPath) {
		if rel, err := filepath.Rel(root, manifestPath); err == nil {
			name = rel
		}
	}
	return ProjectConfigDescriptor{
		Name:             name,
		ManifestFilePath: manifestPath,
	}
}

// Valid reports whether the descriptor honours the implicit/manifest invariant.
func (d ProjectConfigDescriptor) Valid() bool {
	if d.Name == "" {
		return false
	}
	if d.IsImplicit {
		return d.ManifestFilePath == ""
	}
	return d.ManifestFilePath != ""
}

// DependencyDirs are directory names holding third-party sources.
var DependencyDirs = []string{"node_modules", "vendor"}

// InDependencyDir reports whether path has a dependency directory as one of its elements.
func InDependencyDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		for _, dir := range DependencyDirs {
			if part == dir {
				return true
			}
		}
	}
	return false
}
