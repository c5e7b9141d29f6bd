// Package manifest loads project manifests and discovers the projects available in a workspace.
package manifest

import (
	"bytes"
	"encoding/json"
	stderr "errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/uber/projectd/src/projectd/entity"
	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
	"github.com/uber/projectd/src/projectd/internal/fs"
	"github.com/uber/projectd/src/projectd/internal/textmap"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

const (
	_manifestFileNameKey    = "activeProject.manifestFileName"
	_implicitProjectNameKey = "activeProject.implicitProjectName"
	_sourceExtensionsKey    = "activeProject.sourceExtensions"
	_workspaceRootKey       = "workspace.root"

	_defaultManifestFileName = "projectd.json"
	_defaultInclude          = "**/*"
	_dependencyWeight        = 100
)

// Module provides a Loader configured from the activeProject and workspace sections.
var Module = fx.Provide(New)

// Params are inbound parameters to initialize a new Loader.
type Params struct {
	fx.In

	FS     fs.FS
	Config config.Provider
}

// Options configures manifest loading and discovery.
type Options struct {
	// ManifestFileName is the file name scanned for by Discover.
	ManifestFileName string
	// ImplicitProjectName names the fallback project.
	ImplicitProjectName string
	// SourceExtensions limits glob expansion and implicit projects to these extensions. Empty means every file.
	SourceExtensions []string
	// Root is the workspace root used for implicit projects and descriptor names.
	Root string
}

// CompilerOptions are the analysis options of a project.
type CompilerOptions struct {
	// MaxLineLength is the longest line allowed before an error is reported. Zero disables the check.
	MaxLineLength int `json:"maxLineLength"`
	// Raw holds every option as written.
	Raw map[string]any `json:"-"`
}

// Project is a loaded manifest, or the implicit project of a directory.
type Project struct {
	// ManifestFilePath is empty for the implicit project.
	ManifestFilePath string
	Dir              string
	FilePaths        []string
	CompilerOptions  CompilerOptions
	BuildOnSave      bool
	CompileOnSave    bool
}

// IsImplicit reports whether the project was built without a manifest.
func (p *Project) IsImplicit() bool {
	return p.ManifestFilePath == ""
}

// Loader reads manifests through an FS.
type Loader struct {
	fs   fs.FS
	opts Options
}

// New creates a Loader from configuration.
func New(p Params) (*Loader, error) {
	opts := Options{}
	if err := p.Config.Get(_manifestFileNameKey).Populate(&opts.ManifestFileName); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _manifestFileNameKey, err)
	}
	if err := p.Config.Get(_implicitProjectNameKey).Populate(&opts.ImplicitProjectName); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _implicitProjectNameKey, err)
	}
	if err := p.Config.Get(_sourceExtensionsKey).Populate(&opts.SourceExtensions); err != nil {
		return nil, fmt.Errorf("reading %s: %w", _sourceExtensionsKey, err)
	}
	root := "."
	if err := p.Config.Get(_workspaceRootKey).Populate(&root); err != nil || root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	opts.Root = abs
	return NewLoader(p.FS, opts), nil
}

// NewLoader creates a Loader with explicit options.
func NewLoader(fsys fs.FS, opts Options) *Loader {
	if opts.ManifestFileName == "" {
		opts.ManifestFileName = _defaultManifestFileName
	}
	if opts.ImplicitProjectName == "" {
		opts.ImplicitProjectName = entity.ImplicitProjectName
	}
	return &Loader{fs: fsys, opts: opts}
}

// Options returns the effective options.
func (l *Loader) Options() Options {
	return l.opts
}

type rawManifest struct {
	files           []string
	include         []string
	exclude         []string
	buildOnSave     bool
	compileOnSave   bool
	hasFiles        bool
	hasInclude      bool
	compilerOptions map[string]any
}

// Load parses the manifest at path and expands its file list.
// Every failure is a *errors.ManifestError carrying one diagnostic bound to path.
func (l *Loader) Load(path string) (*Project, error) {
	exists, err := l.fs.FileExists(path)
	if err != nil || !exists {
		return nil, &projectderrors.ManifestError{
			Kind:     projectderrors.ManifestNotFound,
			FilePath: path,
			Details:  entity.BlandError(path, "No project file found"),
			Err:      err,
		}
	}

	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, &projectderrors.ManifestError{
			Kind:     projectderrors.ManifestNotFound,
			FilePath: path,
			Details:  entity.BlandError(path, fmt.Sprintf("Failed to read project file: %v", err)),
			Err:      err,
		}
	}

	return l.LoadContents(path, content)
}

// LoadContents parses content as the manifest stored at path. It serves manifests with unsaved edits.
func (l *Loader) LoadContents(path string, content []byte) (*Project, error) {
	raw, err := parse(path, content)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	project := &Project{
		ManifestFilePath: path,
		Dir:              dir,
		BuildOnSave:      raw.buildOnSave,
		CompileOnSave:    raw.compileOnSave,
		CompilerOptions:  CompilerOptions{Raw: raw.compilerOptions},
	}
	if v, ok := raw.compilerOptions["maxLineLength"]; ok {
		n, _ := v.(float64)
		project.CompilerOptions.MaxLineLength = int(n)
	}

	filePaths, err := l.expand(path, content, dir, raw)
	if err != nil {
		return nil, err
	}
	project.FilePaths = filePaths
	return project, nil
}

func parse(path string, content []byte) (*rawManifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(content, &fields); err != nil {
		offset := 0
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case stderr.As(err, &syntaxErr):
			offset = int(syntaxErr.Offset)
		case stderr.As(err, &typeErr):
			offset = int(typeErr.Offset)
		}
		return nil, &projectderrors.ManifestError{
			Kind:     projectderrors.ManifestParseFailed,
			FilePath: path,
			Details:  errorAt(path, content, offset, fmt.Sprintf("Failed to parse project file: %v", err)),
			Err:      err,
		}
	}

	raw := &rawManifest{}
	invalid := func(key string, err error) error {
		return &projectderrors.ManifestError{
			Kind:     projectderrors.ManifestInvalidOptions,
			FilePath: path,
			Details:  errorAt(path, content, keyOffset(content, key), fmt.Sprintf("Invalid %q in project file: %v", key, err)),
			Err:      err,
		}
	}

	stringLists := []struct {
		key    string
		target *[]string
		seen   *bool
	}{
		{key: "files", target: &raw.files, seen: &raw.hasFiles},
		{key: "include", target: &raw.include, seen: &raw.hasInclude},
		{key: "exclude", target: &raw.exclude},
	}
	for _, list := range stringLists {
		value, ok := fields[list.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, list.target); err != nil {
			return nil, invalid(list.key, err)
		}
		if list.seen != nil {
			*list.seen = true
		}
	}

	for key, target := range map[string]*bool{"buildOnSave": &raw.buildOnSave, "compileOnSave": &raw.compileOnSave} {
		if value, ok := fields[key]; ok {
			if err := json.Unmarshal(value, target); err != nil {
				return nil, invalid(key, err)
			}
		}
	}

	if value, ok := fields["compilerOptions"]; ok {
		if err := json.Unmarshal(value, &raw.compilerOptions); err != nil || raw.compilerOptions == nil {
			if err == nil {
				err = projectderrors.New("compilerOptions must be an object")
			}
			return nil, invalid("compilerOptions", err)
		}
		if v, ok := raw.compilerOptions["maxLineLength"]; ok {
			n, isNumber := v.(float64)
			if !isNumber || n < 0 || n != float64(int(n)) {
				return nil, invalid("maxLineLength", projectderrors.New("maxLineLength must be a non-negative integer"))
			}
		}
	}
	return raw, nil
}

func (l *Loader) expand(path string, content []byte, dir string, raw *rawManifest) ([]string, error) {
	seen := make(map[string]struct{})
	var result []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}

	for _, f := range raw.files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(dir, f)
		}
		add(filepath.Clean(f))
	}

	include := raw.include
	if !raw.hasFiles && !raw.hasInclude {
		include = []string{_defaultInclude}
	}

	globFailed := func(err error) error {
		return &projectderrors.ManifestError{
			Kind:     projectderrors.ManifestGlobExpandFailed,
			FilePath: path,
			Details:  errorAt(path, content, keyOffset(content, "include"), fmt.Sprintf("Failed to expand globs in project file: %v", err)),
			Err:      err,
		}
	}

	for _, pattern := range raw.exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, globFailed(fmt.Errorf("exclude %q: %w", pattern, doublestar.ErrBadPattern))
		}
	}

	var errs error
	var matched []string
	for _, pattern := range include {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			errs = multierr.Append(errs, fmt.Errorf("include %q: %w", pattern, doublestar.ErrBadPattern))
			continue
		}
		matches, err := l.fs.Glob(dir, pattern)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("include %q: %w", pattern, err))
			continue
		}
		for _, m := range matches {
			rel, err := filepath.Rel(dir, m)
			if err != nil || entity.InDependencyDir(rel) || !l.hasSourceExtension(m) {
				continue
			}
			if excluded(raw.exclude, rel) {
				continue
			}
			matched = append(matched, m)
		}
	}
	if errs != nil {
		return nil, globFailed(errs)
	}

	sort.Strings(matched)
	for _, m := range matched {
		add(m)
	}
	return result, nil
}

func excluded(patterns []string, rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		// A directory pattern excludes everything below it.
		if ok, _ := doublestar.Match(pattern+"/**", rel); ok {
			return true
		}
	}
	return false
}

func (l *Loader) hasSourceExtension(path string) bool {
	if len(l.opts.SourceExtensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range l.opts.SourceExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// InMemory builds the implicit project holding every source file under dir.
// Dependency directories and hidden directories are skipped.
func (l *Loader) InMemory(dir string) (*Project, error) {
	if dir == "" {
		dir = l.opts.Root
	}
	var filePaths []string
	err := l.fs.WalkFiles(dir, skipDir, func(path string) error {
		if l.hasSourceExtension(path) {
			filePaths = append(filePaths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing implicit project files in %q: %w", dir, err)
	}
	sort.Strings(filePaths)
	return &Project{
		Dir:       dir,
		FilePaths: filePaths,
	}, nil
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, d := range entity.DependencyDirs {
		if name == d {
			return true
		}
	}
	return false
}

// Discover returns the projects available among filePaths, shortest manifest path first.
// Manifests inside dependency directories sort after the others. When there is no manifest
// the implicit project is the only one available.
func (l *Loader) Discover(filePaths []string) []entity.ProjectConfigDescriptor {
	var manifests []string
	for _, p := range filePaths {
		if filepath.Base(p) == l.opts.ManifestFileName {
			manifests = append(manifests, p)
		}
	}

	weight := func(p string) int {
		if entity.InDependencyDir(p) {
			return len(p) + _dependencyWeight
		}
		return len(p)
	}
	sort.SliceStable(manifests, func(i, j int) bool {
		return weight(manifests[i]) < weight(manifests[j])
	})

	projects := make([]entity.ProjectConfigDescriptor, 0, len(manifests))
	for _, m := range manifests {
		projects = append(projects, entity.ManifestProject(l.opts.Root, m))
	}
	if len(projects) == 0 {
		projects = append(projects, entity.ImplicitProject(l.opts.ImplicitProjectName))
	}
	return projects
}

// keyOffset returns the offset of the first occurrence of a quoted key, or 0.
func keyOffset(content []byte, key string) int {
	if i := bytes.Index(content, []byte(`"`+key+`"`)); i >= 0 {
		return i
	}
	return 0
}

func errorAt(path string, content []byte, offset int, message string) entity.CodeError {
	m := textmap.NewTextOffsetMapper(content)
	if offset > len(content) {
		offset = len(content)
	}
	pos, err := m.OffsetPosition(offset)
	if err != nil {
		return entity.BlandError(path, message)
	}
	return entity.CodeError{
		FilePath: path,
		From:     pos,
		To:       pos,
		Message:  message,
		Preview:  m.LineText(pos.Line),
		Level:    entity.LevelError,
	}
}
