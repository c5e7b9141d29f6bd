package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifestProject(t *testing.T) {
	tests := []struct {
		name         string
		manifestPath string
		wantName     string
	}{
		{
			name:         "regular manifest named by parent directory",
			manifestPath: "/ws/app/projectd.json",
			wantName:     "app/projectd.json",
		},
		{
			name:         "dependency manifest named by relative path",
			manifestPath: "/ws/node_modules/lib/projectd.json",
			wantName:     "node_modules/lib/projectd.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ManifestProject("/ws", tt.manifestPath)
			assert.Equal(t, tt.wantName, d.Name)
			assert.False(t, d.IsImplicit)
			assert.Equal(t, tt.manifestPath, d.ManifestFilePath)
			assert.True(t, d.Valid())
		})
	}
}

func TestDescriptorValid(t *testing.T) {
	assert.True(t, ImplicitProject("").Valid())
	assert.Equal(t, ImplicitProjectName, ImplicitProject("").Name)
	assert.False(t, ProjectConfigDescriptor{Name: "x", IsImplicit: true, ManifestFilePath: "/a"}.Valid())
	assert.False(t, ProjectConfigDescriptor{Name: "x"}.Valid())
	assert.False(t, ProjectConfigDescriptor{}.Valid())
}

func TestGroupByFilePath(t *testing.T) {
	errs := []CodeError{
		{FilePath: "a.ts", Message: "1"},
		{FilePath: "b.ts", Message: "2"},
		{FilePath: "a.ts", Message: "3"},
	}
	grouped := GroupByFilePath(errs)
	assert.Len(t, grouped, 2)
	assert.Equal(t, []CodeError{errs[0], errs[2]}, grouped["a.ts"])
	assert.Equal(t, 3, grouped.Count())
}

func TestEqualErrors(t *testing.T) {
	e1 := CodeError{FilePath: "a.ts", Message: "one"}
	e2 := CodeError{FilePath: "a.ts", Message: "two"}

	assert.True(t, EqualErrors(nil, []CodeError{}))
	assert.True(t, EqualErrors([]CodeError{e1, e2}, []CodeError{e1, e2}))
	assert.False(t, EqualErrors([]CodeError{e1, e2}, []CodeError{e2, e1}), "order matters")
	assert.False(t, EqualErrors([]CodeError{e1}, []CodeError{e2}))
}

func TestInDependencyDir(t *testing.T) {
	assert.True(t, InDependencyDir("/ws/node_modules/x/a.ts"))
	assert.True(t, InDependencyDir("vendor/lib/a.ts"))
	assert.False(t, InDependencyDir("/ws/src/node_modules_backup/a.ts"))
}

func TestOutputStateString(t *testing.T) {
	assert.Equal(t, "emit-skipped", OutputEmitSkipped.String())
	assert.Equal(t, "out-of-date", OutputOutOfDate.String())
	assert.Equal(t, "unknown", OutputState(42).String())
}
