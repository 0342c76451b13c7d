package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/core/domain"
)

func testConfig(root string) *domain.Config {
	return &domain.Config{
		Root:      root,
		Compiler:  "g++",
		SourceDir: filepath.Join(root, "src"),
		SourceExt: "cpp",
		HeaderDir: filepath.Join(root, "include"),
		HeaderExt: "hpp",
		ObjectDir: filepath.Join(root, "build"),
		ObjectExt: ".o",
		ExeDir:    filepath.Join(root, "bin"),
		ExeFile:   "app",
		Jobs:      1,
	}
}

func TestPathMapper_HeaderToSource(t *testing.T) {
	root := filepath.FromSlash("/project")
	m := domain.NewPathMapper(testConfig(root))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"top level", "/project/include/util.hpp", "/project/src/util.cpp"},
		{"nested", "/project/include/net/socket.hpp", "/project/src/net/socket.cpp"},
		{"unclean path", "/project/include/./net/../util.hpp", "/project/src/util.cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.HeaderToSource(filepath.FromSlash(tt.header))
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestPathMapper_SourceToObject(t *testing.T) {
	root := filepath.FromSlash("/project")
	m := domain.NewPathMapper(testConfig(root))

	got, err := m.SourceToObject(filepath.FromSlash("/project/src/net/socket.cpp"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/project/build/net/socket.o"), got)
}

func TestPathMapper_RoundTrip(t *testing.T) {
	root := filepath.FromSlash("/project")
	m := domain.NewPathMapper(testConfig(root))

	for _, h := range []string{"/project/include/a.hpp", "/project/include/x/y/z.hpp"} {
		header := filepath.FromSlash(h)
		src, err := m.HeaderToSource(header)
		require.NoError(t, err)
		back, err := m.SourceToHeader(src)
		require.NoError(t, err)
		assert.Equal(t, header, back)
	}
}

func TestPathMapper_OutsideRoot(t *testing.T) {
	root := filepath.FromSlash("/project")
	m := domain.NewPathMapper(testConfig(root))

	tests := []struct {
		name string
		run  func() (string, error)
	}{
		{"header outside header dir", func() (string, error) {
			return m.HeaderToSource(filepath.FromSlash("/usr/include/vector.hpp"))
		}},
		{"header dir itself", func() (string, error) {
			return m.HeaderToSource(filepath.FromSlash("/project/include"))
		}},
		{"sibling prefix", func() (string, error) {
			return m.HeaderToSource(filepath.FromSlash("/project/include2/a.hpp"))
		}},
		{"source outside source dir", func() (string, error) {
			return m.SourceToObject(filepath.FromSlash("/project/other/main.cpp"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.run()
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrPathMapping.Error())
		})
	}
}

func TestPathMapper_IsHeader(t *testing.T) {
	m := domain.NewPathMapper(testConfig(filepath.FromSlash("/project")))

	assert.True(t, m.IsHeader("a/b.hpp"))
	assert.False(t, m.IsHeader("a/b.h"))
	assert.False(t, m.IsHeader("a/b.cpp"))
	assert.True(t, m.UnderHeaderDir(filepath.FromSlash("/project/include/a.hpp")))
	assert.False(t, m.UnderHeaderDir(filepath.FromSlash("/usr/include/a.hpp")))
}
