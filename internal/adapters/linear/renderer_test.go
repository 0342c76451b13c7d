package linear_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rebuild/internal/adapters/linear"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func newRenderer(t *testing.T) (*linear.Renderer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	return linear.NewRenderer(&stdout, &stderr, false), &stdout, &stderr
}

func TestRenderer_Plan(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	r.OnUnitPlanned("src/main.cpp", domain.VerdictStale, "include/util.hpp changed")
	r.OnUnitPlanned("src/util.cpp", domain.VerdictFresh, "up to date")

	assert.Equal(t,
		"~ stale src/main.cpp (include/util.hpp changed)\n"+
			"✓ fresh src/util.cpp (up to date)\n",
		stdout.String())
}

func TestRenderer_SuccessfulBuild(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnUnitSkipped("src/util.cpp")
	r.OnCompileStart("src/main.cpp", []string{"c++", "-c", "src/main.cpp", "-o", "build/main.o"})
	r.OnCompileComplete("src/main.cpp", "src/main.cpp:3:1: warning: unused\n", nil)
	r.OnLinkStart("bin/app", []string{"c++", "-o", "bin/app", "build/main.o", "build/util.o"})
	r.OnLinkComplete("bin/app", "", nil)
	r.OnResourceCopied("assets/logo.png", "bin/assets/logo.png")
	r.OnBuildComplete(&domain.BuildResult{
		Compiled:   []string{"/p/src/main.cpp"},
		Skipped:    []string{"/p/src/util.cpp"},
		Warnings:   []string{"/p/src/main.cpp"},
		Linked:     true,
		LinkReason: "objects rebuilt",
	}, nil)

	assert.Equal(t, ""+
		"Skipping (up to date): src/util.cpp\n"+
		"Running: c++ -c src/main.cpp -o build/main.o\n"+
		"\tsrc/main.cpp:3:1: warning: unused\n"+
		"\n"+
		"\n"+
		"Generating executable bin/app...\n"+
		"Running: c++ -o bin/app build/main.o build/util.o\n"+
		"    Copying assets/logo.png to bin/assets/logo.png...\n"+
		"\n"+
		"Compilation succeeded with warnings\n"+
		"1 compiled, 1 up to date, relinked (objects rebuilt)\n"+
		"----------------------------------------------------\n",
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_UpToDate(t *testing.T) {
	r, stdout, _ := newRenderer(t)

	r.OnBuildComplete(&domain.BuildResult{UpToDate: true}, nil)

	assert.Equal(t, "\nEverything up to date!\nSkipping executable generation\n"+
		"------------------------------\n", stdout.String())
}

func TestRenderer_CompileFailure(t *testing.T) {
	r, stdout, stderr := newRenderer(t)

	r.OnCompileStart("src/main.cpp", []string{"c++", "-c", "src/main.cpp"})
	r.OnCompileComplete("src/main.cpp", "src/main.cpp:1:2: error: boom\r\n", zerr.New("exit status 1"))
	r.OnBuildComplete(&domain.BuildResult{}, domain.ErrCompileFailed)

	assert.Contains(t, stdout.String(), "\tsrc/main.cpp:1:2: error: boom\n")
	assert.Contains(t, stderr.String(), "✗ Compilation of src/main.cpp failed\n")
	assert.Contains(t, stderr.String(), "Building failed!\nSkipping executable generation\n")
}

func TestRenderer_LinkFailure(t *testing.T) {
	r, _, stderr := newRenderer(t)

	r.OnLinkComplete("bin/app", "undefined reference to main\n", zerr.New("exit status 1"))
	r.OnBuildComplete(&domain.BuildResult{}, domain.ErrLinkFailed)

	assert.Contains(t, stderr.String(), "✗ Linking bin/app failed\n")
	assert.Contains(t, stderr.String(), "Linking failed!\n")
}
