package ports

import "go.trai.ch/rebuild/internal/core/domain"

// Renderer presents build progress. Names are display paths relative to the
// project root.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnUnitPlanned is called for every unit of a dry run.
	OnUnitPlanned(name string, verdict domain.Verdict, reason string)

	// OnUnitSkipped is called for a unit whose object is up to date.
	OnUnitSkipped(name string)

	// OnCompileStart is called before a unit is compiled.
	OnCompileStart(name string, argv []string)

	// OnCompileComplete is called after a compile with its diagnostics.
	// err is nil if the unit compiled.
	OnCompileComplete(name string, output string, err error)

	// OnLinkStart is called before the executable is linked.
	OnLinkStart(name string, argv []string)

	// OnLinkComplete is called after linking.
	OnLinkComplete(name string, output string, err error)

	// OnResourceCopied is called for every resource copied next to the executable.
	OnResourceCopied(src, dst string)

	// OnBuildComplete is called once per build with its summary.
	OnBuildComplete(result *domain.BuildResult, err error)
}
