package config

import (
	"bytes"
	"path/filepath"

	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Encode renders cfg as a rebuild.yaml document with every default filled in.
// Paths under the project root are written relative to it.
func Encode(cfg *domain.Config) ([]byte, error) {
	rel := func(path string) string {
		r, err := filepath.Rel(cfg.Root, path)
		if err != nil || !domain.IsUnder(path, cfg.Root) {
			return path
		}
		return filepath.ToSlash(r)
	}
	relAll := func(paths []string) []string {
		if len(paths) == 0 {
			return nil
		}
		out := make([]string, len(paths))
		for i, p := range paths {
			out[i] = rel(p)
		}
		return out
	}

	file := Rebuildfile{
		Version:         SchemaVersion,
		Root:            cfg.Root,
		Compiler:        cfg.Compiler,
		CompilerFlags:   cfg.CompilerFlags,
		LinkerFlags:     cfg.LinkerFlags,
		SourceDir:       rel(cfg.SourceDir),
		SourceExt:       cfg.SourceExt,
		SourceMain:      cfg.SourceMain,
		HeaderDir:       rel(cfg.HeaderDir),
		HeaderExt:       cfg.HeaderExt,
		ObjectDir:       rel(cfg.ObjectDir),
		ObjectExt:       cfg.ObjectExt,
		IncludePaths:    relAll(cfg.IncludePaths),
		LibraryPaths:    relAll(cfg.LibraryPaths),
		ExeDir:          rel(cfg.ExeDir),
		ExeFile:         cfg.ExeFile,
		SkipLink:        cfg.SkipLink,
		CompileDatabase: cfg.CompileDatabase,
		Jobs:            cfg.Jobs,
	}

	if len(cfg.DependMapping) > 0 {
		file.DependMapping = make(map[string]List, len(cfg.DependMapping))
		for header, sources := range cfg.DependMapping {
			file.DependMapping[rel(header)] = relAll(sources)
		}
	}

	for _, r := range cfg.Resources {
		file.Resources = append(file.Resources, ResourceDTO{Pattern: r.Pattern, Dest: r.Dest})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return nil, zerr.Wrap(err, "failed to encode configuration")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
