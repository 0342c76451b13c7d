// Package config provides the configuration loader for rebuild.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// SchemaVersion is the configuration version understood by this loader.
const SchemaVersion = "1"

// envRef matches ${NAME} references expanded from the environment.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd to the first directory holding a rebuild.yaml.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load reads the configuration at path. A .env file next to it is loaded into
// the environment first, without overriding variables that are already set, so
// ${NAME} references in the file can use it. Relative paths are resolved
// against the project root.
func (l *Loader) Load(path string) (*domain.Config, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve configuration path")
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := loadEnvFile(filepath.Dir(path)); err != nil {
		return nil, err
	}

	var file Rebuildfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, reading it as version %s",
			file.Version, domain.ConfigFileName, SchemaVersion))
	}

	cfg := resolve(path, &file)
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func resolve(configPath string, file *Rebuildfile) *domain.Config {
	root := resolveRoot(configPath, file.Root)
	abs := func(p, def string) string {
		if p == "" {
			p = def
		}
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(root, p)
	}
	absAll := func(paths []string) []string {
		if len(paths) == 0 {
			return nil
		}
		out := make([]string, len(paths))
		for i, p := range paths {
			out[i] = abs(p, "")
		}
		return out
	}

	cfg := &domain.Config{
		Root:            root,
		Compiler:        file.Compiler,
		CompilerFlags:   file.CompilerFlags,
		LinkerFlags:     file.LinkerFlags,
		SourceDir:       abs(file.SourceDir, domain.DefaultSourceDir),
		SourceExt:       orDefault(file.SourceExt, domain.DefaultSourceExt),
		SourceMain:      file.SourceMain,
		HeaderDir:       abs(file.HeaderDir, domain.DefaultHeaderDir),
		HeaderExt:       orDefault(file.HeaderExt, domain.DefaultHeaderExt),
		ObjectDir:       abs(file.ObjectDir, domain.DefaultObjectDir),
		ObjectExt:       orDefault(file.ObjectExt, domain.DefaultObjectExt),
		IncludePaths:    absAll(file.IncludePaths),
		LibraryPaths:    absAll(file.LibraryPaths),
		ExeDir:          abs(file.ExeDir, domain.DefaultExeDir),
		ExeFile:         orDefault(file.ExeFile, domain.DefaultExeFile),
		SkipLink:        file.SkipLink,
		CompileDatabase: file.CompileDatabase,
		Jobs:            file.Jobs,
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = domain.DefaultJobs
	}

	if len(file.DependMapping) > 0 {
		cfg.DependMapping = make(map[string][]string, len(file.DependMapping))
		for header, sources := range file.DependMapping {
			cfg.DependMapping[abs(header, "")] = absAll(sources)
		}
	}

	for _, r := range file.Resources {
		cfg.Resources = append(cfg.Resources, domain.ResourceMapping{Pattern: r.Pattern, Dest: r.Dest})
	}

	return cfg
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

// loadEnvFile loads dir/.env if it exists.
func loadEnvFile(dir string) error {
	envPath := filepath.Join(dir, domain.EnvFileName)
	if _, err := os.Stat(envPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", envPath)
	}
	return nil
}

// expandEnv replaces ${NAME} references with the value of the environment
// variable. Unset variables expand to the empty string.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(m []byte) []byte {
		return []byte(os.Getenv(string(m[2 : len(m)-1])))
	})
}

// readAndUnmarshalYAML reads a YAML file, expands environment references and
// unmarshals it into target. Unknown keys are rejected.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(expandEnv(configFile)))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
