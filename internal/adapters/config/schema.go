package config

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Rebuildfile represents the structure of the rebuild.yaml configuration file.
type Rebuildfile struct {
	Version string `yaml:"version"`
	Root    string `yaml:"root,omitempty"`

	Compiler      string `yaml:"compiler"`
	CompilerFlags Flags  `yaml:"compilerFlags,omitempty"`
	LinkerFlags   Flags  `yaml:"linkerFlags,omitempty"`

	SourceDir  string `yaml:"sourceDir,omitempty"`
	SourceExt  string `yaml:"sourceExt,omitempty"`
	SourceMain string `yaml:"sourceMain"`
	HeaderDir  string `yaml:"headerDir,omitempty"`
	HeaderExt  string `yaml:"headerExt,omitempty"`
	ObjectDir  string `yaml:"objectDir,omitempty"`
	ObjectExt  string `yaml:"objectExt,omitempty"`

	IncludePaths  []string        `yaml:"includePaths,omitempty"`
	LibraryPaths  []string        `yaml:"libraryPaths,omitempty"`
	DependMapping map[string]List `yaml:"dependMapping,omitempty"`

	ExeDir  string `yaml:"exeDir,omitempty"`
	ExeFile string `yaml:"exeFile,omitempty"`

	Resources Resources `yaml:"resources,omitempty"`

	SkipLink        bool `yaml:"skipLink,omitempty"`
	CompileDatabase bool `yaml:"compileDatabase,omitempty"`
	Jobs            int  `yaml:"jobs,omitempty"`
}

// Flags is a list of command line arguments written either as one string, split
// on whitespace, or as a list.
type Flags []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flags) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*f = strings.Fields(value.Value)
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*f = list
	return nil
}

// List is a list of paths that may be written as a single scalar.
type List []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = List{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

// ResourceDTO maps a glob, relative to the project root, to a sub-path of the
// executable directory.
type ResourceDTO struct {
	Pattern string
	Dest    string
}

// Resources keeps the mappings in document order.
type Resources []ResourceDTO

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Resources) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return zerr.With(zerr.New("resources must be a mapping of glob to directory"), "line", value.Line)
	}
	out := make(Resources, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var dest string
		if err := value.Content[i+1].Decode(&dest); err != nil {
			return err
		}
		out = append(out, ResourceDTO{Pattern: value.Content[i].Value, Dest: dest})
	}
	*r = out
	return nil
}

// MarshalYAML implements yaml.Marshaler, writing the mappings in order.
func (r Resources) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, res := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: res.Pattern},
			&yaml.Node{Kind: yaml.ScalarNode, Value: res.Dest},
		)
	}
	return node, nil
}
