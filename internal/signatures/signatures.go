package signatures

import (
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/utils"
)

//go:embed signatures.yaml
var DEFAULT_DATA_YAML string

var defaultData registryData

func init() {
	if err := yaml.Unmarshal(utils.StringAsBytes(DEFAULT_DATA_YAML), &defaultData); err != nil {
		log.Panicf("error while parsing signatures.yaml: %s", err)
	}

	if err := defaultData.apply(analysis.NewTableRegistry()); err != nil {
		log.Panicf("invalid signature data in signatures.yaml: %s", err)
	}
}

// Default returns a new registry preloaded with the ucode core builtins and
// the fs, math, struct and log standard modules.
func Default() *analysis.TableRegistry {
	reg := analysis.NewTableRegistry()
	if err := defaultData.apply(reg); err != nil {
		log.Panicf("invalid signature data in signatures.yaml: %s", err)
	}
	return reg
}

// Load reads YAML signature data from r and merges it into reg. Builtins
// with an already registered name replace the stock definition, module
// functions and tagged type members are merged per name. This is how targets
// with additional native modules (ubus, uci, ...) are described without
// recompiling.
func Load(reg *analysis.TableRegistry, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read signature data: %w", err)
	}

	var data registryData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse signature data: %w", err)
	}

	return data.apply(reg)
}

// LoadFile merges signature data from a YAML file into reg, see Load.
func LoadFile(reg *analysis.TableRegistry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Load(reg, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

type registryData struct {
	Builtins    []signatureData  `yaml:"builtins"`
	Modules     []moduleData     `yaml:"modules"`
	TaggedTypes []taggedTypeData `yaml:"tagged-types"`
}

type signatureData struct {
	Name string `yaml:"name"`

	MinArgs int `yaml:"min-args,omitempty"`
	// MaxArgs of -1 means no upper bound.
	MaxArgs int `yaml:"max-args,omitempty"`

	Params []string `yaml:"params,omitempty"`
	Return string   `yaml:"return,omitempty"`
	Doc    string   `yaml:"doc,omitempty"`
}

type moduleData struct {
	Name      string          `yaml:"name"`
	Doc       string          `yaml:"doc,omitempty"`
	Functions []signatureData `yaml:"functions"`
}

type taggedTypeData struct {
	Tag     string          `yaml:"tag"`
	Members []signatureData `yaml:"members"`
}

func (d registryData) apply(reg *analysis.TableRegistry) error {
	for _, b := range d.Builtins {
		sig, err := b.signature()
		if err != nil {
			return err
		}
		reg.AddBuiltin(sig)
	}

	for _, m := range d.Modules {
		if m.Name == "" {
			return fmt.Errorf("unnamed module in signature data")
		}

		functions := make(map[string]analysis.Signature, len(m.Functions))
		for _, fn := range m.Functions {
			sig, err := fn.signature()
			if err != nil {
				return fmt.Errorf("module %s: %w", m.Name, err)
			}
			functions[sig.Name] = sig
		}

		mod := analysis.Module{Name: m.Name, Functions: functions, Doc: m.Doc}

		if existing, ok := reg.Module(m.Name); ok {
			for name, sig := range existing.Functions {
				if _, redefined := functions[name]; !redefined {
					functions[name] = sig
				}
			}
			if mod.Doc == "" {
				mod.Doc = existing.Doc
			}
		}
		reg.AddModule(mod)
	}

	for _, t := range d.TaggedTypes {
		tag := analysis.ValueType(t.Tag)
		if !tag.IsTag() {
			return fmt.Errorf("%q is not a valid object type tag", t.Tag)
		}

		members := make(map[string]analysis.Signature, len(t.Members))
		for _, member := range t.Members {
			sig, err := member.signature()
			if err != nil {
				return fmt.Errorf("tagged type %s: %w", t.Tag, err)
			}
			members[sig.Name] = sig
		}

		if existing, ok := reg.TaggedMembers(tag); ok {
			for name, sig := range existing {
				if _, redefined := members[name]; !redefined {
					members[name] = sig
				}
			}
		}
		reg.AddTaggedType(tag, members)
	}

	return nil
}

func (d signatureData) signature() (analysis.Signature, error) {
	if d.Name == "" {
		return analysis.Signature{}, fmt.Errorf("unnamed function in signature data")
	}
	if d.MaxArgs < -1 || (d.MaxArgs >= 0 && d.MaxArgs < d.MinArgs) {
		return analysis.Signature{}, fmt.Errorf("function %s: invalid argument count bounds [%d, %d]", d.Name, d.MinArgs, d.MaxArgs)
	}
	if d.MaxArgs >= 0 && len(d.Params) > d.MaxArgs {
		return analysis.Signature{}, fmt.Errorf("function %s: more parameter constraints than the maximum argument count", d.Name)
	}

	var params []analysis.ValueType
	if len(d.Params) > 0 {
		params = utils.MapSlice(d.Params, func(p string) analysis.ValueType {
			return analysis.ValueType(p)
		})
	}

	return analysis.Signature{
		Name:    d.Name,
		MinArgs: d.MinArgs,
		MaxArgs: d.MaxArgs,
		Params:  params,
		Return:  parseType(d.Return),
		Doc:     d.Doc,
	}, nil
}

// parseType reads a rendered type such as "string | null"; an empty string
// yields the unknown type.
func parseType(s string) analysis.Type {
	var members []analysis.ValueType

	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		members = append(members, analysis.ValueType(part))
	}

	return analysis.NewType(members...)
}
