package stems

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source yields lexicon partitions by file name.
type Source interface {
	Lexicon(ctx context.Context, name string) (*Lexicon, error)
}

// FSSource reads partitions from a file system.
type FSSource struct {
	FS fs.FS
}

// DirSource returns a Source reading partitions from dir.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

// Lexicon opens and parses the named partition.
func (s FSSource) Lexicon(ctx context.Context, name string) (*Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return ParseLexicon(name, f)
}

// LoadLexicon reads a single partition file from disk.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseLexicon(filepath.Base(path), f)
}

// ParseLexicon decodes a YAML mapping of headword → entry record.
// Entries keep their document order. An empty document yields an empty
// lexicon.
func ParseLexicon(name string, r io.Reader) (*Lexicon, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return newLexicon(name), nil
		}
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	lex := newLexicon(name)
	if len(doc.Content) == 0 {
		return lex, nil
	}
	top := resolveAlias(doc.Content[0])
	if top.Kind == yaml.ScalarNode && top.Tag == "!!null" {
		return lex, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse %s: line %d: top level must be a mapping of headwords", name, top.Line)
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse %s: line %d: headword must be a scalar", name, key.Line)
		}
		e, err := parseEntry(NormalizeGreek(key.Value), resolveAlias(val))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if lex.index[e.Headword] != nil {
			return nil, fmt.Errorf("parse %s: line %d: duplicate headword %q", name, key.Line, e.Headword)
		}
		lex.add(e)
	}
	return lex, nil
}

// parseEntry builds an Entry from the record node of headword.
func parseEntry(headword string, n *yaml.Node) (*Entry, error) {
	e := &Entry{
		Headword: headword,
		Stems:    make(StemSet),
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return e, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %s: entry must be a mapping", n.Line, headword)
	}
	fields, err := entryFields(headword, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(fields); i += 2 {
		k, v := fields[i], resolveAlias(fields[i+1])
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: %s: field %q must be a scalar", v.Line, headword, k.Value)
		}
		value := v.Value
		if v.Tag == "!!null" {
			value = ""
		}
		switch name := k.Value; {
		case name == fieldRoot:
			e.Root = NormalizeGreek(value)
		case name == fieldPrefix:
			e.Prefix = NormalizeGreek(value)
			e.HasPrefix = true
		case StemName(name).Valid():
			e.Stems[StemName(name)] = NormalizeGreek(value)
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]string)
			}
			e.Extra[name] = value
		}
	}
	return e, nil
}

// resolveAlias follows alias nodes (*name) to the node they anchor.
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// entryFields flattens the key/value pairs of a record mapping, expanding
// merge keys (<<: *base). Merged fields come first so explicit fields of
// the record override them.
func entryFields(headword string, n *yaml.Node) ([]*yaml.Node, error) {
	var merged, own []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || k.Tag != "!!merge" {
			own = append(own, k, v)
			continue
		}
		v = resolveAlias(v)
		sources := []*yaml.Node{v}
		if v.Kind == yaml.SequenceNode {
			sources = v.Content
		}
		for _, src := range sources {
			src = resolveAlias(src)
			if src.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: %s: merge value must be a mapping", src.Line, headword)
			}
			fields, err := entryFields(headword, src)
			if err != nil {
				return nil, err
			}
			merged = append(merged, fields...)
		}
	}
	return append(merged, own...), nil
}
