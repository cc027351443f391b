package htable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a table from a declarative YAML definition:
//
//	attrs: {class: report}
//	head:
//	  rows:
//	    - cells: [Name, Age]
//	body:
//	  attrs: {class: striped}
//	  rows:
//	    - cells: [alice, "34"]
//	    - attrs: {class: odd}
//	      cells:
//	        - value: bob
//	          attrs: {class: vip}
//	        - "41"
//
// Cells may be plain scalars or value/attrs mappings. Sections are only
// created when present in the document, so a definition without a head
// renders without a <thead>.
func FromYAML(data []byte) (*Table, error) {
	var doc yamlTable
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("htable: decoding table definition: %w", err)
	}
	t := NewTable()
	t.Attrs = NewAttrs(doc.Attrs)
	buildSection := func(add func() *Section, def *yamlSection) {
		if def == nil {
			return
		}
		s := add()
		s.Attrs = NewAttrs(def.Attrs)
		for _, rowDef := range def.Rows {
			r := s.AddRow()
			r.Attrs = NewAttrs(rowDef.Attrs)
			for _, cellDef := range rowDef.Cells {
				c := r.AddCell(cellDef.Value)
				c.Attrs = NewAttrs(cellDef.Attrs)
			}
		}
	}
	buildSection(t.AddHead, doc.Head)
	buildSection(t.AddBody, doc.Body)
	buildSection(t.AddFoot, doc.Foot)
	return t, nil
}

type yamlTable struct {
	Attrs map[string]string `yaml:"attrs"`
	Head  *yamlSection      `yaml:"head"`
	Body  *yamlSection      `yaml:"body"`
	Foot  *yamlSection      `yaml:"foot"`
}

type yamlSection struct {
	Attrs map[string]string `yaml:"attrs"`
	Rows  []yamlRow         `yaml:"rows"`
}

type yamlRow struct {
	Attrs map[string]string `yaml:"attrs"`
	Cells []yamlCell        `yaml:"cells"`
}

type yamlCell struct {
	Value string
	Attrs map[string]string
}

// UnmarshalYAML accepts either a bare scalar ("Name") or a mapping with
// value and attrs keys.
func (c *yamlCell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&c.Value)
	}
	var full struct {
		Value string            `yaml:"value"`
		Attrs map[string]string `yaml:"attrs"`
	}
	if err := node.Decode(&full); err != nil {
		return err
	}
	c.Value = full.Value
	c.Attrs = full.Attrs
	return nil
}
