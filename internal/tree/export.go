// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     tree
// Description: JSON and YAML export of the parse tree
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package tree

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// exported is the serialised form of a node
type exported struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Label    string     `json:"label" yaml:"label"`
	Lexeme   string     `json:"lexeme,omitempty" yaml:"lexeme,omitempty"`
	Children []exported `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *Node) export() exported {
	e := exported{
		Kind:   n.Kind.String(),
		Label:  n.Label(),
		Lexeme: n.Lexeme,
	}
	for _, c := range n.children {
		e.Children = append(e.Children, c.export())
	}
	return e
}

// MarshalJSON implements json.Marshaler
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.export())
}

// MarshalYAML implements yaml.Marshaler
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.export(), nil
}

// ToJSON renders root as indented JSON
func ToJSON(root *Node, indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(root)
	}
	return json.MarshalIndent(root, "", strings.Repeat(" ", indent))
}

// ToYAML renders root as a YAML document
func ToYAML(root *Node) ([]byte, error) {
	return yaml.Marshal(root)
}
