package models

import (
	"encoding/json"
)

// NodeKind distinguishes the two payloads a tree node can carry
type NodeKind string

const (
	NodeKindFolder   NodeKind = "Folder"
	NodeKindDocument NodeKind = "Document"
)

// DocumentTree is the read model of a data room's hierarchy. Exactly one of
// Folder or Document is set. Each node owns its children.
type DocumentTree struct {
	Folder   *Folder
	Document *Document
	Children []*DocumentTree
}

func (t *DocumentTree) Kind() NodeKind {
	if t.Document != nil {
		return NodeKindDocument
	}
	return NodeKindFolder
}

func (t *DocumentTree) Name() string {
	if t.Document != nil {
		return t.Document.Name
	}
	if t.Folder != nil {
		return t.Folder.Name
	}
	return ""
}

// MarshalJSON renders {"type": ..., "data": ..., "children": [...]}
func (t *DocumentTree) MarshalJSON() ([]byte, error) {
	var data interface{}
	if t.Document != nil {
		data = t.Document
	} else {
		data = t.Folder
	}

	children := t.Children
	if children == nil {
		children = []*DocumentTree{}
	}

	return json.Marshal(struct {
		Type     NodeKind        `json:"type"`
		Data     interface{}     `json:"data"`
		Children []*DocumentTree `json:"children"`
	}{
		Type:     t.Kind(),
		Data:     data,
		Children: children,
	})
}

// TreeRow is one row of the flat result set produced by the recursive tree query
type TreeRow struct {
	Kind     NodeKind
	Depth    int // 0 for the root folder
	Folder   *Folder
	Document *Document
}
