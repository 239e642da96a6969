package service

import (
	"cmp"
	"slices"
	"strings"

	"auralis/internal/domain/models"
)

// BuildDocumentTree assembles the flat rows of one data room into a tree.
//
// Exactly one depth-0 folder without a parent must be present; otherwise the tree is absent and
// ok is false. Rows that are not active, or whose parent is not part of the row
// set, are left out. Within a folder, child folders come first, then documents,
// each group ordered by name with the id as tiebreak so output is stable.
func BuildDocumentTree(rows []models.TreeRow) (tree *models.DocumentTree, ok bool) {
	folders := make(map[string]*models.Folder)
	childFolders := make(map[string][]*models.Folder)
	documents := make(map[string][]*models.Document)
	var root *models.Folder

	for _, row := range rows {
		switch row.Kind {
		case models.NodeKindFolder:
			f := row.Folder
			if f == nil || !f.Status.IsActive() {
				continue
			}
			if _, dup := folders[f.ID]; dup {
				continue
			}
			folders[f.ID] = f
			if row.Depth == 0 {
				// A depth-0 folder that still has a parent is not the room's root
				if !f.IsRoot() {
					continue
				}
				if root != nil {
					return nil, false
				}
				root = f
				continue
			}
			if f.ParentFolderID != nil {
				childFolders[*f.ParentFolderID] = append(childFolders[*f.ParentFolderID], f)
			}
		case models.NodeKindDocument:
			d := row.Document
			if d == nil || !d.Status.IsActive() {
				continue
			}
			documents[d.FolderID] = append(documents[d.FolderID], d)
		}
	}

	if root == nil {
		return nil, false
	}

	visited := make(map[string]bool)
	return buildFolderNode(root, childFolders, documents, visited), true
}

func buildFolderNode(
	folder *models.Folder,
	childFolders map[string][]*models.Folder,
	documents map[string][]*models.Document,
	visited map[string]bool,
) *models.DocumentTree {
	visited[folder.ID] = true

	subfolders := childFolders[folder.ID]
	slices.SortFunc(subfolders, func(a, b *models.Folder) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})
	docs := documents[folder.ID]
	slices.SortFunc(docs, func(a, b *models.Document) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID, b.ID))
	})

	node := &models.DocumentTree{
		Folder:   folder,
		Children: make([]*models.DocumentTree, 0, len(subfolders)+len(docs)),
	}
	folder.ChildrenFolderIDs = make([]string, 0, len(subfolders))
	folder.DocumentIDs = make([]string, 0, len(docs))

	for _, sub := range subfolders {
		// Guards against a parent cycle in corrupted data
		if visited[sub.ID] {
			continue
		}
		node.Children = append(node.Children, buildFolderNode(sub, childFolders, documents, visited))
		folder.ChildrenFolderIDs = append(folder.ChildrenFolderIDs, sub.ID)
	}
	for _, doc := range docs {
		node.Children = append(node.Children, &models.DocumentTree{Document: doc})
		folder.DocumentIDs = append(folder.DocumentIDs, doc.ID)
	}

	return node
}
