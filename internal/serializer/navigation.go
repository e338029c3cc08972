// Copyright (c) 2026 Amare Teklay
// All rights reserved. See LICENSE for details.

package serializer

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Amareteklay/adapticus-backend/internal/models"
)

// NavNode is one node of a rendered navigation tree.
type NavNode struct {
	Label    string    `json:"label"`
	URL      string    `json:"url"`
	NewTab   bool      `json:"new_tab"`
	Order    int       `json:"order"`
	Children []NavNode `json:"children"`
}

// FlatMenu is the public representation of a menu with its item tree.
type FlatMenu struct {
	ID    uuid.UUID `json:"id"`
	Site  string    `json:"site"`
	Slug  string    `json:"slug"`
	Items []NavNode `json:"items"`
}

// FlattenMenu shapes a menu and its flat item arena into the public form.
func FlattenMenu(m *models.NavigationMenu) FlatMenu {
	return FlatMenu{
		ID:    m.ID,
		Site:  string(m.Site),
		Slug:  m.Slug,
		Items: BuildTree(m.Items),
	}
}

// BuildTree converts a flat, unordered item arena into an ordered forest.
// Items are grouped by parent, siblings are sorted by explicit order with
// the lowercased label as a deterministic tie-break, and each root is
// materialized recursively. The parent relation is assumed acyclic — the
// store enforces that at write time.
func BuildTree(items []models.NavigationItem) []NavNode {
	groups := make(map[uuid.UUID][]models.NavigationItem)
	for _, it := range items {
		parent := uuid.Nil
		if it.ParentID != nil {
			parent = *it.ParentID
		}
		groups[parent] = append(groups[parent], it)
	}

	for _, siblings := range groups {
		sort.SliceStable(siblings, func(i, j int) bool {
			if siblings[i].Order != siblings[j].Order {
				return siblings[i].Order < siblings[j].Order
			}
			return strings.ToLower(siblings[i].Label) < strings.ToLower(siblings[j].Label)
		})
	}

	var build func(it models.NavigationItem) NavNode
	build = func(it models.NavigationItem) NavNode {
		node := NavNode{
			Label:    it.Label,
			URL:      it.URL,
			NewTab:   it.NewTab,
			Order:    it.Order,
			Children: []NavNode{},
		}
		for _, child := range groups[it.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	roots := groups[uuid.Nil]
	forest := make([]NavNode, 0, len(roots))
	for _, r := range roots {
		forest = append(forest, build(r))
	}
	return forest
}
