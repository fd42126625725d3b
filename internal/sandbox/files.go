// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// PackageJSONPath is where the composed manifest lives.
const PackageJSONPath = "/package.json"

// =============================================================================
// PATHS
// =============================================================================

// NormalizePath returns p as a clean absolute sandbox path:
// "components/Button.tsx" becomes "/components/Button.tsx".
func NormalizePath(p string) (string, error) {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" || strings.HasSuffix(p, "/") {
		return "", fmt.Errorf("invalid sandbox file path %q", p)
	}
	clean := path.Clean("/" + p)
	if clean == "/" {
		return "", fmt.Errorf("invalid sandbox file path %q", p)
	}
	return clean, nil
}

// =============================================================================
// COMPOSITION
// =============================================================================

// packageJSON is the manifest written at PackageJSONPath.
type packageJSON struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Main         string            `json:"main"`
	Dependencies map[string]string `json:"dependencies"`
}

// PackageJSON renders the manifest for tmpl with deps merged over the
// template's own dependencies.
func PackageJSON(tmpl Template, deps map[string]string) (string, error) {
	spec, ok := templateSpecs[tmpl]
	if !ok {
		return "", fmt.Errorf("unknown sandbox template %q", tmpl)
	}
	manifest := packageJSON{
		Name:         "sandbox-" + string(tmpl),
		Version:      "1.0.0",
		Main:         spec.main,
		Dependencies: lo.Assign(spec.dependencies, deps),
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode package.json: %w", err)
	}
	return string(data) + "\n", nil
}

// ComposeFiles builds the file map of a sandbox: the template's defaults,
// then the composed package.json, then user files, which win on conflict.
// Every key of the result is a normalized path.
func ComposeFiles(tmpl Template, user map[string]string, deps map[string]string) (map[string]string, error) {
	spec, ok := templateSpecs[tmpl]
	if !ok {
		return nil, fmt.Errorf("unknown sandbox template %q", tmpl)
	}

	files := lo.Assign(spec.files)

	manifest, err := PackageJSON(tmpl, deps)
	if err != nil {
		return nil, err
	}
	files[PackageJSONPath] = manifest

	for p, code := range user {
		clean, err := NormalizePath(p)
		if err != nil {
			return nil, err
		}
		files[clean] = code
	}
	return files, nil
}

// =============================================================================
// EXPLORER TREE
// =============================================================================

// treeEntry is one row of the file explorer.
type treeEntry struct {
	Name  string
	Path  string
	Dir   bool
	Depth int
	Last  bool
}

type treeNode struct {
	name     string
	path     string
	dir      bool
	children map[string]*treeNode
}

// buildTree flattens paths into explorer rows: directories first, then
// files, each group sorted by name.
func buildTree(paths []string) []treeEntry {
	root := &treeNode{dir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
		node := root
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{
					name:     part,
					path:     "/" + strings.Join(parts[:i+1], "/"),
					dir:      i < len(parts)-1,
					children: map[string]*treeNode{},
				}
				node.children[part] = child
			}
			node = child
		}
	}

	var out []treeEntry
	var walk func(n *treeNode, depth int)
	walk = func(n *treeNode, depth int) {
		kids := lo.Values(n.children)
		sort.Slice(kids, func(i, j int) bool {
			if kids[i].dir != kids[j].dir {
				return kids[i].dir
			}
			return kids[i].name < kids[j].name
		})
		for i, k := range kids {
			out = append(out, treeEntry{
				Name:  k.name,
				Path:  k.path,
				Dir:   k.dir,
				Depth: depth,
				Last:  i == len(kids)-1,
			})
			if k.dir {
				walk(k, depth+1)
			}
		}
	}
	walk(root, 0)
	return out
}

// filePaths returns the file rows of entries, in explorer order.
func filePaths(entries []treeEntry) []string {
	files := lo.Filter(entries, func(e treeEntry, _ int) bool { return !e.Dir })
	return lo.Map(files, func(e treeEntry, _ int) string { return e.Path })
}
