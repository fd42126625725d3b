// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sandbox

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// =============================================================================
// TEMPLATES
// =============================================================================

// Template names a starter project.
type Template string

const (
	TemplateReactTS Template = "react-ts"
	TemplateReact   Template = "react"
	TemplateVanilla Template = "vanilla"
	TemplateStatic  Template = "static"
)

// DefaultTemplate is used when no template is configured.
const DefaultTemplate = TemplateReactTS

// Templates returns every known template, in display order.
func Templates() []Template {
	return []Template{TemplateReactTS, TemplateReact, TemplateVanilla, TemplateStatic}
}

// TemplateNames returns the known template names as a comma separated list.
func TemplateNames() string {
	names := lo.Map(Templates(), func(t Template, _ int) string {
		return t.String()
	})
	return strings.Join(names, ", ")
}

// ParseTemplate converts a string to a Template. Matching is case-insensitive.
func ParseTemplate(s string) (Template, error) {
	t := Template(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := templateSpecs[t]; !ok {
		return "", fmt.Errorf("unknown sandbox template %q (expected %s)", s, TemplateNames())
	}
	return t, nil
}

// String returns the string representation of the template.
func (t Template) String() string {
	return string(t)
}

// Entry returns the file the template opens first.
func (t Template) Entry() string {
	return templateSpecs[t].entry
}

// templateSpec is the set of default files and dependencies a template
// contributes before user files are applied.
type templateSpec struct {
	entry        string
	main         string
	files        map[string]string
	dependencies map[string]string
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Document</title>
  </head>
  <body>
    <div id="root"></div>
  </body>
</html>
`

const stylesCSS = `body {
  font-family: sans-serif;
  -webkit-font-smoothing: auto;
  -moz-font-smoothing: auto;
  -moz-osx-font-smoothing: grayscale;
  font-smoothing: auto;
  text-rendering: optimizeLegibility;
  font-smooth: always;
  -webkit-tap-highlight-color: transparent;
  -webkit-touch-callout: none;
}

h1 {
  font-size: 1.5rem;
}
`

var templateSpecs = map[Template]templateSpec{
	TemplateReactTS: {
		entry: "/App.tsx",
		main:  "/index.tsx",
		files: map[string]string{
			"/App.tsx": `export default function App(): JSX.Element {
  return <h1>Hello world</h1>
}
`,
			"/index.tsx": `import React, { StrictMode } from "react";
import { createRoot } from "react-dom/client";
import "./styles.css";

import App from "./App";

const root = createRoot(document.getElementById("root"));
root.render(
  <StrictMode>
    <App />
  </StrictMode>
);
`,
			"/styles.css":        stylesCSS,
			"/public/index.html": indexHTML,
			"/tsconfig.json": `{
  "include": ["./**/*"],
  "compilerOptions": {
    "strict": true,
    "esModuleInterop": true,
    "lib": ["dom", "es2015"],
    "jsx": "react-jsx"
  }
}
`,
		},
		dependencies: map[string]string{
			"react":         "^18.0.0",
			"react-dom":     "^18.0.0",
			"react-scripts": "^4.0.0",
			"typescript":    "^4.0.0",
		},
	},
	TemplateReact: {
		entry: "/App.js",
		main:  "/index.js",
		files: map[string]string{
			"/App.js": `export default function App() {
  return <h1>Hello world</h1>
}
`,
			"/index.js": `import React, { StrictMode } from "react";
import { createRoot } from "react-dom/client";
import "./styles.css";

import App from "./App";

const root = createRoot(document.getElementById("root"));
root.render(
  <StrictMode>
    <App />
  </StrictMode>
);
`,
			"/styles.css":        stylesCSS,
			"/public/index.html": indexHTML,
		},
		dependencies: map[string]string{
			"react":         "^18.0.0",
			"react-dom":     "^18.0.0",
			"react-scripts": "^4.0.0",
		},
	},
	TemplateVanilla: {
		entry: "/index.js",
		main:  "/index.js",
		files: map[string]string{
			"/index.js": `import "./styles.css";

document.getElementById("app").innerHTML = ` + "`" + `
<h1>Hello world</h1>
` + "`" + `;
`,
			"/index.html": `<!DOCTYPE html>
<html>
  <head>
    <title>Parcel Sandbox</title>
    <meta charset="UTF-8" />
  </head>
  <body>
    <div id="app"></div>
    <script src="index.js"></script>
  </body>
</html>
`,
			"/styles.css": stylesCSS,
		},
		dependencies: map[string]string{},
	},
	TemplateStatic: {
		entry: "/index.html",
		main:  "/index.html",
		files: map[string]string{
			"/index.html": `<!DOCTYPE html>
<html>
  <head>
    <title>Static Sandbox</title>
    <link rel="stylesheet" href="styles.css" />
  </head>
  <body>
    <h1>Hello world</h1>
  </body>
</html>
`,
			"/styles.css": stylesCSS,
		},
		dependencies: map[string]string{},
	},
}
