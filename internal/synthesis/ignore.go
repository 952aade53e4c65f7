package synthesis

import (
	"fmt"
	"path/filepath"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/selection"
)

// baseIgnoreTemplate is the root .gitignore content for every generated
// project.
const baseIgnoreTemplate = `# Dependencies
node_modules/
.pnp
.pnp.js

# Env files
.env
.env.local

# Build output
dist/
.turbo/

# LangGraph
.langgraph_api/

# Misc
.DS_Store
*.log
`

// nextjsIgnoreTemplate is the web-app .gitignore for the Next.js framework.
const nextjsIgnoreTemplate = `# Next.js
/.next/
/out/
next-env.d.ts

# Production
/build

# Vercel
.vercel

# TypeScript
*.tsbuildinfo
`

// viteIgnoreTemplate is the web-app .gitignore for the Vite framework.
const viteIgnoreTemplate = `# Vite
dist/
dist-ssr/
*.local

# Editor directories
.vscode/*
!.vscode/extensions.json
.idea
`

var frameworkIgnoreTemplates = map[catalog.Framework]string{
	catalog.FrameworkNextJS: nextjsIgnoreTemplate,
	catalog.FrameworkVite:   viteIgnoreTemplate,
}

// writeIgnoreFiles writes the root ignore file from the base template and a
// second ignore file scoped to the web app, chosen by framework identity.
func (s *Synthesizer) writeIgnoreFiles(root string, sel selection.Selection, lay layout.Policy) error {
	rootPath := filepath.Join(root, ".gitignore")
	if err := s.fs.WriteFileAtomic(rootPath, []byte(baseIgnoreTemplate), 0o644); err != nil {
		return err
	}

	tmpl, ok := frameworkIgnoreTemplates[sel.Framework]
	if !ok {
		return fmt.Errorf("no ignore template for framework %q", sel.Framework)
	}
	return s.fs.WriteFileAtomic(filepath.Join(root, lay.WebIgnoreFile()), []byte(tmpl), 0o644)
}
