package catalog

// Framework identifies one of the supported web frameworks.
type Framework string

const (
	FrameworkNextJS Framework = "nextjs"
	FrameworkVite   Framework = "vite"
)

// FrameworkOrder is the canonical presentation order; the first entry is the
// interactive default.
var FrameworkOrder = []Framework{FrameworkNextJS, FrameworkVite}

// frameworkTemplates maps a framework to its template name.
var frameworkTemplates = map[Framework]string{
	FrameworkNextJS: "web-nextjs",
	FrameworkVite:   "web-vite",
}

// FrameworkTemplate returns the template name for a framework.
func FrameworkTemplate(f Framework) (string, bool) {
	t, ok := frameworkTemplates[f]
	return t, ok
}

// IsFrameworkID reports whether s names a known framework.
func IsFrameworkID(s string) bool {
	_, ok := frameworkTemplates[Framework(s)]
	return ok
}

// MonorepoTemplate is the template name of the monorepo skeleton every
// generated project starts from.
const MonorepoTemplate = "monorepo"
