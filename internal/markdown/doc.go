// Package markdown turns raw documentation files into the immutable Document
// model consumed by the condenser: a frontmatter prefix, an ordered section
// hierarchy with resolved parent headings, and the fenced code blocks
// embedded in each section. Only headings, fenced code, and the metadata
// prefix are modeled; everything else is carried as opaque prose.
package markdown
