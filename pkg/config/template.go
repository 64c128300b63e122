package config

// starterConfig is written by "gomdsite init".
const starterConfig = `# gomdsite configuration

# Directory holding Markdown sources. Every .md file becomes an .html page.
content_dir: content

# HTML template. {{ Title }} and {{ Content }} are substituted per page.
template: template.html

# Directory copied verbatim into the output directory.
static_dir: static

# Output directory for the generated site.
output_dir: public

# Converter: builtin or goldmark
engine: builtin

# Markdown flavor for the goldmark engine: commonmark or gfm
# flavor: commonmark

# Add class="language-X" to code blocks (builtin engine)
# annotate_code: false

# Remove the output directory before building
# clean: true

# Content patterns to skip (glob patterns, relative to content_dir)
# ignore:
#   - "drafts/**"
`

// starterTemplate is a minimal page template with both placeholders.
const starterTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{ Title }}</title>
    <link href="/index.css" rel="stylesheet">
  </head>
  <body>
    <article>{{ Content }}</article>
  </body>
</html>
`

// GenerateTemplate returns a commented starter configuration file.
func GenerateTemplate() []byte {
	return []byte(starterConfig)
}

// GeneratePageTemplate returns a starter HTML page template.
func GeneratePageTemplate() []byte {
	return []byte(starterTemplate)
}
