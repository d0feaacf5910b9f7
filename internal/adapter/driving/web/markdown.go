package web

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Os relatórios usam uma linha por campo e listas com "- ".
var reportMarkdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

// reportHTML converte o texto do relatório em HTML. O renderer escapa HTML
// embutido, então o resultado pode ir direto para o template.
func reportHTML(text string) template.HTML {
	var buf bytes.Buffer
	if err := reportMarkdown.Convert([]byte(text), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(buf.String())
}
