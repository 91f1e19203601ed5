// Package web embeds the dashboard's browser assets: the page templates and
// the static stylesheet and chart bootstrap script.
package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static templates
var assets embed.FS

// StaticFS returns the stylesheet and script files served under /static/.
func StaticFS() fs.FS {
	return subFS("static")
}

// TemplatesFS returns the HTML page and layout templates.
func TemplatesFS() fs.FS {
	return subFS("templates")
}

func subFS(dir string) fs.FS {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		log.Fatalf("embedded %s assets missing: %v", dir, err)
	}
	return sub
}
