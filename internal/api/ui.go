package api

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Embedded page markup and glue script. The pages are thin: they
// activate themselves against /api/v1/pages/:page and display the
// engine's rendered view state; all synchronization logic is server-side.
//
//go:embed static
var embeddedUI embed.FS

func getEmbedFS() static.ServeFileSystem {
	fs := static.EmbedFolder(embeddedUI, "static")
	if fs == nil {
		panic("failed to get embedded UI filesystem")
	}
	return fs
}

// MountUI serves the embedded panel pages, falling back to index.html
// for unknown non-API routes.
func MountUI(r *gin.Engine, logger *slog.Logger) {
	uiFS := getEmbedFS()
	r.Use(static.Serve("/", uiFS))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") || strings.HasPrefix(c.Request.RequestURI, "/swagger") {
			return
		}
		index, err := uiFS.Open("index.html")
		if err != nil {
			if logger != nil {
				logger.Error("failed to open index.html", "error", err)
			}
			return
		}
		defer index.Close()
		stat, _ := index.Stat()
		http.ServeContent(c.Writer, c.Request, "index.html", stat.ModTime(), index)
	})
}
