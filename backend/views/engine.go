package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Layout wraps every page; it pulls the page in with {{embed}}.
const Layout = "layout"

// NewEngine returns the Fiber views engine over the embedded templates.
// Templates are named after their file, without the extension.
func NewEngine() *html.Engine {
	root, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFuncMap(map[string]interface{}{
		"hours": func(h float64) string { return strconv.FormatFloat(h, 'f', 1, 64) },
		"hoursInput": func(h float64) string {
			if h == 0 {
				return ""
			}
			return strconv.FormatFloat(h, 'f', -1, 64)
		},
		"coord": func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
	})
	return engine
}
