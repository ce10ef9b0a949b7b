package manifest

import (
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/jakoblorz/toolscout/internal/filesystem"
)

// goFrameworks maps Go module paths to framework identifiers. Besides
// the exact path, a `path/vN` major-version suffix also matches, so
// "github.com/labstack/echo/v4" contributes "echo".
var goFrameworks = map[string]string{
	"github.com/gin-gonic/gin":    "gin",
	"github.com/labstack/echo":    "echo",
	"github.com/gofiber/fiber":    "fiber",
	"github.com/go-chi/chi":       "chi",
	"github.com/gorilla/mux":      "gorilla",
	"github.com/spf13/cobra":      "cobra",
	"google.golang.org/grpc":      "grpc",
	"k8s.io/client-go":            "kubernetes",
	"github.com/hashicorp/terraform-plugin-sdk": "terraform",
}

// ReadGoMod reads go.mod using the official modfile parser. Indirect
// requirements are skipped; only declared dependencies count.
func ReadGoMod(fs filesystem.FileSystem, root string) Contribution {
	path := filepath.Join(root, "go.mod")
	data, err := fs.ReadFile(path)
	if err != nil {
		return Contribution{}
	}

	modFile, err := modfile.Parse(path, data, nil)
	if err != nil {
		return Contribution{}
	}

	var deps []string
	for _, req := range modFile.Require {
		if req.Indirect {
			continue
		}
		deps = append(deps, req.Mod.Path)
	}

	return Contribution{
		Dependencies: deps,
		Frameworks:   mapGoFrameworks(deps),
	}
}

func mapGoFrameworks(deps []string) []string {
	var frameworks []string
	seen := make(map[string]struct{})
	for _, dep := range deps {
		fw, ok := goFrameworks[dep]
		if !ok {
			fw, ok = goFrameworks[trimMajorVersion(dep)]
		}
		if !ok {
			continue
		}
		if _, dup := seen[fw]; dup {
			continue
		}
		seen[fw] = struct{}{}
		frameworks = append(frameworks, fw)
	}
	return frameworks
}

// trimMajorVersion removes a trailing /vN major-version path element.
func trimMajorVersion(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}
	last := path[idx+1:]
	if len(last) < 2 || last[0] != 'v' {
		return path
	}
	for _, r := range last[1:] {
		if r < '0' || r > '9' {
			return path
		}
	}
	return path[:idx]
}
