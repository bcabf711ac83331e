package pgparse_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/leapstack-labs/pgparse/"

// layers lists the non-stdlib imports each package may use. The parsing
// packages form a stack: token, scanner, ast, parser, then the consumers.
var layers = map[string][]string{
	"token":   nil,
	"scanner": {"pkg/token"},
	"ast":     {"github.com/goccy/go-json"},
	"parser":  {"pkg/token", "pkg/scanner", "pkg/ast"},
	"plpgsql": {"pkg/token", "pkg/scanner", "pkg/ast", "pkg/parser"},
	"fingerprint": {
		"pkg/ast", "pkg/parser",
		"github.com/goccy/go-json", "github.com/zeebo/xxh3",
	},
	"splitter": {"pkg/token", "pkg/scanner"},
}

func packageImports(t *testing.T, dir string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	imports := map[string][]string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		// Skip test files
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			// stdlib
			if !strings.Contains(importPath, ".") {
				continue
			}
			imports[entry.Name()] = append(imports[entry.Name()], importPath)
		}
	}
	return imports
}

// ---------- Layering Tests ----------

func TestPackageLayering(t *testing.T) {
	for pkg, allowed := range layers {
		t.Run(pkg, func(t *testing.T) {
			ok := map[string]bool{}
			for _, a := range allowed {
				if strings.HasPrefix(a, "pkg/") {
					a = modulePath + a
				}
				ok[a] = true
			}
			for file, imports := range packageImports(t, filepath.Join("..", pkg)) {
				for _, imp := range imports {
					if !ok[imp] {
						t.Errorf("pkg/%s/%s imports forbidden package: %s", pkg, file, imp)
					}
				}
			}
		})
	}
}

func TestOnlyFacadeImportsInternal(t *testing.T) {
	for pkg := range layers {
		for file, imports := range packageImports(t, filepath.Join("..", pkg)) {
			for _, imp := range imports {
				if strings.Contains(imp, "/internal/") {
					t.Errorf("pkg/%s/%s imports internal package: %s", pkg, file, imp)
				}
			}
		}
	}
}
