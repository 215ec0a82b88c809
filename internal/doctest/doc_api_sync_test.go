package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publicPkgs maps each public package name to its directory relative to the
// repository root.
var publicPkgs = map[string]string{
	"typedpath": ".",
	"grammar":   "grammar",
	"component": "component",
	"pathbuf":   "pathbuf",
	"inspect":   "inspect",
	"tperrors":  "tperrors",
}

// internalPkgs are packages that must not appear in user-facing examples.
var internalPkgs = []string{"cliutil", "compbuf", "mcpserver", "options", "testutil"}

func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed")
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// TestDocCodeExampleAPISync verifies that the code examples in package doc
// comments reference symbols that actually exist in the public packages, and
// never reference internal packages.
func TestDocCodeExampleAPISync(t *testing.T) {
	root := repoRoot(t)
	symbols := loadSymbols(t, root)

	names := make([]string, 0, len(publicPkgs)+len(internalPkgs))
	for pkg := range publicPkgs {
		names = append(names, pkg)
	}
	names = append(names, internalPkgs...)
	sort.Strings(names)
	refRe := regexp.MustCompile(`\b(` + strings.Join(names, "|") + `)\.([A-Z][a-zA-Z0-9]*)`)

	for pkg, dir := range publicPkgs {
		t.Run(pkg, func(t *testing.T) {
			doc := packageDoc(t, filepath.Join(root, dir))
			require.NotEmpty(t, doc, "package %s has no doc comment", pkg)

			for i, line := range strings.Split(doc, "\n") {
				if !strings.HasPrefix(line, "\t") {
					continue
				}
				for _, match := range refRe.FindAllStringSubmatch(line, -1) {
					ref, sym := match[1], match[2]
					if slices.Contains(internalPkgs, ref) {
						t.Errorf("%s doc line %d: references internal package %s.%s", pkg, i+1, ref, sym)
						continue
					}
					assert.True(t, symbols[ref][sym],
						"%s doc line %d: references %s.%s but no such exported symbol exists", pkg, i+1, ref, sym)
				}
			}
		})
	}
}

// TestDocLinksResolve verifies that [Name], [Type.Method] and [pkg.Name] doc
// links in package doc comments point at existing symbols.
func TestDocLinksResolve(t *testing.T) {
	root := repoRoot(t)
	symbols := loadSymbols(t, root)
	linkRe := regexp.MustCompile(`\[([A-Za-z][A-Za-z0-9]*(?:\.[A-Z][A-Za-z0-9]*)?)\]`)

	for pkg, dir := range publicPkgs {
		t.Run(pkg, func(t *testing.T) {
			doc := packageDoc(t, filepath.Join(root, dir))
			for i, line := range strings.Split(doc, "\n") {
				if strings.HasPrefix(line, "\t") {
					continue
				}
				for _, match := range linkRe.FindAllStringSubmatch(line, -1) {
					link := match[1]
					owner, name, qualified := strings.Cut(link, ".")
					switch {
					case qualified && symbols[owner] != nil:
						assert.True(t, symbols[owner][name], "%s doc line %d: broken link [%s]", pkg, i+1, link)
					default:
						assert.True(t, symbols[pkg][link], "%s doc line %d: broken link [%s]", pkg, i+1, link)
					}
				}
			}
		})
	}
}


func loadSymbols(t *testing.T, root string) map[string]map[string]bool {
	t.Helper()
	symbols := make(map[string]map[string]bool, len(publicPkgs))
	for pkg, dir := range publicPkgs {
		symbols[pkg] = extractExportedSymbols(t, filepath.Join(root, dir))
	}
	return symbols
}

// packageDoc returns the text of the package doc comment found in dir.
func packageDoc(t *testing.T, dir string) string {
	t.Helper()
	for _, file := range parseDir(t, dir, goparser.PackageClauseOnly|goparser.ParseComments) {
		if file.Doc != nil {
			return file.Doc.Text()
		}
	}
	return ""
}

func parseDir(t *testing.T, dir string, mode goparser.Mode) []*ast.File {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err, "reading package dir %s", dir)

	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := goparser.ParseFile(fset, filepath.Join(dir, name), nil, mode)
		require.NoError(t, err, "parsing %s", name)
		files = append(files, f)
	}
	return files
}

// extractExportedSymbols uses go/ast to find all exported names (functions,
// types, constants, variables) in the given package directory, excluding test
// files. Methods are recorded as Type.Method.
func extractExportedSymbols(t *testing.T, dir string) map[string]bool {
	t.Helper()

	syms := make(map[string]bool)
	for _, file := range parseDir(t, dir, 0) {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if !d.Name.IsExported() {
					continue
				}
				if d.Recv == nil || len(d.Recv.List) == 0 {
					syms[d.Name.Name] = true
					continue
				}
				if recv := receiverName(d.Recv.List[0].Type); recv != "" {
					syms[recv+"."+d.Name.Name] = true
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						if s.Name.IsExported() {
							syms[s.Name.Name] = true
						}
					case *ast.ValueSpec:
						for _, name := range s.Names {
							if name.IsExported() {
								syms[name.Name] = true
							}
						}
					}
				}
			}
		}
	}
	return syms
}

// receiverName returns the type name of a method receiver such as T, *T or
// *T[G].
func receiverName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return receiverName(e.X)
	case *ast.IndexExpr:
		return receiverName(e.X)
	case *ast.IndexListExpr:
		return receiverName(e.X)
	case *ast.Ident:
		return e.Name
	default:
		return ""
	}
}
