package arch_test

import (
	"go/ast"
	"go/parser"
	"testing"
)

// allowedColocations lists interfaces defined next to an implementation.
var allowedColocations = map[string]map[string]bool{
	// Invoker is consumed by lockfile, venv, pipeline and cmd; Exec is the
	// os/exec implementation.
	"runner": {"Invoker": true},
	// Nop and Multi are the trivial observers; ui and telemetry provide the
	// real ones.
	"progress": {"Observer": true},
}

// TestInterfacePlacement flags interfaces defined in the same package as a
// type whose methods satisfy them, unless allowlisted.
func TestInterfacePlacement(t *testing.T) {
	t.Parallel()

	for _, pkg := range internalPackages(t) {
		pkg := pkg
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			_, files := parsePackage(t, pkg, parser.SkipObjectResolution)
			methods := make(map[string]map[string]bool)
			ifaces := make(map[string][]string)
			for _, f := range files {
				for _, decl := range f.Decls {
					switch d := decl.(type) {
					case *ast.FuncDecl:
						if recv := receiverTypeName(d.Recv); recv != "" {
							if methods[recv] == nil {
								methods[recv] = make(map[string]bool)
							}
							methods[recv][d.Name.Name] = true
						}
					case *ast.GenDecl:
						for _, spec := range d.Specs {
							ts, ok := spec.(*ast.TypeSpec)
							if !ok {
								continue
							}
							if it, ok := ts.Type.(*ast.InterfaceType); ok {
								for _, m := range it.Methods.List {
									for _, n := range m.Names {
										ifaces[ts.Name.Name] = append(ifaces[ts.Name.Name], n.Name)
									}
								}
							}
						}
					}
				}
			}

			for name, want := range ifaces {
				if len(want) == 0 || allowedColocations[pkg][name] {
					continue
				}
				for typeName, have := range methods {
					if implementsAll(want, have) {
						t.Errorf("interface %s defined in %s but %s in the same package implements it; move the interface to its consumer",
							name, pkg, typeName)
					}
				}
			}
		})
	}
}

func receiverTypeName(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}
	expr := fl.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func implementsAll(want []string, have map[string]bool) bool {
	for _, m := range want {
		if !have[m] {
			return false
		}
	}
	return true
}
