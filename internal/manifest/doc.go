// Package manifest loads suite definitions from HCL files.
//
// A suite is a named, reusable selection of examples: explicit names via
// `include`, whole categories via `categories`, or both. Suites let CI runs
// and humans share selections without repeating --name/--category flags.
//
//	suite "smoke" {
//	  description = "fast confidence check"
//	  include     = ["kw_defer", "dp_observer_basic"]
//	  categories  = [category.keyword]
//	  timeout     = "2s"
//	}
//
// Files are discovered recursively, parsed with hashicorp/hcl, and evaluated
// against a small eval context exposing the known category tags as the
// `category` object. After loading, the model is validated against the
// registry so a typo in a suite fails startup rather than silently running
// nothing.
package manifest
