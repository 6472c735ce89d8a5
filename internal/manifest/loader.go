package manifest

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/exemplar/internal/ctxlog"
	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/fsutil"
)

// evalContext exposes the known category tags to suite expressions, so
// manifests can write `categories = [category.keyword]` instead of a bare
// string that drifts silently when a tag is renamed.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"category": cty.ObjectVal(map[string]cty.Value{
				"keyword":           cty.StringVal(example.CategoryKeyword),
				"principle":         cty.StringVal(example.CategoryPrinciple),
				"pattern_basic":     cty.StringVal(example.CategoryPatternBasic),
				"pattern_optimized": cty.StringVal(example.CategoryPatternOptimized),
			}),
		},
	}
}

// Load discovers every .hcl file under path, parses the suite blocks, and
// returns the combined model. A path with no manifest files yields an empty
// model, not an error.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading suite manifests.", "path", path)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to scan manifest path %s: %w", path, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path.", "path", path)
		return newModel(), nil
	}

	model := newModel()
	parser := hclparse.NewParser()
	evalCtx := evalContext()

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var schema fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &schema); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, block := range schema.Suites {
			suite, err := translateSuite(block, filePath)
			if err != nil {
				return nil, err
			}
			if err := model.add(suite); err != nil {
				return nil, err
			}
		}
		logger.Debug("Loaded suites from manifest file.", "file", filePath, "suites", len(schema.Suites))
	}

	logger.Info("Suite manifests loaded.", "files", len(filePaths), "suites", model.Len())
	return model, nil
}

// translateSuite converts the HCL-specific schema into the agnostic model.
func translateSuite(block *suiteBlock, filePath string) (*Suite, error) {
	suite := &Suite{
		Name:        block.Name,
		Description: block.Description,
		Include:     block.Include,
		Categories:  block.Categories,
		File:        filePath,
	}
	if suite.Name == "" {
		return nil, fmt.Errorf("suite in %s has an empty name", filePath)
	}
	if block.Timeout != "" {
		d, err := time.ParseDuration(block.Timeout)
		if err != nil {
			return nil, fmt.Errorf("suite %q in %s has an invalid timeout: %w", block.Name, filePath, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("suite %q in %s has a negative timeout", block.Name, filePath)
		}
		suite.Timeout = d
	}
	return suite, nil
}
