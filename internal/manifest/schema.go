package manifest

// suiteBlock is the HCL-facing schema of a `suite` block.
type suiteBlock struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	Include     []string `hcl:"include,optional"`
	Categories  []string `hcl:"categories,optional"`
	Timeout     string   `hcl:"timeout,optional"`
}

// fileSchema is the top-level structure of one suite manifest file.
type fileSchema struct {
	Suites []*suiteBlock `hcl:"suite,block"`
}
