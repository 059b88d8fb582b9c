package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is decoded from every file and collects the top-level blocks.
type fileRoot struct {
	Pages            []*pageBlock            `hcl:"page,block"`
	ApplicationTypes []*applicationTypeBlock `hcl:"application_type,block"`
}

type pageBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type applicationTypeBlock struct {
	Name        string  `hcl:"name,label"`
	Description *string `hcl:"description,optional"`
}

// Block types allowed wherever children may appear.
const (
	blockColumns     = "columns"
	blockRows        = "rows"
	blockContainer   = "container"
	blockApplication = "application"
)

var childBlocks = []hcl.BlockHeaderSchema{
	{Type: blockColumns},
	{Type: blockRows},
	{Type: blockContainer, LabelNames: []string{"template"}},
	{Type: blockApplication, LabelNames: []string{"type", "name"}},
}

var pageBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "site", Required: true},
		{Name: "display_name"},
		{Name: "description"},
		{Name: "access"},
		{Name: "edit"},
		{Name: "show_max_window"},
	},
	Blocks: childBlocks,
}

var containerBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "access"},
		{Name: "move_apps"},
		{Name: "move_containers"},
	},
	Blocks: childBlocks,
}

var applicationBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "content_id", Required: true},
		{Name: "title"},
		{Name: "description"},
		{Name: "access"},
		{Name: "preferences"},
	},
}
