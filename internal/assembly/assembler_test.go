package assembly

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/pagegrid/internal/application"
	"github.com/specialistvlad/pagegrid/internal/composition"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/page"
	"github.com/specialistvlad/pagegrid/internal/pageid"
	"github.com/specialistvlad/pagegrid/internal/registry"
	"github.com/specialistvlad/pagegrid/internal/security"
	"github.com/specialistvlad/pagegrid/modules/gadget"
	"github.com/specialistvlad/pagegrid/modules/portlet"
	"github.com/specialistvlad/pagegrid/modules/wsrp"
)

func newTestAssembler() *Assembler {
	r := registry.New(context.Background())
	for _, m := range []registry.Module{&portlet.Module{}, &gadget.Module{}, &wsrp.Module{}} {
		m.Register(r)
	}
	return New(r)
}

func appNode(typ, name, contentID string) *config.Node {
	return &config.Node{
		Kind:        config.NodeApplication,
		Application: &config.ApplicationSpec{Type: typ, Name: name, ContentID: contentID},
	}
}

func containerNode(template string, children ...*config.Node) *config.Node {
	return &config.Node{Kind: config.NodeContainer, Template: template, Children: children}
}

func mustApp(t *testing.T, typ application.Type, name, contentID string) *application.Application {
	t.Helper()
	app, err := application.New(typ, name, contentID)
	require.NoError(t, err)
	return app
}

func TestAssemble_MatchesHandBuiltPage(t *testing.T) {
	// --- Arrange ---
	users := []string{"member:/platform/users"}
	cols := containerNode(config.TemplateColumns,
		appNode("portlet", "story", "web/Story"),
		containerNode(config.TemplateRows,
			appNode("gadget", "ch1", "Ch1"),
			appNode("gadget", "ch2", "Ch2"),
		),
	)
	cols.MoveApps = users
	cp := &config.Page{
		Name:   "home",
		Site:   "portal.classic",
		Access: users,
		Layout: []*config.Node{
			cols,
			appNode("wsrp", "remote", "selfv2./samples.Remote"),
		},
	}

	site := pageid.SiteKey{Type: pageid.SiteTypePortal, Name: "classic"}
	usersPerm := security.MustParsePermission(users...)
	pb, err := page.NewBuilder().
		NewColumnsBuilder().
		MoveAppsPermission(usersPerm).
		Child(mustApp(t, application.TypePortlet, "story", "web/Story")).
		NewRowsBuilder().
		Child(mustApp(t, application.TypeGadget, "ch1", "Ch1")).
		Child(mustApp(t, application.TypeGadget, "ch2", "Ch2")).
		BuildToTop()
	require.NoError(t, err)
	expected, err := pb.
		Child(mustApp(t, application.TypeWSRP, "remote", "selfv2./samples.Remote")).
		Site(site).
		Name("home").
		AccessPermission(usersPerm).
		Build()
	require.NoError(t, err)

	// --- Act ---
	actual, err := newTestAssembler().Assemble(context.Background(), cp)

	// --- Assert ---
	require.NoError(t, err)
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("assembled page mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_CustomTemplateAndPermissions(t *testing.T) {
	const ref = "app:/groovy/portal/webui/container/UITabContainer.gtmpl"
	node := containerNode(ref, appNode("portlet", "news", "web/News"))
	node.Access = []string{"*:/platform/guests"}
	node.MoveContainers = []string{"manager:/platform/users"}
	cp := &config.Page{Name: "news", Site: "group./platform/guests", Layout: []*config.Node{node}}

	p, err := newTestAssembler().Assemble(context.Background(), cp)

	require.NoError(t, err)
	assert.Equal(t, "group./platform/guests.news", p.ID.String())
	require.Len(t, p.Children, 1)
	c := p.Children[0].(*composition.Container)
	assert.Equal(t, composition.Template(ref), c.Template)
	assert.True(t, c.AccessPermission.Equal(security.MustParsePermission("*:/platform/guests")))
	assert.True(t, c.MoveAppsPermission.Equal(composition.DefaultMoveAppsPermission))
	assert.True(t, c.MoveContainersPermission.Equal(security.MustParsePermission("manager:/platform/users")))
}

func TestAssemble_DeepNestingKeepsOrder(t *testing.T) {
	leafs := []*config.Node{
		appNode("portlet", "a", "web/A"),
		containerNode(config.TemplateRows,
			containerNode(config.TemplateColumns, appNode("gadget", "b", "B")),
			appNode("gadget", "c", "C"),
		),
		appNode("portlet", "d", "web/D"),
	}
	cp := &config.Page{Name: "deep", Site: "portal.classic", Layout: []*config.Node{containerNode(config.TemplateRows, leafs...)}}

	p, err := newTestAssembler().Assemble(context.Background(), cp)
	require.NoError(t, err)

	var visited []string
	err = p.Walk(func(item composition.ContainerItem, depth int) error {
		switch v := item.(type) {
		case *application.Application:
			visited = append(visited, v.Name)
		case *composition.Container:
			visited = append(visited, v.Template.Name())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"rows", "a", "rows", "columns", "b", "c", "d"}, visited)
}

func TestAssemble_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		page        *config.Page
		errContains string
	}{
		{
			name:        "invalid site",
			page:        &config.Page{Name: "home", Site: "portal"},
			errContains: `page "home"`,
		},
		{
			name:        "invalid page access",
			page:        &config.Page{Name: "home", Site: "portal.classic", Access: []string{"nobody"}},
			errContains: "access",
		},
		{
			name: "unknown application type",
			page: &config.Page{Name: "home", Site: "portal.classic", Layout: []*config.Node{
				appNode("applet", "x", "X"),
			}},
			errContains: "unknown application type 'applet'",
		},
		{
			name: "invalid container permission",
			page: &config.Page{Name: "home", Site: "portal.classic", Layout: []*config.Node{
				{Kind: config.NodeContainer, Template: config.TemplateRows, MoveApps: []string{"Everyone", "*:/a"}},
			}},
			errContains: "move_apps",
		},
		{
			name: "invalid nested application",
			page: &config.Page{Name: "home", Site: "portal.classic", Layout: []*config.Node{
				containerNode(config.TemplateRows, containerNode(config.TemplateColumns, appNode("portlet", "bad", "NoSlash"))),
			}},
			errContains: "application 'bad'",
		},
		{
			name: "empty custom template",
			page: &config.Page{Name: "home", Site: "portal.classic", Layout: []*config.Node{
				containerNode(""),
			}},
			errContains: "invalid argument",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestAssembler().Assemble(context.Background(), tc.page)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
