package composition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/pagegrid/internal/security"
)

// leaf is a minimal ContainerItem used in place of a real application.
type leaf string

func (l leaf) ItemKind() string { return "leaf" }

// leafItem is a pointer-receiver ContainerItem.
type leafItem struct{ kind string }

func (l *leafItem) ItemKind() string { return l.kind }

// testTop embeds a LayoutBuilder the way an artifact builder does.
type testTop struct {
	*LayoutBuilder[*testTop]
}

func newTestTop() *testTop {
	top := &testTop{}
	top.LayoutBuilder = NewLayoutBuilder(top)
	return top
}

func TestBuild_IdempotentSnapshots(t *testing.T) {
	b := newTestTop().NewRowsBuilder().Child(leaf("a")).Child(leaf("b"))

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
	assert.NotSame(t, first, second)
	assert.Equal(t, StateOpen, b.State(), "Build must not finalize the builder")
}

func TestBuild_AccumulatingSnapshotsAreIndependent(t *testing.T) {
	b := NewContainerBuilder[*testTop](TemplateColumns)

	first, err := b.Child(leaf("x")).Build()
	require.NoError(t, err)
	second, err := b.Child(leaf("y")).Build()
	require.NoError(t, err)

	assert.Equal(t, []ContainerItem{leaf("x")}, first.Children)
	assert.Equal(t, []ContainerItem{leaf("x"), leaf("y")}, second.Children)
}

func TestChildren_NilClears(t *testing.T) {
	c, err := NewContainerBuilder[*testTop](TemplateRows).
		Child(leaf("x")).
		Children(nil).
		Build()

	require.NoError(t, err)
	assert.Empty(t, c.Children)
}

func TestChildren_ReplacesInsteadOfAppending(t *testing.T) {
	items := []ContainerItem{leaf("b"), leaf("c")}
	b := NewContainerBuilder[*testTop](TemplateRows).Child(leaf("a")).Children(items)

	items[0] = leaf("mutated")
	c, err := b.Build()

	require.NoError(t, err)
	assert.Equal(t, []ContainerItem{leaf("b"), leaf("c")}, c.Children)
}

func TestChildren_DuplicatesAllowed(t *testing.T) {
	c, err := NewContainerBuilder[*testTop](TemplateRows).
		Child(leaf("a")).
		Child(leaf("a")).
		Build()

	require.NoError(t, err)
	assert.Len(t, c.Children, 2)
}

func TestBuild_DefaultPermissions(t *testing.T) {
	c, err := NewContainerBuilder[*testTop](TemplateRows).Build()
	require.NoError(t, err)

	assert.True(t, c.AccessPermission.Equal(DefaultAccessPermission))
	assert.True(t, c.MoveAppsPermission.Equal(DefaultMoveAppsPermission))
	assert.True(t, c.MoveContainersPermission.Equal(DefaultMoveContainersPermission))
}

func TestBuild_ExplicitPermissions(t *testing.T) {
	admins := security.MustParsePermission("*:/platform/administrators")
	users := security.MustParsePermission("member:/platform/users")

	c, err := NewContainerBuilder[*testTop](TemplateColumns).
		AccessPermission(users).
		MoveAppsPermission(admins).
		MoveContainersPermission(admins).
		Build()

	require.NoError(t, err)
	assert.True(t, c.AccessPermission.Equal(users))
	assert.True(t, c.MoveAppsPermission.Equal(admins))
	assert.True(t, c.MoveContainersPermission.Equal(admins))
}

func TestBuildToParent_TwiceFails(t *testing.T) {
	rows := newTestTop().NewColumnsBuilder().NewRowsBuilder()

	_, err := rows.BuildToParent()
	require.NoError(t, err)
	assert.Equal(t, StateFinalized, rows.State())

	_, err = rows.BuildToParent()
	require.ErrorIs(t, err, ErrIllegalState)
}

func TestBuildToParent_WithoutParentFails(t *testing.T) {
	top := newTestTop()
	b := top.NewColumnsBuilder().Child(leaf("a"))

	parent, err := b.BuildToParent()

	require.ErrorIs(t, err, ErrIllegalState)
	assert.Nil(t, parent)
	assert.Equal(t, StateOpen, b.State())
	assert.Empty(t, top.Items())
}

func TestBuildToParent_FinalizedParentFails(t *testing.T) {
	columns := newTestTop().NewColumnsBuilder()
	rows := columns.NewRowsBuilder()
	_, err := columns.BuildToTop()
	require.NoError(t, err)

	_, err = rows.BuildToParent()
	require.ErrorIs(t, err, ErrIllegalState)
}

func TestBuildToTop_AfterBuildToParentFails(t *testing.T) {
	rows := newTestTop().NewColumnsBuilder().NewRowsBuilder()
	_, err := rows.BuildToParent()
	require.NoError(t, err)

	_, err = rows.BuildToTop()
	require.ErrorIs(t, err, ErrIllegalState)
}

func TestBuildToTop_DetachedBuilderFails(t *testing.T) {
	b := NewContainerBuilder[*testTop](TemplateRows)

	_, err := b.BuildToTop()
	require.ErrorIs(t, err, ErrIllegalState)

	_, err = b.NewColumnsBuilder().BuildToTop()
	require.ErrorIs(t, err, ErrIllegalState)
}

func TestBuildToTop_DirectChildOfTop(t *testing.T) {
	top := newTestTop()

	got, err := top.NewColumnsBuilder().Child(leaf("a")).BuildToTop()

	require.NoError(t, err)
	assert.Same(t, top, got)
	require.Len(t, top.Items(), 1)
	c := top.Items()[0].(*Container)
	assert.Equal(t, TemplateColumns, c.Template)
	assert.Equal(t, []ContainerItem{leaf("a")}, c.Children)
}

// buildNested builds columns(a, rows(b, custom(c))) and hands the innermost
// builder to unwind.
func buildNested(t *testing.T, unwind func(*ContainerBuilder[*testTop]) (*testTop, error)) []ContainerItem {
	t.Helper()
	top := newTestTop()
	inner := top.NewColumnsBuilder().
		Child(leaf("a")).
		NewRowsBuilder().
		Child(leaf("b")).
		NewTemplateContainerBuilder("app:/custom.gtmpl").
		Child(leaf("c"))

	got, err := unwind(inner)
	require.NoError(t, err)
	require.Same(t, top, got)
	return top.Items()
}

func TestBuildToTop_UnwindingEquivalence(t *testing.T) {
	stepwise := buildNested(t, func(c *ContainerBuilder[*testTop]) (*testTop, error) {
		b, err := c.BuildToParent()
		if err != nil {
			return nil, err
		}
		a, err := b.BuildToParent()
		if err != nil {
			return nil, err
		}
		return a.BuildToTop()
	})
	direct := buildNested(t, func(c *ContainerBuilder[*testTop]) (*testTop, error) {
		return c.BuildToTop()
	})

	if diff := cmp.Diff(stepwise, direct); diff != "" {
		t.Errorf("unwinding mismatch (-stepwise +direct):\n%s", diff)
	}

	expected := []ContainerItem{
		&Container{
			Template: TemplateColumns,
			Children: []ContainerItem{
				leaf("a"),
				&Container{
					Template: TemplateRows,
					Children: []ContainerItem{
						leaf("b"),
						&Container{
							Template:                 "app:/custom.gtmpl",
							Children:                 []ContainerItem{leaf("c")},
							AccessPermission:         DefaultAccessPermission,
							MoveAppsPermission:       DefaultMoveAppsPermission,
							MoveContainersPermission: DefaultMoveContainersPermission,
						},
					},
					AccessPermission:         DefaultAccessPermission,
					MoveAppsPermission:       DefaultMoveAppsPermission,
					MoveContainersPermission: DefaultMoveContainersPermission,
				},
			},
			AccessPermission:         DefaultAccessPermission,
			MoveAppsPermission:       DefaultMoveAppsPermission,
			MoveContainersPermission: DefaultMoveContainersPermission,
		},
	}
	if diff := cmp.Diff(expected, direct); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildToTop_FinalizesWholeStack(t *testing.T) {
	columns := newTestTop().NewColumnsBuilder()
	rows := columns.NewRowsBuilder()

	_, err := rows.BuildToTop()
	require.NoError(t, err)

	assert.Equal(t, StateFinalized, rows.State())
	assert.Equal(t, StateFinalized, columns.State())
}

func TestBuildToTop_FailingAncestorLeavesStackUntouched(t *testing.T) {
	top := newTestTop()
	columns := top.NewColumnsBuilder()
	rows := columns.NewRowsBuilder()
	orphan := rows.NewRowsBuilder()
	_, err := rows.BuildToTop()
	require.NoError(t, err)

	_, err = orphan.BuildToTop()

	require.ErrorIs(t, err, ErrIllegalState)
	assert.Equal(t, StateOpen, orphan.State())
	assert.Len(t, top.Items(), 1)
}

func TestOrdering_ChildrenAndNestedContainers(t *testing.T) {
	top := newTestTop()
	_, err := top.NewRowsBuilder().
		Child(leaf("1")).
		NewColumnsBuilder().Child(leaf("2")).BuildToParent()
	require.NoError(t, err)

	rows := top.NewRowsBuilder().Child(leaf("1"))
	rows, err = rows.NewColumnsBuilder().Child(leaf("2")).BuildToParent()
	require.NoError(t, err)
	rows.Child(leaf("3"))
	_, err = rows.BuildToTop()
	require.NoError(t, err)

	require.Len(t, top.Items(), 1, "the first rows builder was never finished")
	c := top.Items()[0].(*Container)
	require.Len(t, c.Children, 3)
	assert.Equal(t, leaf("1"), c.Children[0])
	assert.Equal(t, KindContainer, c.Children[1].ItemKind())
	assert.Equal(t, leaf("3"), c.Children[2])
}

func TestBuild_AfterFinalizeIsDetached(t *testing.T) {
	top := newTestTop()
	b := top.NewRowsBuilder().Child(leaf("a"))
	_, err := b.BuildToTop()
	require.NoError(t, err)

	b.Child(leaf("late")).AccessPermission(security.MustParsePermission("*:/nobody"))
	c, err := b.Build()

	require.NoError(t, err)
	assert.Len(t, c.Children, 2)
	assert.True(t, c.AccessPermission.Equal(DefaultAccessPermission), "permission setters are ignored once finalized")
	assert.Len(t, top.Items()[0].(*Container).Children, 1, "the adopted snapshot must not change")
}

func TestChild_NilIsInvalidArgument(t *testing.T) {
	top := newTestTop()
	b := top.NewColumnsBuilder().Child(nil).Child(leaf("a"))

	_, err := b.Build()
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = b.BuildToTop()
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, top.Items())
	assert.Equal(t, StateOpen, b.State())
}

func TestChild_TypedNilIsInvalidArgument(t *testing.T) {
	testCases := []struct {
		name string
		item ContainerItem
	}{
		{name: "nil container", item: (*Container)(nil)},
		{name: "nil custom item", item: (*leafItem)(nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			top := newTestTop()
			b := top.NewColumnsBuilder().Child(tc.item)

			_, err := b.Build()
			require.ErrorIs(t, err, ErrInvalidArgument)

			_, err = b.BuildToTop()
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Empty(t, top.Items())

			_, err = top.NewRowsBuilder().Children([]ContainerItem{leaf("a"), tc.item}).Build()
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestChildren_NilItemIsInvalidArgument(t *testing.T) {
	_, err := NewContainerBuilder[*testTop](TemplateRows).
		Children([]ContainerItem{leaf("a"), nil}).
		Build()

	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewTemplateContainerBuilder_EmptyTemplate(t *testing.T) {
	_, err := newTestTop().NewTemplateContainerBuilder("").BuildToTop()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewCustomContainerBuilder_SeedsFromContainer(t *testing.T) {
	admins := security.MustParsePermission("*:/platform/administrators")
	seed := &Container{
		Template:           "app:/tabs.gtmpl",
		Children:           []ContainerItem{leaf("seeded")},
		MoveAppsPermission: admins,
	}

	top := newTestTop()
	_, err := top.NewCustomContainerBuilder(seed).Child(leaf("added")).BuildToTop()
	require.NoError(t, err)

	c := top.Items()[0].(*Container)
	assert.Equal(t, Template("app:/tabs.gtmpl"), c.Template)
	assert.Equal(t, []ContainerItem{leaf("seeded"), leaf("added")}, c.Children)
	assert.True(t, c.MoveAppsPermission.Equal(admins))
	assert.True(t, c.AccessPermission.Equal(DefaultAccessPermission))
	assert.Len(t, seed.Children, 1, "the seed container must not be mutated")
}

func TestNewCustomContainerBuilder_NilContainer(t *testing.T) {
	_, err := newTestTop().NewColumnsBuilder().NewCustomContainerBuilder(nil).BuildToParent()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDepthAndParent(t *testing.T) {
	columns := newTestTop().NewColumnsBuilder()
	rows := columns.NewRowsBuilder()
	inner := rows.NewColumnsBuilder()

	assert.Nil(t, columns.Parent())
	assert.Same(t, rows, inner.Parent())
	assert.Equal(t, 0, columns.Depth())
	assert.Equal(t, 2, inner.Depth())
}

func TestTemplate_Name(t *testing.T) {
	assert.Equal(t, "columns", TemplateColumns.Name())
	assert.Equal(t, "rows", TemplateRows.Name())
	assert.Equal(t, "app:/x.gtmpl", Template("app:/x.gtmpl").Name())
}

func TestBuild_SnapshotsShareNestedContainers(t *testing.T) {
	b := newTestTop().NewColumnsBuilder()
	_, err := b.NewRowsBuilder().Child(leaf("a")).BuildToParent()
	require.NoError(t, err)

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	// The children slices are distinct, the nested container is not.
	first.Children = append(first.Children, leaf("b"))
	assert.Len(t, second.Children, 1)
	assert.Same(t, first.Children[0], second.Children[0])
}
