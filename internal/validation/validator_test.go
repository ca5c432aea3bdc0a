package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	Name *string
}

type box struct {
	Title *string
	Label *string
	Items []*item
}

func ptr(s string) *string {
	return &s
}

func newBoxValidator() *Validator[*box] {
	itemValidator := New[*item]()
	Field(itemValidator, "Name", func(i *item) *string { return i.Name }).
		Cascade(CascadeStop).
		Rules(Required[string]("name required"), NotBlank("name blank"))

	v := New[*box]()
	v.RuleSet("Own", func(v *Validator[*box]) {
		Field(v, "Title", func(b *box) *string { return b.Title }).
			Cascade(CascadeStop).
			Rules(Required[string]("title required"), MaxLength(3, "title max %d"))

		Field(v, "Label", func(b *box) *string { return b.Label }).
			Rules(NotBlank("label blank"), MaxLength(2, "label max %d")).
			When(func(b *box) bool { return b.Label != nil })
	})

	items := Field(v, "Items", func(b *box) []*item { return b.Items }).
		Rules(NotEmpty[*item]("items required"))
	ForEach(items, itemValidator, "item required")
	return v
}

func TestCascadeStop(t *testing.T) {
	v := newBoxValidator()

	t.Log("nil value reports only required failure")
	{
		res := v.Validate(&box{}, IncludeRuleSets("Own"))
		require.Equal(t, []Violation{{Field: "Title", Message: "title required"}}, res.Violations)
	}

	t.Log("too long value reports length failure with embedded max")
	{
		res := v.Validate(&box{Title: ptr("long")}, IncludeRuleSets("Own"))
		require.Equal(t, []string{"title max 3"}, res.Messages("Title"))
	}
}

func TestCascadeContinue(t *testing.T) {
	v := newBoxValidator()

	res := v.Validate(&box{Title: ptr("ok"), Label: ptr("   ")}, IncludeRuleSets("Own"))
	require.Equal(t, []string{"label blank", "label max 2"}, res.Messages("Label"), "every rule must be evaluated without cascade stop")
}

func TestWhenSkipsChain(t *testing.T) {
	v := newBoxValidator()

	res := v.Validate(&box{Title: ptr("ok")}, IncludeRuleSets("Own"))
	require.True(t, res.IsValid(), "conditional chain must be skipped, got %s", res)
}

func TestRuleSetSelection(t *testing.T) {
	v := newBoxValidator()
	b := &box{Title: ptr("ok")}

	t.Log("default rule set is evaluated when nothing is requested")
	{
		res := v.Validate(b)
		require.Equal(t, []string{"Items"}, res.Fields())
	}

	t.Log("named rule set excludes default rules")
	{
		res := v.Validate(b, IncludeRuleSets("Own"))
		require.True(t, res.IsValid())
	}

	t.Log("all rule sets are evaluated in declaration order")
	{
		res := v.Validate(&box{}, IncludeAllRuleSets())
		require.Equal(t, []string{"Title", "Items"}, res.Fields())
	}
}

func TestForEachPaths(t *testing.T) {
	v := newBoxValidator()

	b := &box{
		Title: ptr("ok"),
		Items: []*item{{Name: ptr("a")}, {Name: ptr(" ")}, nil, {}},
	}

	res := v.Validate(b, IncludeAllRuleSets())
	require.Equal(t, []Violation{
		{Field: "Items[1].Name", Message: "name blank"},
		{Field: "Items[2]", Message: "item required"},
		{Field: "Items[3].Name", Message: "name required"},
	}, res.Violations)
}

func TestIncludeFields(t *testing.T) {
	v := newBoxValidator()
	b := &box{Items: []*item{{}}}

	t.Log("only requested field is evaluated regardless of its rule set")
	{
		res := v.Validate(b, IncludeFields("Title"))
		require.Equal(t, []string{"Title"}, res.Fields())
	}

	t.Log("nested validators of requested list field are evaluated completely")
	{
		res := v.Validate(b, IncludeFields("Items"))
		require.Equal(t, []string{"Items[0].Name"}, res.Fields())
	}

	t.Log("unknown field yields no violations")
	{
		res := v.Validate(b, IncludeFields("Missing"))
		require.True(t, res.IsValid())
	}
}

func TestResult(t *testing.T) {
	var res Result
	res.add("A", "first")
	res.add("B", "second")
	res.add("A", "third")

	require.False(t, res.IsValid())
	require.True(t, res.Has("B"))
	require.False(t, res.Has("C"))
	require.Equal(t, []string{"first", "third"}, res.Messages("A"))
	require.Equal(t, []string{"A", "B"}, res.Fields())
	require.Equal(t, "first\nsecond\nthird", res.String())
}

func TestRules(t *testing.T) {
	require.True(t, IsBlank(" \t\n"))
	require.False(t, IsBlank(" x "))

	oneOf := OneOf([]string{"a", "b"}, "allowed %s")
	require.Equal(t, "allowed a, b", oneOf.Message())
	require.True(t, oneOf.check(nil), "nil must pass")
	require.False(t, oneOf.check(ptr("c")))

	maxLen := MaxLength(2, "max %d")
	require.True(t, maxLen.check(ptr("żź")), "length is counted in characters")
	require.False(t, maxLen.check(ptr("abc")))
}
