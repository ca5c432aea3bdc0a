package validation

import "fmt"

// DefaultRuleSet collects rules declared outside of any named rule set
const DefaultRuleSet = "default"

// CascadeMode controls whether evaluation of field rules continues after failure
type CascadeMode int

const (
	// CascadeContinue evaluates every rule of the field
	CascadeContinue CascadeMode = iota
	// CascadeStop skips remaining rules of the field after the first failure
	CascadeStop
)

type selection struct {
	all    bool
	sets   map[string]struct{}
	fields map[string]struct{}
}

// Option narrows down which rules are evaluated
type Option func(*selection)

// IncludeRuleSets evaluates rules of the named rule sets only
func IncludeRuleSets(names ...string) Option {
	return func(s *selection) {
		if s.sets == nil {
			s.sets = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			s.sets[n] = struct{}{}
		}
	}
}

// IncludeAllRuleSets evaluates rules of every rule set including default one
func IncludeAllRuleSets() Option {
	return func(s *selection) {
		s.all = true
	}
}

// IncludeFields restricts evaluation to rule chains of the named fields
func IncludeFields(names ...string) Option {
	return func(s *selection) {
		if s.fields == nil {
			s.fields = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			s.fields[n] = struct{}{}
		}
	}
}

func (s selection) includes(set, field string) bool {
	if len(s.fields) > 0 {
		if _, ok := s.fields[field]; !ok {
			return false
		}
		if len(s.sets) == 0 {
			return true
		}
	}

	if s.all {
		return true
	}

	if len(s.sets) == 0 {
		return set == DefaultRuleSet
	}

	_, ok := s.sets[set]
	return ok
}

// child builds selection for nested validators, field filter applies to top level only
func (s selection) child() selection {
	return selection{
		all:  s.all || (len(s.fields) > 0 && len(s.sets) == 0),
		sets: s.sets,
	}
}

type fieldValidator[T any] interface {
	fieldName() string
	ruleSetName() string
	validate(entity T, prefix string, sel selection, res *Result)
}

// Validator evaluates declared field rule chains against an entity.
// It is mutated only while rules are declared and is safe for concurrent use afterwards.
type Validator[T any] struct {
	fields []fieldValidator[T]
	set    string
}

// New builds empty validator
func New[T any]() *Validator[T] {
	return &Validator[T]{set: DefaultRuleSet}
}

// RuleSet declares every rule chain registered inside declare as part of named rule set
func (v *Validator[T]) RuleSet(name string, declare func(v *Validator[T])) {
	prev := v.set
	v.set = name
	defer func() { v.set = prev }()

	declare(v)
}

// Validate evaluates rule chains in declaration order, by default only rules of DefaultRuleSet
func (v *Validator[T]) Validate(entity T, opts ...Option) Result {
	var sel selection
	for _, opt := range opts {
		opt(&sel)
	}

	var res Result
	v.validate(entity, "", sel, &res)
	return res
}

func (v *Validator[T]) validate(entity T, prefix string, sel selection, res *Result) {
	for _, f := range v.fields {
		if sel.includes(f.ruleSetName(), f.fieldName()) {
			f.validate(entity, prefix, sel, res)
		}
	}
}

// Rule is a single check over field value
type Rule[V any] struct {
	check   func(V) bool
	message string
}

// Must builds rule from arbitrary predicate
func Must[V any](check func(V) bool, message string) Rule[V] {
	return Rule[V]{check: check, message: message}
}

// Message returns message reported when rule fails
func (r Rule[V]) Message() string {
	return r.message
}

// FieldChain is ordered list of rules for a single field
type FieldChain[T, V any] struct {
	name    string
	set     string
	get     func(T) V
	rules   []Rule[V]
	when    func(T) bool
	cascade CascadeMode
	each    func(list V, path string, sel selection, res *Result)
}

// Field registers new rule chain for field within validator's current rule set
func Field[T, V any](v *Validator[T], name string, get func(T) V) *FieldChain[T, V] {
	c := &FieldChain[T, V]{name: name, set: v.set, get: get}
	v.fields = append(v.fields, c)
	return c
}

// Rules appends rules to the chain
func (c *FieldChain[T, V]) Rules(rules ...Rule[V]) *FieldChain[T, V] {
	c.rules = append(c.rules, rules...)
	return c
}

// Cascade sets cascade mode of the chain
func (c *FieldChain[T, V]) Cascade(mode CascadeMode) *FieldChain[T, V] {
	c.cascade = mode
	return c
}

// When makes the whole chain conditional
func (c *FieldChain[T, V]) When(pred func(T) bool) *FieldChain[T, V] {
	c.when = pred
	return c
}

func (c *FieldChain[T, V]) fieldName() string {
	return c.name
}

func (c *FieldChain[T, V]) ruleSetName() string {
	return c.set
}

func (c *FieldChain[T, V]) validate(entity T, prefix string, sel selection, res *Result) {
	if c.when != nil && !c.when(entity) {
		return
	}

	value := c.get(entity)
	path := prefix + c.name

	failed := false
	for _, r := range c.rules {
		if r.check(value) {
			continue
		}

		res.add(path, r.message)
		failed = true

		if c.cascade == CascadeStop {
			break
		}
	}

	if c.each == nil || (failed && c.cascade == CascadeStop) {
		return
	}
	c.each(value, path, sel.child(), res)
}

// ForEach applies elem validator to every element of list field, violations are reported as Field[i].Child.
// Nil elements are reported with requiredMsg unless it is empty.
func ForEach[T, E any](c *FieldChain[T, []*E], elem *Validator[*E], requiredMsg string) *FieldChain[T, []*E] {
	c.each = func(list []*E, path string, sel selection, res *Result) {
		for i, item := range list {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				if requiredMsg != "" {
					res.add(itemPath, requiredMsg)
				}
				continue
			}
			elem.validate(item, itemPath+".", sel, res)
		}
	}
	return c
}
