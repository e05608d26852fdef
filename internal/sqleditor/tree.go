// Package sqleditor builds the database tree of the SQL editor: databases
// grouped by a list of factors such as project, environment or a label.
package sqleditor

import (
	"fmt"
	"sort"
	"strings"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
)

const (
	FactorProject     = "project"
	FactorInstance    = "instance"
	FactorEnvironment = "environment"
	labelFactorPrefix = "label:"

	// EmptyTitle is the title of the group of databases without a value
	// for the factor.
	EmptyTitle = "<empty>"
)

// DefaultFactors is used when a request names no factors.
var DefaultFactors = []string{FactorProject}

// Factor is one grouping level of the tree.
type Factor struct {
	Type v1pb.TreeNode_Type
	// LabelKey is set for label factors.
	LabelKey string
}

func (f Factor) String() string {
	switch f.Type {
	case v1pb.TreeNode_PROJECT:
		return FactorProject
	case v1pb.TreeNode_INSTANCE:
		return FactorInstance
	case v1pb.TreeNode_ENVIRONMENT:
		return FactorEnvironment
	case v1pb.TreeNode_LABEL:
		return labelFactorPrefix + f.LabelKey
	}
	return ""
}

// ParseFactor classifies one factor string.
func ParseFactor(s string) (Factor, error) {
	switch s {
	case FactorProject:
		return Factor{Type: v1pb.TreeNode_PROJECT}, nil
	case FactorInstance:
		return Factor{Type: v1pb.TreeNode_INSTANCE}, nil
	case FactorEnvironment:
		return Factor{Type: v1pb.TreeNode_ENVIRONMENT}, nil
	}
	if key, ok := strings.CutPrefix(s, labelFactorPrefix); ok && key != "" {
		return Factor{Type: v1pb.TreeNode_LABEL, LabelKey: key}, nil
	}
	return Factor{}, fmt.Errorf("invalid factor %q", s)
}

// ParseFactors validates a factor list. Duplicates are rejected and an
// empty list yields DefaultFactors.
func ParseFactors(factors []string) ([]Factor, error) {
	if len(factors) == 0 {
		factors = DefaultFactors
	}
	seen := make(map[string]bool, len(factors))
	out := make([]Factor, 0, len(factors))
	for _, s := range factors {
		f, err := ParseFactor(s)
		if err != nil {
			return nil, err
		}
		if seen[f.String()] {
			return nil, fmt.Errorf("duplicated factor %q", s)
		}
		seen[f.String()] = true
		out = append(out, f)
	}
	return out, nil
}

// Builder groups databases into a tree.
type Builder struct {
	environments map[string]*v1pb.Environment
	instances    map[string]*v1pb.Instance
}

func NewBuilder(environments []*v1pb.Environment, instances []*v1pb.Instance) *Builder {
	b := &Builder{
		environments: make(map[string]*v1pb.Environment, len(environments)),
		instances:    make(map[string]*v1pb.Instance, len(instances)),
	}
	for _, e := range environments {
		b.environments[e.Name] = e
	}
	for _, i := range instances {
		b.instances[i.Name] = i
	}
	return b
}

// Build returns the top level nodes. Every database becomes exactly one
// leaf below one group node per factor.
func (b *Builder) Build(factors []Factor, databases []*v1pb.Database) []*v1pb.TreeNode {
	return b.group("", factors, databases)
}

type group struct {
	node      *v1pb.TreeNode
	value     string
	order     int32
	databases []*v1pb.Database
}

func (b *Builder) group(parentKey string, factors []Factor, databases []*v1pb.Database) []*v1pb.TreeNode {
	if len(factors) == 0 {
		return leaves(databases)
	}
	f := factors[0]
	groups := map[string]*group{}
	var ordered []*group
	for _, db := range databases {
		value := valueOf(f, db)
		g, ok := groups[value]
		if !ok {
			g = b.newGroup(parentKey, f, value)
			groups[value] = g
			ordered = append(ordered, g)
		}
		g.databases = append(g.databases, db)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, c := ordered[i], ordered[j]
		if (a.value == "") != (c.value == "") {
			return c.value == ""
		}
		if f.Type == v1pb.TreeNode_ENVIRONMENT && a.order != c.order {
			return a.order < c.order
		}
		if a.node.Title != c.node.Title {
			return a.node.Title < c.node.Title
		}
		return a.value < c.value
	})

	nodes := make([]*v1pb.TreeNode, 0, len(ordered))
	for _, g := range ordered {
		g.node.Children = b.group(g.node.Key, factors[1:], g.databases)
		nodes = append(nodes, g.node)
	}
	return nodes
}

func (b *Builder) newGroup(parentKey string, f Factor, value string) *group {
	g := &group{
		value: value,
		node:  &v1pb.TreeNode{Type: f.Type, Title: value},
	}
	segment := value
	switch f.Type {
	case v1pb.TreeNode_PROJECT:
		if id, err := models.ProjectID(value); err == nil {
			g.node.Title = id
		}
	case v1pb.TreeNode_INSTANCE:
		if inst, ok := b.instances[value]; ok && inst.Title != "" {
			g.node.Title = inst.Title
		}
	case v1pb.TreeNode_ENVIRONMENT:
		if env, ok := b.environments[value]; ok {
			g.order = env.Order
			if env.Title != "" {
				g.node.Title = env.Title
			}
		}
	case v1pb.TreeNode_LABEL:
		g.node.LabelKey = f.LabelKey
		g.node.LabelValue = value
		segment = "labels/" + f.LabelKey + "=" + value
	}
	if value == "" {
		g.node.Title = EmptyTitle
		segment = f.String() + "=" + EmptyTitle
	}
	if parentKey == "" {
		g.node.Key = segment
	} else {
		g.node.Key = parentKey + "/" + segment
	}
	return g
}

func valueOf(f Factor, db *v1pb.Database) string {
	switch f.Type {
	case v1pb.TreeNode_PROJECT:
		return db.Project
	case v1pb.TreeNode_INSTANCE:
		if instance, _, err := models.InstanceDatabaseID(db.Name); err == nil {
			return models.FormatInstance(instance)
		}
	case v1pb.TreeNode_ENVIRONMENT:
		if db.EffectiveEnvironment != "" {
			return db.EffectiveEnvironment
		}
		return db.Environment
	case v1pb.TreeNode_LABEL:
		return db.Labels[f.LabelKey]
	}
	return ""
}

func leaves(databases []*v1pb.Database) []*v1pb.TreeNode {
	nodes := make([]*v1pb.TreeNode, 0, len(databases))
	for _, db := range databases {
		title := db.Name
		if _, name, err := models.InstanceDatabaseID(db.Name); err == nil {
			title = name
		}
		nodes = append(nodes, &v1pb.TreeNode{
			Key:      db.Name,
			Type:     v1pb.TreeNode_DATABASE,
			Title:    title,
			Database: db.Name,
			IsLeaf:   true,
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Title != nodes[j].Title {
			return nodes[i].Title < nodes[j].Title
		}
		return nodes[i].Key < nodes[j].Key
	})
	return nodes
}

// Walk calls fn for every node of the tree, parents before children.
func Walk(nodes []*v1pb.TreeNode, fn func(*v1pb.TreeNode)) {
	for _, n := range nodes {
		fn(n)
		Walk(n.Children, fn)
	}
}
