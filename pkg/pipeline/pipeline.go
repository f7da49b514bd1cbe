// Package pipeline implements the control-flow executor: a directed
// graph of table nodes walked per packet, following hit/miss edges.
package pipeline

import (
	"fmt"

	"github.com/psaab/refswitch/pkg/config"
	"github.com/psaab/refswitch/pkg/packet"
	"github.com/psaab/refswitch/pkg/table"
)

type node struct {
	table *table.Table
	edges map[config.EdgeLabel]string
}

// Pipeline is a constructed-once control-flow graph. Nodes live in an
// arena keyed by table name; edges reference nodes by name, so the
// structure is shareable read-only across threads.
type Pipeline struct {
	name  string
	start string
	nodes map[string]*node
}

// New builds a Pipeline from its validated definition and the
// instance's table map.
func New(def config.ControlFlowDef, tables map[string]*table.Table) (*Pipeline, error) {
	p := &Pipeline{
		name:  def.Name,
		start: def.Start,
		nodes: make(map[string]*node, len(def.Nodes)),
	}
	for _, nd := range def.Nodes {
		tbl, ok := tables[nd.Table]
		if !ok {
			return nil, fmt.Errorf("control flow %s: unknown table %s", def.Name, nd.Table)
		}
		p.nodes[nd.Table] = &node{table: tbl, edges: nd.Edges}
	}
	for _, nd := range def.Nodes {
		for label, target := range nd.Edges {
			if target == "" || target == config.FlowExit {
				continue
			}
			if _, ok := p.nodes[target]; !ok {
				return nil, fmt.Errorf("control flow %s: node %s: edge %s targets unknown node %s",
					def.Name, nd.Table, label, target)
			}
		}
	}
	if _, ok := p.nodes[p.start]; !ok {
		return nil, fmt.Errorf("control flow %s: unknown start node %s", def.Name, p.start)
	}
	return p, nil
}

// Name returns the control-flow name.
func (p *Pipeline) Name() string { return p.name }

// Process walks the graph from the start node, applying each table and
// following the outgoing edge selected by its outcome: `always` when
// present, else `hit`/`miss` per the result, else `default`, else
// implicit exit. A table or action error aborts the walk; the caller
// drops the packet.
func (p *Pipeline) Process(pkt *packet.Packet) error {
	cur := p.start
	for cur != "" && cur != config.FlowExit {
		n, ok := p.nodes[cur]
		if !ok {
			return fmt.Errorf("control flow %s: no such node %s", p.name, cur)
		}
		res, err := n.table.Apply(pkt)
		if err != nil {
			return fmt.Errorf("control flow %s: node %s: %w", p.name, cur, err)
		}
		cur = nextNode(n.edges, res.Hit)
	}
	return nil
}

func nextNode(edges map[config.EdgeLabel]string, hit bool) string {
	if t, ok := edges[config.EdgeAlways]; ok {
		return t
	}
	outcome := config.EdgeMiss
	if hit {
		outcome = config.EdgeHit
	}
	if t, ok := edges[outcome]; ok {
		return t
	}
	if t, ok := edges[config.EdgeDefault]; ok {
		return t
	}
	return config.FlowExit
}
