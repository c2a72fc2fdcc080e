package analysis

import (
	"encoding/json"
	"fmt"
)

// Node types.
const (
	NodeMain     = "main"
	NodeOutline  = "outline"
	NodeKeyPoint = "keypoint"
)

// Edge types.
const (
	EdgeHierarchy = "hierarchy"
	EdgeDetail    = "detail"
)

// untitled labels the main node when no keyword was found.
const untitled = "untitled"

// GraphNode is one vertex of the topic graph.
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// GraphEdge connects two nodes by ID.
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Graph is the topic hierarchy for visualization.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// BuildGraph links the main topic to every outline entry and each outline
// entry to the key point at the same index. The pairing is positional: a key
// point is not guaranteed to come from the slide it is attached to.
func BuildGraph(a *StructureAnalysis) Graph {
	g := Graph{Nodes: []GraphNode{}, Edges: []GraphEdge{}}
	if a == nil {
		return g
	}

	label := a.MainTopic
	if label == "" {
		label = untitled
	}
	g.Nodes = append(g.Nodes, GraphNode{ID: NodeMain, Label: label, Type: NodeMain})

	for i, title := range a.Outline {
		id := fmt.Sprintf("outline_%d", i)
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: title, Type: NodeOutline})
		g.Edges = append(g.Edges, GraphEdge{Source: NodeMain, Target: id, Type: EdgeHierarchy})
	}

	for i, point := range a.KeyPoints {
		id := fmt.Sprintf("keypoint_%d", i)
		g.Nodes = append(g.Nodes, GraphNode{ID: id, Label: point, Type: NodeKeyPoint})
		if i < len(a.Outline) {
			g.Edges = append(g.Edges, GraphEdge{
				Source: fmt.Sprintf("outline_%d", i),
				Target: id,
				Type:   EdgeDetail,
			})
		}
	}
	return g
}

// JSON encodes the graph as {"nodes":[...],"edges":[...]}.
func (g Graph) JSON() (string, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("encode graph: %w", err)
	}
	return string(b), nil
}

// GenerateLogicGraphData returns the JSON topic graph of a.
func GenerateLogicGraphData(a *StructureAnalysis) (string, error) {
	return BuildGraph(a).JSON()
}
