package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildGraphSampleDeck(t *testing.T) {
	g := BuildGraph(Analyze(sampleDeck()))

	wantNodes := []GraphNode{
		{ID: "main", Label: "test", Type: NodeMain},
		{ID: "outline_0", Label: "Test Title", Type: NodeOutline},
		{ID: "outline_1", Label: "Second", Type: NodeOutline},
		{ID: "keypoint_0", Label: "Test Title", Type: NodeKeyPoint},
		{ID: "keypoint_1", Label: "Point A", Type: NodeKeyPoint},
		{ID: "keypoint_2", Label: "Second", Type: NodeKeyPoint},
	}
	wantEdges := []GraphEdge{
		{Source: "main", Target: "outline_0", Type: EdgeHierarchy},
		{Source: "main", Target: "outline_1", Type: EdgeHierarchy},
		{Source: "outline_0", Target: "keypoint_0", Type: EdgeDetail},
		{Source: "outline_1", Target: "keypoint_1", Type: EdgeDetail},
	}

	if diff := cmp.Diff(wantNodes, g.Nodes); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantEdges, g.Edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildGraphPairsByIndex(t *testing.T) {
	a := &StructureAnalysis{
		MainTopic: "topic",
		Outline:   []string{"A", "B", "C"},
		KeyPoints: []string{"first point"},
	}
	g := BuildGraph(a)

	var detail []GraphEdge
	for _, e := range g.Edges {
		if e.Type == EdgeDetail {
			detail = append(detail, e)
		}
	}
	want := []GraphEdge{{Source: "outline_0", Target: "keypoint_0", Type: EdgeDetail}}
	if diff := cmp.Diff(want, detail); diff != "" {
		t.Errorf("detail edges mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateLogicGraphData(t *testing.T) {
	out, err := GenerateLogicGraphData(Analyze(sampleDeck()))
	if err != nil {
		t.Fatalf("GenerateLogicGraphData() error = %v", err)
	}

	var decoded struct {
		Nodes []map[string]string `json:"nodes"`
		Edges []map[string]string `json:"edges"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(decoded.Nodes) != 6 || len(decoded.Edges) != 4 {
		t.Errorf("got %d nodes and %d edges, want 6 and 4", len(decoded.Nodes), len(decoded.Edges))
	}
	for _, key := range []string{"id", "label", "type"} {
		if _, ok := decoded.Nodes[0][key]; !ok {
			t.Errorf("node missing %q field: %v", key, decoded.Nodes[0])
		}
	}
	for _, key := range []string{"source", "target", "type"} {
		if _, ok := decoded.Edges[0][key]; !ok {
			t.Errorf("edge missing %q field: %v", key, decoded.Edges[0])
		}
	}
}

func TestGenerateLogicGraphDataEmpty(t *testing.T) {
	out, err := GenerateLogicGraphData(Analyze(nil))
	if err != nil {
		t.Fatalf("GenerateLogicGraphData() error = %v", err)
	}
	want := `{"nodes":[{"id":"main","label":"untitled","type":"main"}],"edges":[]}`
	if out != want {
		t.Errorf("got %s\nwant %s", out, want)
	}

	out, err = GenerateLogicGraphData(nil)
	if err != nil {
		t.Fatalf("nil analysis error = %v", err)
	}
	if out != `{"nodes":[],"edges":[]}` {
		t.Errorf("nil analysis = %s", out)
	}
}

func TestMarkdown(t *testing.T) {
	md := Analyze(sampleDeck()).Markdown()

	for _, want := range []string{
		"# test\n",
		"## 1. Test Title\n\n- Point A\n",
		"## 2. Second\n",
		"## Key points\n\n- Test Title\n- Point A\n- Second\n",
		"Themes: general\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, md)
		}
	}
}
