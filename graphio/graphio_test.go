package graphio_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/graphio"
)

func mixedDocument() *graphio.Document {
	e := func(from, to string, w float64) core.Edge[string] {
		return core.Edge[string]{From: from, To: to, Weight: w}
	}

	return &graphio.Document{
		Source: "a",
		Nodes:  []string{"a", "b", "c", "d", "e"},
		Edges: []core.Edge[string]{
			e("a", "b", -1), e("a", "c", 4),
			e("b", "c", 3), e("b", "d", 2), e("b", "e", 2),
			e("d", "b", 1), e("d", "c", 5),
			e("e", "d", -3),
		},
	}
}

func TestLoadFile_AllFormatsAgree(t *testing.T) {
	want := mixedDocument()
	for _, name := range []string{"mixed.yaml", "mixed.json", "mixed.hcl"} {
		t.Run(name, func(t *testing.T) {
			doc, err := graphio.LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(want, doc); diff != "" {
				t.Fatalf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument_GraphSolves(t *testing.T) {
	doc, err := graphio.LoadFile(filepath.Join("testdata", "mixed.yaml"))
	require.NoError(t, err)
	g, err := doc.Graph(core.WithName("mixed"))
	require.NoError(t, err)
	assert.Equal(t, "mixed", g.Name())
	assert.Equal(t, 8, g.EdgeCount())

	dist, _, err := bellmanford.BellmanFord(g, doc.Source)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"a": 0, "b": -1, "c": 2, "d": -2, "e": 1}, dist)
}

func TestDocument_NegativeCycleFile(t *testing.T) {
	doc, err := graphio.LoadFile(filepath.Join("testdata", "cycle.yaml"))
	require.NoError(t, err)
	g, err := doc.Graph()
	require.NoError(t, err)

	_, _, err = bellmanford.BellmanFord(g, doc.Source)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestDocument_DanglingNeighbor(t *testing.T) {
	doc, err := graphio.LoadFile(filepath.Join("testdata", "dangling.yaml"))
	require.NoError(t, err)
	assert.Empty(t, doc.Source)
	assert.Equal(t, []string{"a", "b"}, doc.Nodes)

	_, err = doc.Graph()
	require.ErrorIs(t, err, core.ErrDanglingNeighbor)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name   string
		format graphio.Format
		input  string
		target error
	}{
		{"EmptyYAML", graphio.FormatYAML, "", graphio.ErrEmptyDocument},
		{"NoGraph", graphio.FormatYAML, "source: a\n", graphio.ErrEmptyDocument},
		{"EmptyGraph", graphio.FormatJSON, `{"graph": {}}`, graphio.ErrEmptyDocument},
		{"UnknownKey", graphio.FormatYAML, "nodes: {}\n", graphio.ErrMalformed},
		{"GraphNotMapping", graphio.FormatYAML, "graph: [a, b]\n", graphio.ErrMalformed},
		{"NeighboursNotMapping", graphio.FormatYAML, "graph:\n  a: 3\n", graphio.ErrMalformed},
		{"NoBlocksHCL", graphio.FormatHCL, `source = "a"`, graphio.ErrEmptyDocument},
		{"DuplicateHCL", graphio.FormatHCL, "node \"a\" {}\nnode \"a\" {}\n", graphio.ErrDuplicateNode},
		{"EdgesNotObjectHCL", graphio.FormatHCL, "node \"a\" {\n  edges = 3\n}\n", graphio.ErrMalformed},
		{"WeightNotNumberHCL", graphio.FormatHCL, "node \"a\" {\n  edges = { b = \"x\" }\n}\n", graphio.ErrMalformed},
		{"UnknownFormat", graphio.FormatText, "graph: {a: {}}", graphio.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Decode(strings.NewReader(tc.input), tc.format)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestDecode_SyntaxErrors(t *testing.T) {
	_, err := graphio.Decode(strings.NewReader("graph: {a: {b: heavy}}"), graphio.FormatYAML)
	require.Error(t, err)

	_, err = graphio.Decode(strings.NewReader(`node "a" {`), graphio.FormatHCL)
	require.Error(t, err)
}

func TestDecode_InfiniteWeightRejectedByGraph(t *testing.T) {
	doc, err := graphio.Decode(strings.NewReader("graph: {a: {b: .inf}, b: {}}"), graphio.FormatYAML)
	require.NoError(t, err)
	_, err = doc.Graph()
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestFormat(t *testing.T) {
	f, err := graphio.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatYAML, f)

	_, err = graphio.ParseFormat("toml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)

	f, err = graphio.FormatFromPath("/tmp/g.hcl")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatHCL, f)

	_, err = graphio.FormatFromPath("/tmp/g.dot")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat, "dot is output-only")
}

func TestEncodeDocument_RoundTrip(t *testing.T) {
	want := mixedDocument()
	for _, format := range []graphio.Format{graphio.FormatYAML, graphio.FormatJSON, graphio.FormatHCL} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.EncodeDocument(&buf, want, format))

			got, err := graphio.Decode(&buf, format)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeDocument_NumericIDsStayStrings(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("10", "2", 1.5))
	require.NoError(t, g.AddEdge("2", "0", -4))
	want := graphio.FromGraph(g, "10")

	var buf bytes.Buffer
	require.NoError(t, graphio.EncodeDocument(&buf, want, graphio.FormatYAML))
	got, err := graphio.Decode(&buf, graphio.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "2", "0"}, got.Nodes, "yaml keeps insertion order")
	assert.Equal(t, want.Edges, got.Edges)
}

func solvedResult(t *testing.T) graphio.Result {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b", 2))
	require.NoError(t, g.AddVertex("c"))
	dist, prev, err := bellmanford.BellmanFord(g, "a")
	require.NoError(t, err)

	return graphio.Result{Algorithm: "bellman-ford", Source: "a", Graph: g, Dist: dist, Prev: prev}
}

func TestEncode_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, solvedResult(t), graphio.FormatText))

	want := "NODE  DISTANCE  PREDECESSOR\n" +
		"a     0         -\n" +
		"b     2         a\n" +
		"c     inf       -\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, solvedResult(t), graphio.FormatJSON))

	var out struct {
		Algorithm string `json:"algorithm"`
		Source    string `json:"source"`
		Nodes     []struct {
			Node        string  `json:"node"`
			Distance    any     `json:"distance"`
			Predecessor *string `json:"predecessor"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "bellman-ford", out.Algorithm)
	require.Len(t, out.Nodes, 3)
	assert.Equal(t, 0.0, out.Nodes[0].Distance)
	assert.Nil(t, out.Nodes[0].Predecessor)
	assert.Equal(t, "a", *out.Nodes[1].Predecessor)
	assert.Equal(t, graphio.Inf, out.Nodes[2].Distance)
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, solvedResult(t), graphio.FormatYAML))

	s := buf.String()
	assert.Contains(t, s, "source: a")
	assert.Contains(t, s, "distance: inf")
	assert.Contains(t, s, "predecessor: null")
	assert.Contains(t, s, "distance: 2")
}

func TestEncode_DOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, solvedResult(t), graphio.FormatDOT))

	s := buf.String()
	assert.Regexp(t, `"?a"?\s*->\s*"?b"?`, s)
	assert.Contains(t, s, "bold")
	assert.Contains(t, s, "c (inf)")
}

func TestEncode_Errors(t *testing.T) {
	err := graphio.Encode(&bytes.Buffer{}, graphio.Result{}, graphio.FormatText)
	require.ErrorIs(t, err, graphio.ErrMalformed)

	err = graphio.Encode(&bytes.Buffer{}, solvedResult(t), graphio.FormatHCL)
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)

	err = graphio.EncodeDocument(&bytes.Buffer{}, mixedDocument(), graphio.FormatText)
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
