// Package simgraph builds a similarity graph over dataset rows and derives
// clusters from its connected components. Rows become nodes; an edge connects
// two rows when the cosine similarity of their feature vectors reaches the
// threshold.
package simgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"lifeatlas.healthmetrics.org/internal/dataset"
)

// Graph is a weighted undirected similarity graph. Node IDs are row indices
// into the label slice, so results stay deterministic for a given dataset.
type Graph struct {
	labels    []dataset.RowLabel
	g         *simple.WeightedUndirectedGraph
	edgeCount int
}

// Build constructs the similarity graph for the given rows. Every row becomes
// a node; edges are added for pairs whose cosine similarity is at least the
// threshold.
func Build(labels []dataset.RowLabel, featureRows [][]float64, threshold float64) (*Graph, error) {
	if len(labels) != len(featureRows) {
		return nil, fmt.Errorf("label count %d does not match feature row count %d", len(labels), len(featureRows))
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := range labels {
		g.AddNode(simple.Node(i))
	}

	edgeCount := 0
	for i := 0; i < len(featureRows); i++ {
		for j := i + 1; j < len(featureRows); j++ {
			similarity := CosineSimilarity(featureRows[i], featureRows[j])
			if similarity >= threshold {
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(i),
					T: simple.Node(j),
					W: similarity,
				})
				edgeCount++
			}
		}
	}

	return &Graph{labels: labels, g: g, edgeCount: edgeCount}, nil
}

// CosineSimilarity computes the cosine of the angle between two feature
// vectors. Zero-magnitude vectors have similarity 0 rather than NaN.
func CosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}

	var magA, magB float64
	for _, v := range a {
		magA += v * v
	}
	for _, v := range b {
		magB += v * v
	}
	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)

	if magA > 0 && magB > 0 {
		return dot / (magA * magB)
	}
	return 0
}

// NodeCount reports the number of rows in the graph.
func (graph *Graph) NodeCount() int {
	return len(graph.labels)
}

// EdgeCount reports how many similarity edges cleared the threshold.
func (graph *Graph) EdgeCount() int {
	return graph.edgeCount
}

// Label returns the row label behind a node ID.
func (graph *Graph) Label(id int) dataset.RowLabel {
	return graph.labels[id]
}

// Weight returns the similarity on the edge between two nodes, or false when
// no edge connects them.
func (graph *Graph) Weight(i, j int) (float64, bool) {
	return graph.g.Weight(int64(i), int64(j))
}

func (graph *Graph) degree(id int64) int {
	return graph.g.From(id).Len()
}
