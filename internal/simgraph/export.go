package simgraph

import (
	"fmt"
	"io"

	"lifeatlas.healthmetrics.org/internal/models"
)

// Edges returns every similarity edge labelled by country, ordered by the
// source then target row index.
func (graph *Graph) Edges() []models.GraphEdge {
	edges := make([]models.GraphEdge, 0, graph.edgeCount)
	for i := 0; i < len(graph.labels); i++ {
		for j := i + 1; j < len(graph.labels); j++ {
			weight, ok := graph.Weight(i, j)
			if !ok {
				continue
			}
			edges = append(edges, models.GraphEdge{
				Source: graph.labels[i].Country,
				Target: graph.labels[j].Country,
				Weight: weight,
			})
		}
	}
	return edges
}

// ExportEdgeList writes the graph's edges as CSV with a Source,Target,Weight
// header, suitable for loading into network analysis tools.
func (graph *Graph) ExportEdgeList(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Source,Target,Weight"); err != nil {
		return fmt.Errorf("error writing edge list header: %w", err)
	}
	for _, edge := range graph.Edges() {
		if _, err := fmt.Fprintf(w, "%s,%s,%.6f\n", edge.Source, edge.Target, edge.Weight); err != nil {
			return fmt.Errorf("error writing edge list row: %w", err)
		}
	}
	return nil
}
