package report

import (
	"fmt"
	"io"
	"strings"

	"lifeatlas.healthmetrics.org/internal/models"
)

// WriteClusterSummary writes a plain-text summary of a clustering run: the
// parameters, the graph size, and each cluster with its representative.
func WriteClusterSummary(w io.Writer, data models.ClusterData) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Similarity clustering report\n")
	fmt.Fprintf(&b, "Threshold: %.2f\n", data.Threshold)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(data.Features, ", "))
	fmt.Fprintf(&b, "Nodes: %d\n", data.NodeCount)
	fmt.Fprintf(&b, "Edges: %d\n", data.EdgeCount)
	fmt.Fprintf(&b, "Clusters: %d\n\n", len(data.Clusters))

	for _, cluster := range data.Clusters {
		fmt.Fprintf(&b, "Cluster %d: representative %s, size %d\n", cluster.ID, cluster.Representative, cluster.Size)
		for _, member := range cluster.Members {
			fmt.Fprintf(&b, "  %s\n", member)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing cluster summary: %w", err)
	}
	return nil
}
