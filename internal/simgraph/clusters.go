package simgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"lifeatlas.healthmetrics.org/internal/dataset"
	"lifeatlas.healthmetrics.org/internal/models"
)

// Membership assigns one dataset row to a cluster.
type Membership struct {
	Label          dataset.RowLabel
	ClusterID      int
	Representative bool
}

// component is one connected component with its member node IDs sorted
// ascending and the chosen representative.
type component struct {
	ids            []int64
	representative int64
}

func (graph *Graph) components() []component {
	raw := topo.ConnectedComponents(graph.g)

	components := make([]component, 0, len(raw))
	for _, nodes := range raw {
		ids := make([]int64, len(nodes))
		for i, node := range nodes {
			ids[i] = node.ID()
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		representative := ids[0]
		bestDegree := graph.degree(representative)
		for _, id := range ids[1:] {
			if d := graph.degree(id); d > bestDegree {
				representative = id
				bestDegree = d
			}
		}

		components = append(components, component{ids: ids, representative: representative})
	}

	sort.Slice(components, func(i, j int) bool { return components[i].ids[0] < components[j].ids[0] })
	return components
}

// Clusters returns the connected components of the graph, ordered by cluster
// ID. A cluster's ID is the smallest row index it contains, its representative
// is the country of the member with the highest degree, and its members are
// the distinct country names involved.
func (graph *Graph) Clusters() []models.ClusterEntry {
	components := graph.components()

	clusters := make([]models.ClusterEntry, 0, len(components))
	for _, c := range components {
		memberSet := make(map[string]struct{})
		for _, id := range c.ids {
			memberSet[graph.labels[id].Country] = struct{}{}
		}
		members := make([]string, 0, len(memberSet))
		for name := range memberSet {
			members = append(members, name)
		}
		sort.Strings(members)

		clusters = append(clusters, models.ClusterEntry{
			ID:             int(c.ids[0]),
			Size:           len(c.ids),
			Representative: graph.labels[c.representative].Country,
			Members:        members,
		})
	}

	return clusters
}

// Memberships returns the cluster assignment of every row, ordered by cluster
// then row index. Exactly one member per cluster is the representative.
func (graph *Graph) Memberships() []Membership {
	components := graph.components()

	memberships := make([]Membership, 0, len(graph.labels))
	for _, c := range components {
		for _, id := range c.ids {
			memberships = append(memberships, Membership{
				Label:          graph.labels[id],
				ClusterID:      int(c.ids[0]),
				Representative: id == c.representative,
			})
		}
	}

	return memberships
}

// ClusterData assembles the full clustering payload for the parameters the
// graph was built with.
func (graph *Graph) ClusterData(threshold float64, features []string) models.ClusterData {
	return models.ClusterData{
		Threshold: threshold,
		Features:  features,
		NodeCount: graph.NodeCount(),
		EdgeCount: graph.EdgeCount(),
		Clusters:  graph.Clusters(),
	}
}
