package models

// ClusterEntry is one connected component of the similarity graph. The ID is
// the smallest row index in the component, which keeps identifiers stable
// across runs over the same data.
type ClusterEntry struct {
	ID             int      `json:"id"`
	Size           int      `json:"size"`
	Representative string   `json:"representative"`
	Members        []string `json:"members"`
}

// GraphEdge is a single similarity edge between two dataset rows, labelled by
// country.
type GraphEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// ClusterData is the clustering payload: the parameters the graph was built
// with and the resulting components.
type ClusterData struct {
	Threshold float64        `json:"threshold"`
	Features  []string       `json:"features"`
	NodeCount int            `json:"nodeCount"`
	EdgeCount int            `json:"edgeCount"`
	Clusters  []ClusterEntry `json:"clusters"`
}
