package model

import "fmt"

// Forest is a random forest of binary decision trees. Its probability is the
// mean of each tree's normalised leaf distribution.
type Forest struct {
	names     []string
	nFeatures int
	classes   [2]int
	trees     []tree
	source    string
}

var _ Classifier = (*Forest)(nil)

func newForest(a *artifact) (*Forest, error) {
	for ti, t := range a.Trees {
		for ni, n := range t.Nodes {
			if n.isLeaf() {
				if n.Value[0]+n.Value[1] <= 0 {
					return nil, fmt.Errorf("%w: tree %d node %d: empty leaf", ErrInvalidArtifact, ti, ni)
				}
				continue
			}
			if n.Left < 0 || n.Right < 0 || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("%w: tree %d node %d: child out of range", ErrInvalidArtifact, ti, ni)
			}
			if n.Left <= ni || n.Right <= ni {
				return nil, fmt.Errorf("%w: tree %d node %d: children must follow parent", ErrInvalidArtifact, ti, ni)
			}
			if n.Feature < 0 || n.Feature >= a.NFeaturesIn {
				return nil, fmt.Errorf("%w: tree %d node %d: feature %d out of range", ErrInvalidArtifact, ti, ni, n.Feature)
			}
		}
	}

	return &Forest{
		names:     copyNames(a.FeatureNamesIn),
		nFeatures: a.NFeaturesIn,
		classes:   [2]int{a.Classes[0], a.Classes[1]},
		trees:     a.Trees,
	}, nil
}

func (f *Forest) PredictProba(row []float64) ([]float64, error) {
	if err := checkWidth(row, f.nFeatures); err != nil {
		return nil, err
	}

	var p1 float64
	for _, t := range f.trees {
		leaf := t.leaf(row)
		p1 += leaf.Value[1] / (leaf.Value[0] + leaf.Value[1])
	}
	p1 /= float64(len(f.trees))
	return []float64{1 - p1, p1}, nil
}

// leaf descends from the root. Children always have a larger index than
// their parent, so the walk terminates.
func (t tree) leaf(row []float64) node {
	n := t.Nodes[0]
	for !n.isLeaf() {
		if row[n.Feature] <= n.Threshold {
			n = t.Nodes[n.Left]
		} else {
			n = t.Nodes[n.Right]
		}
	}
	return n
}

func (f *Forest) FeatureNames() []string {
	return copyNames(f.names)
}

func (f *Forest) Describe() Info {
	return Info{
		Kind:     KindRandomForest,
		Features: f.nFeatures,
		Declared: len(f.names) > 0,
		Trees:    len(f.trees),
		Classes:  f.classes,
		Source:   f.source,
	}
}
