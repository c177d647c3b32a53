package dataset

import "context"

// Transform is one step of the cleaning run: a mutation, filter, or
// annotation applied to a Dataset.
type Transform interface {
	Name() string
	Apply(ctx context.Context, d *Dataset) (*Dataset, error)
}

// Pipeline composes a sequence of Transforms.
type Pipeline struct {
	steps []Transform
}

func NewPipeline() *Pipeline { return &Pipeline{} }

func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

func (p *Pipeline) Run(ctx context.Context, d *Dataset) (*Dataset, error) {
	var err error
	cur := d
	for _, t := range p.steps {
		cur, err = t.Apply(ctx, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
