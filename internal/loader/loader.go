package loader

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ricci-ml/ricci/internal/symbolic"
	"github.com/ricci-ml/ricci/internal/tensor"
)

// Tensor is a sparse tensor over the symbolic scalar ring.
type Tensor = tensor.Tensor[*symbolic.Expr, symbolic.Ring]

// Metric is a metric over the symbolic scalar ring.
type Metric = tensor.Metric[*symbolic.Expr, symbolic.Ring]

// ErrBadDocument reports a definition document that does not match either
// supported shape. Component-level problems (bad expressions, bad
// multi-indices) wrap the symbolic and tensor package errors instead.
var ErrBadDocument = errors.New("malformed definition document")

type document struct {
	Basis      []string       `yaml:"basis"`
	Matrix     [][]string     `yaml:"matrix"`
	Type       *typeDoc       `yaml:"type"`
	Components []componentDoc `yaml:"components"`
}

type typeDoc struct {
	Contra int `yaml:"contra"`
	Cova   int `yaml:"cova"`
}

type componentDoc struct {
	Contra []int  `yaml:"contra"`
	Cova   []int  `yaml:"cova"`
	Value  string `yaml:"value"`
}

// Load reads a definition file and returns its tensor form: tensor
// documents directly, metric documents as the metric's (0,2)-tensor.
func Load(path string) (*Tensor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse is Load over in-memory document bytes.
func Parse(data []byte) (*Tensor, error) {
	doc, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	if doc.Matrix != nil {
		g, err := buildMetric(doc)
		if err != nil {
			return nil, err
		}
		return g.Tensor(), nil
	}
	return buildTensor(doc)
}

// LoadMetric reads a metric document from a file.
func LoadMetric(path string) (*Metric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMetric(data)
}

// ParseMetric parses a metric document.
func ParseMetric(data []byte) (*Metric, error) {
	doc, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	if doc.Matrix == nil {
		return nil, fmt.Errorf("%w: metric document needs a matrix", ErrBadDocument)
	}
	return buildMetric(doc)
}

// LoadTensor reads a sparse tensor document from a file.
func LoadTensor(path string) (*Tensor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTensor(data)
}

// ParseTensor parses a sparse tensor document.
func ParseTensor(data []byte) (*Tensor, error) {
	doc, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	return buildTensor(doc)
}

func unmarshal(data []byte) (*document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Basis) == 0 {
		return nil, fmt.Errorf("%w: missing basis", ErrBadDocument)
	}
	return &doc, nil
}

func buildMetric(doc *document) (*Metric, error) {
	matrix := make([][]*symbolic.Expr, len(doc.Matrix))
	for i, row := range doc.Matrix {
		matrix[i] = make([]*symbolic.Expr, len(row))
		for j, src := range row {
			e, err := symbolic.Parse(src)
			if err != nil {
				return nil, fmt.Errorf("matrix entry (%d,%d): %w", i, j, err)
			}
			matrix[i][j] = e
		}
	}
	return tensor.NewMetric(matrix, tensor.Basis(doc.Basis), symbolic.New())
}

func buildTensor(doc *document) (*Tensor, error) {
	if doc.Type == nil {
		return nil, fmt.Errorf("%w: tensor document needs a type", ErrBadDocument)
	}

	components := make(map[tensor.Key]*symbolic.Expr, len(doc.Components))
	for n, c := range doc.Components {
		value, err := symbolic.Parse(c.Value)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", n, err)
		}
		key := tensor.NewKey(asMultiIndex(c.Contra), asMultiIndex(c.Cova))
		if _, ok := components[key]; ok {
			return nil, fmt.Errorf("%w: duplicate component %s", ErrBadDocument, key)
		}
		components[key] = value
	}

	return tensor.New(tensor.Basis(doc.Basis), doc.Type.Contra, doc.Type.Cova, components, symbolic.New())
}

// asMultiIndex maps an absent or empty YAML list to the empty marker.
func asMultiIndex(idx []int) tensor.MultiIndex {
	if len(idx) == 0 {
		return nil
	}
	return tensor.MultiIndex(idx)
}
