package polyio

import (
	"io"

	"github.com/osuushi/convexpart/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The YAML document layout:
//
//	polygons:
//	  - points:
//	      - {x: 0, y: 0}
//	      - {x: 1, y: 0}
//	      - {x: 0, y: 1}
type document struct {
	Polygons advanced.PolygonList `yaml:"polygons"`
}

func ReadYAML(r io.Reader) (advanced.PolygonList, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}
	for i, poly := range doc.Polygons {
		for j, p := range poly.Points {
			if p == nil {
				return nil, errors.Errorf("polygon %d, point %d: empty point", i+1, j+1)
			}
		}
	}
	return doc.Polygons, nil
}

func WriteYAML(w io.Writer, list advanced.PolygonList) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document{Polygons: list}); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml")
}
