package artifact

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Load reads and parses a single artifact file.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "artifact: read %s", path)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "artifact: parse %s", path)
	}
	a.Path = path
	return a, nil
}

// LoadAll reads every path, skipping artifacts that fail to read, parse, or
// shape-validate. A skipped artifact reduces the contributing provider count;
// it never aborts the batch. Deciding whether zero survivors is fatal is the
// consensus engine's call.
func LoadAll(paths []string) []*Artifact {
	log := zap.L()
	out := make([]*Artifact, 0, len(paths))
	for _, p := range paths {
		a, err := Load(p)
		if err != nil {
			log.Warn("artifact excluded", zap.String("path", p), zap.Error(err))
			continue
		}
		out = append(out, a)
	}
	return out
}
