package catalog

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/skill-seeder/internal/entities"
	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
)

// fileCatalog is the layout of an external catalog file:
//
//	skills:
//	  - name: Atacar
//	    description: Um ataque físico básico.
//	    requiredLevel: 1
//	    class: [Lutador, Atirador, Espadachim]
//	    effect: {type: damage, value: 10, target: enemy, message: "..."}
//	    cooldown: 0
//	    type: active_attack
type fileCatalog struct {
	Skills []*entities.Skill `yaml:"skills"`
}

// LoadFile reads a catalog from a YAML or JSON file
func LoadFile(path string) ([]*entities.Skill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to open catalog file")
	}
	defer f.Close()

	skills, err := Decode(f)
	if err != nil {
		return nil, dnderr.Wrapf(err, "catalog file %s", path)
	}

	return skills, nil
}

// Decode parses a catalog document. Unknown fields are rejected so a typo
// in a field name does not silently drop data.
func Decode(r io.Reader) ([]*entities.Skill, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc fileCatalog
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dnderr.InvalidArgument("catalog is empty")
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse catalog")
	}

	if len(doc.Skills) == 0 {
		return nil, dnderr.InvalidArgument("catalog has no skills")
	}
	for i, skill := range doc.Skills {
		if skill == nil {
			return nil, dnderr.InvalidArgumentf("catalog entry %d is empty", i)
		}
	}

	return doc.Skills, nil
}
