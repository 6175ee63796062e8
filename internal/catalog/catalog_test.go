package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-seeder/internal/catalog"
	"github.com/KirkDiggler/skill-seeder/internal/entities"
	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
)

func TestDefault_EveryEntryIsWellFormed(t *testing.T) {
	for _, skill := range catalog.Default() {
		assert.NoError(t, skill.Validate(), skill.Name)
	}
}

func TestDefault_NamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, skill := range catalog.Default() {
		assert.False(t, seen[skill.Name], "duplicate skill %s", skill.Name)
		seen[skill.Name] = true
	}
	assert.Len(t, seen, 23)
}

func TestDefault_NeutralSkillsComeFirst(t *testing.T) {
	skills := catalog.Default()
	require.GreaterOrEqual(t, len(skills), 2)

	assert.Equal(t, "Atacar", skills[0].Name)
	assert.Equal(t, "Defender", skills[1].Name)
	for _, class := range entities.AllClasses {
		assert.True(t, skills[0].UsableBy(class))
		assert.True(t, skills[1].UsableBy(class))
	}
	assert.Equal(t, entities.EffectTypeBuff, skills[1].Effect.Type)
	assert.Equal(t, entities.StatDefense, skills[1].Effect.Stat)
}

func TestDefault_EveryClassHasSkills(t *testing.T) {
	perClass := make(map[entities.Class]int)
	for _, skill := range catalog.Default() {
		for _, class := range skill.Classes {
			perClass[class]++
		}
	}

	for _, class := range entities.AllClasses {
		assert.Equal(t, 9, perClass[class], string(class))
	}
}

func TestDefault_ReturnsFreshValues(t *testing.T) {
	first := catalog.Default()
	first[0].Classes[0] = "Mago"
	first[0].Effect.Value = 999

	second := catalog.Default()
	assert.Equal(t, entities.ClassLutador, second[0].Classes[0])
	assert.Equal(t, float64(10), second[0].Effect.Value)
}

const yamlCatalog = `
skills:
  - name: Atacar
    description: Um ataque físico básico.
    requiredLevel: 1
    class: [Lutador, Atirador, Espadachim]
    effect:
      type: damage
      value: 10
      target: enemy
      message: Você desferiu um ataque básico!
    cooldown: 0
    type: active_attack
  - name: Defender
    description: Aumenta sua defesa por um turno.
    requiredLevel: 1
    class: [Lutador]
    effect:
      type: buff
      stat: defense
      value: 0.5
      duration: 1
      target: self
      message: Você se preparou para defender!
    cooldown: 0
    type: active_defense
`

func TestDecode_YAML(t *testing.T) {
	skills, err := catalog.Decode(strings.NewReader(yamlCatalog))
	require.NoError(t, err)
	require.Len(t, skills, 2)

	assert.Equal(t, "Atacar", skills[0].Name)
	assert.Equal(t, []entities.Class{entities.ClassLutador, entities.ClassAtirador, entities.ClassEspadachim}, skills[0].Classes)
	assert.Equal(t, float64(10), skills[0].Effect.Value)
	assert.Equal(t, entities.SkillTypeActiveDefense, skills[1].Type)
	assert.Equal(t, 1, skills[1].Effect.Duration)
	assert.Equal(t, 0.5, skills[1].Effect.Value)

	for _, skill := range skills {
		assert.NoError(t, skill.Validate())
	}
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"skills": [{"name": "Atacar", "description": "Um ataque.", "requiredLevel": 1,
		"class": ["Lutador"], "effect": {"type": "damage", "value": 10, "target": "enemy", "message": "Golpe!"},
		"cooldown": 0, "type": "active_attack"}]}`

	skills, err := catalog.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.NoError(t, skills[0].Validate())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "no skills", doc: "skills: []\n"},
		{name: "unknown field", doc: "skills:\n  - name: Atacar\n    classes: [Lutador]\n"},
		{name: "null entry", doc: "skills:\n  - ~\n"},
		{name: "not yaml", doc: "skills: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, dnderr.IsInvalidArgument(err))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCatalog), 0o600))

	skills, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, skills, 2)

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
