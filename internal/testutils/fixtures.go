package testutils

import (
	"github.com/KirkDiggler/skill-seeder/internal/entities"
)

// CreateTestDamageSkill creates a well-formed damage skill usable by every class
func CreateTestDamageSkill(name string, value float64) *entities.Skill {
	return &entities.Skill{
		Name:          name,
		Description:   "Um ataque físico básico.",
		RequiredLevel: 1,
		Classes:       append([]entities.Class(nil), entities.AllClasses...),
		Effect: &entities.Effect{
			Type:    entities.EffectTypeDamage,
			Value:   value,
			Target:  entities.TargetEnemy,
			Message: "Você desferiu um ataque básico!",
		},
		Cooldown: 0,
		Type:     entities.SkillTypeActiveAttack,
	}
}

// CreateTestBuffSkill creates a well-formed self buff skill
func CreateTestBuffSkill(name string, stat entities.Stat, value float64, duration int) *entities.Skill {
	return &entities.Skill{
		Name:          name,
		Description:   "Aumenta sua defesa por um turno.",
		RequiredLevel: 1,
		Classes:       append([]entities.Class(nil), entities.AllClasses...),
		Effect: &entities.Effect{
			Type:     entities.EffectTypeBuff,
			Stat:     stat,
			Value:    value,
			Duration: duration,
			Target:   entities.TargetSelf,
			Message:  "Você se preparou para defender!",
		},
		Cooldown: 0,
		Type:     entities.SkillTypeActiveDefense,
	}
}

// CreateTestCatalog returns the two neutral skills, Atacar and Defender
func CreateTestCatalog() []*entities.Skill {
	return []*entities.Skill{
		CreateTestDamageSkill("Atacar", 10),
		CreateTestBuffSkill("Defender", entities.StatDefense, 0.5, 1),
	}
}
