package entities

import (
	"slices"
	"time"
)

// Class identifies a player class that may use a skill
type Class string

const (
	ClassLutador    Class = "Lutador"
	ClassAtirador   Class = "Atirador"
	ClassEspadachim Class = "Espadachim"
)

// AllClasses lists every class, in the order used by the neutral skills
var AllClasses = []Class{ClassLutador, ClassAtirador, ClassEspadachim}

// SkillType tells the combat logic how to apply a skill
type SkillType string

const (
	SkillTypeActiveAttack  SkillType = "active_attack"
	SkillTypeActiveDefense SkillType = "active_defense"
	SkillTypeBuffSelf      SkillType = "buff_self"
	SkillTypeBuffEnemy     SkillType = "buff_enemy"
	SkillTypeHealSelf      SkillType = "heal_self"
	SkillTypePassive       SkillType = "passive"
)

// EffectType discriminates the Effect variant
type EffectType string

const (
	EffectTypeDamage EffectType = "damage"
	EffectTypeBuff   EffectType = "buff"
	EffectTypeHeal   EffectType = "heal"
	EffectTypeDebuff EffectType = "debuff"
)

// Stat is the combat stat a buff or debuff modifies
type Stat string

const (
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
	StatAgility Stat = "agility"
)

// Target is who receives an effect
type Target string

const (
	TargetEnemy Target = "enemy"
	TargetSelf  Target = "self"
)

// Effect is the mechanical consequence of using a skill.
// Damage and heal effects carry Value, Target and Message.
// Buff and debuff effects additionally carry Stat and Duration,
// and Value is a fractional multiplier (0.10 = +10%).
type Effect struct {
	Type     EffectType `json:"type" yaml:"type" validate:"required,oneof=damage buff heal debuff"`
	Stat     Stat       `json:"stat,omitempty" yaml:"stat,omitempty"`
	Value    float64    `json:"value" yaml:"value" validate:"gt=0"`
	Duration int        `json:"duration,omitempty" yaml:"duration,omitempty" validate:"min=0"`
	Target   Target     `json:"target" yaml:"target" validate:"required,oneof=enemy self"`
	Message  string     `json:"message" yaml:"message" validate:"required"`
}

// IsTimed reports whether the effect variant lasts a number of turns
func (e *Effect) IsTimed() bool {
	return e.Type == EffectTypeBuff || e.Type == EffectTypeDebuff
}

// Skill is a combat action definition. Name is the natural key.
type Skill struct {
	ID            string    `json:"id,omitempty" yaml:"-"`
	Name          string    `json:"name" yaml:"name" validate:"required,trimmed"`
	Description   string    `json:"description" yaml:"description" validate:"required"`
	RequiredLevel int       `json:"requiredLevel" yaml:"requiredLevel" validate:"min=1"`
	Classes       []Class   `json:"class" yaml:"class" validate:"required,min=1,unique,dive,oneof=Lutador Atirador Espadachim"`
	Effect        *Effect   `json:"effect" yaml:"effect" validate:"required"`
	Cooldown      int       `json:"cooldown" yaml:"cooldown" validate:"min=0"`
	Type          SkillType `json:"type" yaml:"type" validate:"required,oneof=active_attack active_defense buff_self buff_enemy heal_self passive"`
	CreatedAt     time.Time `json:"createdAt" yaml:"-"`
	UpdatedAt     time.Time `json:"updatedAt" yaml:"-"`
}

// UsableBy reports whether the given class may use the skill
func (s *Skill) UsableBy(class Class) bool {
	return slices.Contains(s.Classes, class)
}

// Clone returns a deep copy of the skill
func (s *Skill) Clone() *Skill {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Classes = slices.Clone(s.Classes)
	if s.Effect != nil {
		effect := *s.Effect
		clone.Effect = &effect
	}
	return &clone
}
