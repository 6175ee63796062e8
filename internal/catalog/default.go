// Package catalog declares the skills every environment must contain.
package catalog

import (
	"github.com/KirkDiggler/skill-seeder/internal/entities"
)

// Default returns the reference skill catalog in seeding order.
// Every call builds fresh values, so callers may modify the result.
func Default() []*entities.Skill {
	return []*entities.Skill{
		// Neutral skills, available to every class
		{
			Name:          "Atacar",
			Description:   "Um ataque físico básico.",
			RequiredLevel: 1,
			Classes:       allClasses(),
			Effect:        damage(10, "Você desferiu um ataque básico!"),
			Cooldown:      0,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Defender",
			Description:   "Aumenta sua defesa por um turno.",
			RequiredLevel: 1,
			Classes:       allClasses(),
			Effect:        selfBuff(entities.StatDefense, 0.5, 1, "Você se preparou para defender!"),
			Cooldown:      0,
			Type:          entities.SkillTypeActiveDefense,
		},

		// Lutador
		{
			Name:          "Sequência de Soco",
			Description:   "Uma sequência rápida de socos que causa dano moderado.",
			RequiredLevel: 5,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        damage(25, "Você desferiu uma sequência rápida de socos!"),
			Cooldown:      2,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Força Brutal",
			Description:   "Aumenta seu poder de ataque em 10% por 3 turnos.",
			RequiredLevel: 5,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        selfBuff(entities.StatAttack, 0.1, 3, "Sua força bruta aumenta por 3 turnos!"),
			Cooldown:      4,
			Type:          entities.SkillTypeBuffSelf,
		},
		{
			Name:          "Soco Energético",
			Description:   "Canaliza energia para um soco poderoso, causando dano significativo.",
			RequiredLevel: 10,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        damage(40, "Você canalizou energia para um soco poderoso!"),
			Cooldown:      3,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Chute Rotatório",
			Description:   "Um chute giratório devastador que atinge o inimigo.",
			RequiredLevel: 20,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        damage(60, "Você girou e desferiu um chute devastador!"),
			Cooldown:      4,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Soco Relâmpago",
			Description:   "Um soco rápido como um relâmpago, com alta precisão.",
			RequiredLevel: 30,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        damage(80, "Um soco rápido como um relâmpago atinge o inimigo!"),
			Cooldown:      5,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Chute Estelar",
			Description:   "Um chute com a força de uma estrela cadente, causando dano massivo.",
			RequiredLevel: 45,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        damage(120, "Você desferiu um chute com a força de uma estrela cadente!"),
			Cooldown:      7,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Rasteira de Diamante",
			Description:   "Uma rasteira implacável que quebra as defesas do inimigo.",
			RequiredLevel: 50,
			Classes:       []entities.Class{entities.ClassLutador},
			Effect:        damage(150, "Uma rasteira implacável quebra as defesas do inimigo!"),
			Cooldown:      8,
			Type:          entities.SkillTypeActiveAttack,
		},

		// Atirador
		{
			Name:          "Tiro Flamejante",
			Description:   "Um tiro imbuído de fogo que causa dano e incendeia o inimigo.",
			RequiredLevel: 5,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        damage(25, "Um tiro flamejante atinge o inimigo!"),
			Cooldown:      2,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Escudo de Fumaça",
			Description:   "Cria uma cortina de fumaça que aumenta sua defesa em 20% por 2 turnos.",
			RequiredLevel: 5,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        selfBuff(entities.StatDefense, 0.2, 2, "Você ergueu uma cortina de fumaça, aumentando sua defesa!"),
			Cooldown:      4,
			Type:          entities.SkillTypeBuffSelf,
		},
		{
			Name:          "Tiro Duplo",
			Description:   "Dispara dois tiros rápidos no alvo.",
			RequiredLevel: 10,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        damage(40, "Dois tiros rápidos atingem o alvo!"),
			Cooldown:      3,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Sequência de Tiros",
			Description:   "Descarrega uma rajada de tiros no inimigo.",
			RequiredLevel: 20,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        damage(60, "Você descarregou uma rajada de tiros!"),
			Cooldown:      4,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Tiro Estelar",
			Description:   "Um tiro brilhante e preciso que acerta o inimigo com grande força.",
			RequiredLevel: 30,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        damage(80, "Um tiro brilhante e preciso acerta o inimigo!"),
			Cooldown:      5,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Rajada Dupla",
			Description:   "Dispara duas rajadas poderosas de uma vez.",
			RequiredLevel: 45,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        damage(120, "Você disparou duas rajadas poderosas de uma vez!"),
			Cooldown:      7,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Tiro Certeiro",
			Description:   "Um tiro fatal que não pode ser evitado, com alta chance de acerto crítico.",
			RequiredLevel: 50,
			Classes:       []entities.Class{entities.ClassAtirador},
			Effect:        damage(150, "Um tiro fatal que não pode ser evitado!"),
			Cooldown:      8,
			Type:          entities.SkillTypeActiveAttack,
		},

		// Espadachim
		{
			Name:          "Corte Afiado",
			Description:   "Um corte rápido e afiado que causa dano moderado.",
			RequiredLevel: 5,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        damage(25, "Um corte rápido e afiado atinge o inimigo!"),
			Cooldown:      2,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Agilidade Felina",
			Description:   "Aumenta sua agilidade em 10% por 3 turnos, tornando-o mais difícil de acertar.",
			RequiredLevel: 5,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        selfBuff(entities.StatAgility, 0.1, 3, "Sua agilidade aumenta, tornando-o mais difícil de acertar!"),
			Cooldown:      4,
			Type:          entities.SkillTypeBuffSelf,
		},
		{
			Name:          "Corte Duplo",
			Description:   "Desfere dois cortes rápidos no alvo.",
			RequiredLevel: 10,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        damage(40, "Você desferiu dois cortes rápidos!"),
			Cooldown:      3,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Sequência de Cortes",
			Description:   "Uma série de cortes rápidos e precisos que causam dano contínuo.",
			RequiredLevel: 20,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        damage(60, "Uma série de cortes rápidos e precisos!"),
			Cooldown:      4,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Corte Duplo Estelar",
			Description:   "Dois cortes poderosos, como estrelas cadentes, com grande impacto.",
			RequiredLevel: 30,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        damage(80, "Dois cortes poderosos, como estrelas cadentes!"),
			Cooldown:      5,
			Type:          entities.SkillTypeActiveAttack,
		},
		{
			Name:          "Espada Flamejante",
			Description:   "Sua espada se incendeia, aumentando seu dano de ataque em 15% por 3 turnos.",
			RequiredLevel: 45,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        selfBuff(entities.StatAttack, 0.15, 3, "Sua espada se incendeia, aumentando seu dano!"),
			Cooldown:      7,
			Type:          entities.SkillTypeBuffSelf,
		},
		{
			Name:          "Corte Mortífero",
			Description:   "Um corte final e devastador que sela o destino do inimigo.",
			RequiredLevel: 50,
			Classes:       []entities.Class{entities.ClassEspadachim},
			Effect:        damage(150, "Um corte final e devastador que sela o destino do inimigo!"),
			Cooldown:      8,
			Type:          entities.SkillTypeActiveAttack,
		},
	}
}

func allClasses() []entities.Class {
	return append([]entities.Class(nil), entities.AllClasses...)
}

func damage(value float64, message string) *entities.Effect {
	return &entities.Effect{
		Type:    entities.EffectTypeDamage,
		Value:   value,
		Target:  entities.TargetEnemy,
		Message: message,
	}
}

func selfBuff(stat entities.Stat, value float64, duration int, message string) *entities.Effect {
	return &entities.Effect{
		Type:     entities.EffectTypeBuff,
		Stat:     stat,
		Value:    value,
		Duration: duration,
		Target:   entities.TargetSelf,
		Message:  message,
	}
}
