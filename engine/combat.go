package engine

import (
	"fmt"

	"github.com/nathoo/thornhold/engine/state"
	"github.com/nathoo/thornhold/types"
)

// DamageCalc computes one blow: max(1, attack − defense + variance in
// [-2,2]), doubled on an independent 10% critical roll.
func DamageCalc(attack, defense int, rng *RNG) (damage int, critical bool) {
	variance := rng.Range(-2, 2)
	critical = rng.Chance(10)
	damage = attack - defense + variance
	if damage < 1 {
		damage = 1
	}
	if critical {
		damage *= 2
	}
	return damage, critical
}

// resolveAttack executes exactly one player attack and, if the enemy
// survives, exactly one retaliation.
func (e *Engine) resolveAttack() types.Result {
	var result types.Result

	if e.World.Mode.Kind != types.ModeInCombat {
		return errorResult("You're not in combat!")
	}
	enemyID := e.World.Mode.EnemyID
	enemy, ok := e.World.Npcs[enemyID]
	if !ok {
		e.World.Mode = types.Exploring()
		e.World.Combat = nil
		result.Lines = append(result.Lines, types.OutputLine{Text: "Your opponent has vanished.", Kind: types.LineSystem})
		result.Action = types.Action{Kind: types.ActionDisplay}
		return result
	}

	damage, crit := DamageCalc(state.EffectiveAttack(e.World), enemy.Defense, e.RNG)
	enemy.Health -= damage
	if enemy.Health < 0 {
		enemy.Health = 0
	}

	state.LogBlow(e.World, types.CombatLogEntry{
		Turn:         e.World.Player.TurnsElapsed,
		Attacker:     "Player",
		Defender:     enemy.Name,
		Damage:       damage,
		DefenderHP:   enemy.Health,
		PlayerAttack: true,
	})
	result.Lines = append(result.Lines, types.OutputLine{
		Text: blowText("You", enemy.Name, damage, crit, enemy.Health),
		Kind: types.LineCombat,
	})
	result.Action = types.Action{
		Kind: types.ActionCombatAttack,
		Text: fmt.Sprintf("hit %s for %d damage (%d/%d HP left)", enemy.Name, damage, enemy.Health, enemy.MaxHealth),
	}

	if enemy.Health <= 0 {
		result.Lines = append(result.Lines, e.killEnemy(enemy)...)
		result.Action = types.Action{Kind: types.ActionCombatVictory, Text: "defeated " + enemy.Name}
		return result
	}

	// Retaliation.
	retaliation, died := e.enemyBlow(enemy)
	result.Lines = append(result.Lines, retaliation...)
	if died {
		result.Action = types.Action{Kind: types.ActionPlayerDeath}
		return result
	}

	if e.World.Combat != nil {
		e.World.Combat.TurnCount++
	}
	return result
}

// enemyBlow applies one uncontested enemy attack. Returns the output
// lines and whether the player died.
func (e *Engine) enemyBlow(enemy *types.Npc) ([]types.OutputLine, bool) {
	damage, crit := DamageCalc(enemy.Attack, state.EffectiveDefense(e.World), e.RNG)
	e.World.Player.Health -= damage
	if e.World.Player.Health < 0 {
		e.World.Player.Health = 0
	}

	state.LogBlow(e.World, types.CombatLogEntry{
		Turn:       e.World.Player.TurnsElapsed,
		Attacker:   enemy.Name,
		Defender:   "Player",
		Damage:     damage,
		DefenderHP: e.World.Player.Health,
	})
	lines := []types.OutputLine{{
		Text: blowText(enemy.Name, "you", damage, crit, e.World.Player.Health),
		Kind: types.LineCombat,
	}}

	if e.World.Player.Health <= 0 {
		e.World.Mode = types.GameOver(types.EndingDeath)
		e.World.Combat = nil
		lines = append(lines, types.OutputLine{
			Text: "You collapse to the ground. Darkness claims you...",
			Kind: types.LineCombat,
		})
		return lines, true
	}
	return lines, false
}

// killEnemy finalizes an enemy death: Dead state, items transferred to
// the location, presence cleared, combat over.
func (e *Engine) killEnemy(enemy *types.Npc) []types.OutputLine {
	enemy.DialogueState = types.StateDead
	enemy.Hostile = false

	var lines []types.OutputLine
	loc := state.CurrentLocation(e.World)
	if loc != nil {
		var droppedNames []string
		for _, itemID := range enemy.Items {
			if !state.ContainsString(loc.Items, itemID) {
				loc.Items = append(loc.Items, itemID)
			}
			droppedNames = append(droppedNames, state.ItemName(e.World, itemID))
		}
		loc.Npcs = state.RemoveString(loc.Npcs, enemy.ID)
		if len(droppedNames) > 0 {
			lines = append(lines, types.OutputLine{
				Text: "Dropped: " + joinNames(droppedNames),
				Kind: types.LineSystem,
			})
		}
	}

	lines = append(lines, types.OutputLine{
		Text: fmt.Sprintf("%s has been defeated!", enemy.Name),
		Kind: types.LineCombat,
	})

	e.World.Mode = types.Exploring()
	e.World.Combat = nil

	// Boss kills count as a combat victory ending.
	if enemy.ID == bossNpcID {
		e.World.Mode = types.GameOver(types.EndingVictoryCombat)
		lines = append(lines, types.OutputLine{
			Text: "With the keeper destroyed, the depths fall silent. Your trial is over.",
			Kind: types.LineNarration,
		})
	}

	lines = append(lines, e.fireKillEvents(enemy.ID)...)
	return lines
}

// resolveFlee attempts to escape combat: 50% success. Failure costs an
// uncontested enemy attack; success relocates the player through a
// uniformly random exit and runs the arrival pipeline.
func (e *Engine) resolveFlee() types.Result {
	var result types.Result

	if e.World.Mode.Kind != types.ModeInCombat {
		return errorResult("You're not in combat!")
	}
	enemyID := e.World.Mode.EnemyID
	e.World.Player.TurnsElapsed++

	if !e.RNG.Chance(50) {
		result.Lines = append(result.Lines, types.OutputLine{Text: "You fail to escape!", Kind: types.LineCombat})
		result.Action = types.Action{Kind: types.ActionCombatFlee, Text: "flee failed"}
		if enemy, ok := e.World.Npcs[enemyID]; ok {
			lines, died := e.enemyBlow(enemy)
			result.Lines = append(result.Lines, lines...)
			if died {
				result.Action = types.Action{Kind: types.ActionPlayerDeath}
			}
		}
		return result
	}

	result.Lines = append(result.Lines, types.OutputLine{Text: "You manage to escape!", Kind: types.LineCombat})
	result.Action = types.Action{Kind: types.ActionCombatFlee, Text: "fled combat"}
	e.World.Mode = types.Exploring()
	e.World.Combat = nil

	loc := state.CurrentLocation(e.World)
	if loc == nil || len(loc.Exits) == 0 {
		result.Lines = append(result.Lines, types.OutputLine{
			Text: "You break free from combat but there's nowhere to run!",
			Kind: types.LineSystem,
		})
		return result
	}

	dests := make([]string, 0, len(loc.Exits))
	for _, dir := range orderedDirections {
		if dest, ok := loc.Exits[dir]; ok {
			dests = append(dests, dest)
		}
	}
	dest := dests[e.RNG.Intn(len(dests))]
	destName := dest
	if d, ok := e.World.Locations[dest]; ok {
		destName = d.Name
	}
	result.Lines = append(result.Lines, types.OutputLine{
		Text: fmt.Sprintf("You flee to %s.", destName),
		Kind: types.LineSystem,
	})

	arrival := e.arriveAt(dest)
	result.Lines = append(result.Lines, arrival...)
	return result
}

// fireKillEvents runs OnKill events for the current location.
func (e *Engine) fireKillEvents(npcID string) []types.OutputLine {
	return e.processEvents(types.Trigger{Kind: types.OnKill, ID: npcID})
}

func blowText(attacker, defender string, damage int, critical bool, remainingHP int) string {
	if critical {
		return fmt.Sprintf("CRITICAL HIT! %s strikes %s for %d damage! (%d HP remaining)",
			attacker, defender, damage, remainingHP)
	}
	return fmt.Sprintf("%s attacks %s for %d damage. (%d HP remaining)",
		attacker, defender, damage, remainingHP)
}
