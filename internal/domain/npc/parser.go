package npc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/character-vault/internal/domain/shared"
)

// Statblock prose follows the SRD conventions closely enough that a
// handful of patterns cover almost every published action. This is
// best effort extraction, not a grammar; anything unrecognized is
// treated as a flavor-only trait and an authored ParsedAttack on the
// trait always wins over a parsed one.
var (
	toHitPattern  = regexp.MustCompile(`\+(\d+)\s+to hit`)
	reachPattern  = regexp.MustCompile(`reach\s+(\d+)\s*ft`)
	rangePattern  = regexp.MustCompile(`range\s+(\d+)(?:/\d+)?\s*ft`)
	targetPattern = regexp.MustCompile(`(one|two|three)\s+(?:target|creature)s?`)

	// "Hit: 7 (1d8 + 3) slashing damage" with the average and parens
	// optional. The dice group tolerates interior spaces which are
	// stripped before use.
	hitPattern       = regexp.MustCompile(`Hit(?: or Miss)?:\s*(?:\d+\s*)?\(?(\d+d\d+(?:\s*[+-]\s*\d+)?)\)?\s+([a-z]+)\s+damage`)
	versatilePattern = regexp.MustCompile(`or\s+(?:\d+\s*)?\(?(\d+d\d+(?:\s*[+-]\s*\d+)?)\)?\s+([a-z]+)\s+damage\s+if used with two hands`)
	savePattern      = regexp.MustCompile(`DC\s+(\d+)\s+(\w+)\s+saving throw`)
	saveDamage       = regexp.MustCompile(`(?:\d+\s*)?\(?(\d+d\d+(?:\s*[+-]\s*\d+)?)\)?\s+([a-z]+)\s+damage\s+on a fail`)
)

// ParseAttackText extracts structured attack, damage, and saving throw
// data from a monster action description. It returns nil when the text
// contains no recognizable pattern.
func ParseAttackText(description string) *shared.ParsedAttack {
	if description == "" {
		return nil
	}

	parsed := &shared.ParsedAttack{}

	if m := toHitPattern.FindStringSubmatch(description); m != nil {
		bonus, _ := strconv.Atoi(m[1])
		attack := &shared.AttackInfo{Bonus: bonus}
		if rm := reachPattern.FindStringSubmatch(description); rm != nil {
			attack.Reach, _ = strconv.Atoi(rm[1])
		}
		if rm := rangePattern.FindStringSubmatch(description); rm != nil {
			attack.Range, _ = strconv.Atoi(rm[1])
		}
		if tm := targetPattern.FindStringSubmatch(description); tm != nil {
			attack.Target = tm[0]
		}
		parsed.Attack = attack
	}

	if m := hitPattern.FindStringSubmatch(description); m != nil {
		parsed.Hit = &shared.DamageInfo{
			DiceString: normalizeDice(m[1]),
			DamageType: m[2],
			FullText:   m[0],
		}
	}

	if m := versatilePattern.FindStringSubmatch(description); m != nil {
		parsed.Versatile = &shared.DamageInfo{
			DiceString: normalizeDice(m[1]),
			DamageType: m[2],
			FullText:   m[0],
		}
	}

	if m := savePattern.FindStringSubmatch(description); m != nil {
		if ability := shared.ParseAttribute(m[2]); ability != shared.AttributeNone {
			dc, _ := strconv.Atoi(m[1])
			parsed.SavingThrow = &shared.SaveEffect{DC: dc, Ability: ability}

			// A save effect with no attack roll may still deal damage
			// on a failed save.
			if parsed.Attack == nil && parsed.Hit == nil {
				if dm := saveDamage.FindStringSubmatch(description); dm != nil {
					parsed.Hit = &shared.DamageInfo{
						DiceString: normalizeDice(dm[1]),
						DamageType: dm[2],
						FullText:   dm[0],
					}
				}
			}
		}
	}

	if parsed.Attack == nil && parsed.Hit == nil && parsed.Versatile == nil && parsed.SavingThrow == nil {
		return nil
	}
	return parsed
}

func normalizeDice(dice string) string {
	return strings.ReplaceAll(dice, " ", "")
}
