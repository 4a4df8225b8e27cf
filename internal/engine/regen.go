package engine

import "fmt"

// regenFlag is the save-document flag carrying an active heal-over-time
// effect: a map with "value" and "turns" entries.
const regenFlag = "regen_hp"

// regenState reads the regen flag. Flag maps round-trip through JSON, so
// the numbers may arrive as float64.
func regenState(flags map[string]any) (value, turns int, ok bool) {
	entry, found := flags[regenFlag].(map[string]any)
	if !found {
		return 0, 0, false
	}
	value = flagInt(entry["value"])
	turns = flagInt(entry["turns"])
	if value <= 0 || turns <= 0 {
		return 0, 0, false
	}
	return value, turns, true
}

func flagInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

// tickRegen advances an active regeneration by one turn, returning the
// new hp and the lines describing the tick. The countdown lands in the
// request delta; an expired effect removes its flag.
func (e *Engine) tickRegen(req *request, currentHP, maxHP int) (int, []string) {
	value, turns, ok := regenState(req.state.Flags)
	if !ok {
		return currentHP, nil
	}

	healed := value
	if healed > maxHP-currentHP {
		healed = maxHP - currentHP
	}

	var lines []string
	if healed > 0 {
		lines = append(lines, fmt.Sprintf("Regeneration restores %d HP.", healed))
	}

	turns--
	if turns <= 0 {
		req.delta.SetFlag(regenFlag, nil)
		lines = append(lines, "The regeneration fades.")
	} else {
		req.delta.SetFlag(regenFlag, map[string]any{"value": value, "turns": turns})
	}

	return currentHP + healed, lines
}
