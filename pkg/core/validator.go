package core

// validateGrammar checks the grammar as a whole once its "end" line, numbered
// endLine, has been reached.
func validateGrammar(g *Grammar, file string, endLine int) *GrammarError {
	if g.Name == "" {
		return parseError(file, endLine, "scanner name not declared")
	}
	if len(g.Rules) == 0 {
		return parseError(file, endLine, "no rules defined")
	}

	stateRules := make(map[string]bool)
	for _, r := range g.Rules {
		stateRules[r.State] = true
	}
	for _, r := range g.Rules {
		if r.Switch && r.Next != "" && !stateRules[r.Next] {
			return parseError(file, r.Line, "state %q has no rules", r.Next)
		}
	}
	if !stateRules[""] {
		return parseError(file, endLine, "no rules for the initial state")
	}

	return nil
}

// unreachableStates returns states that have rules but are never switched to.
func unreachableStates(g *Grammar) []string {
	entered := make(map[string]bool)
	for _, r := range g.Rules {
		if r.Switch {
			entered[r.Next] = true
		}
	}

	var states []string
	for _, s := range g.States() {
		if !entered[s] {
			states = append(states, s)
		}
	}
	return states
}
