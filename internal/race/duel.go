package race

// duelSpeedBoost is the speed factor a duel participant carries while
// the duel runs. High-Guts competitors already got their momentum
// surge at trigger time, so only the weak-tier factor applies here.
func (e *Engine) duelSpeedBoost(guts int) float64 {
	if guts > e.params.Duel.GutsTiers[2] {
		return 0
	}
	return e.params.Duel.WeakBoost
}

// duelStep runs the late-race duel subsystem after ranking. Inside
// the remaining-distance window it clusters active competitors by
// proximity; one cluster member may initiate a duel, granting every
// member a one-time stamina top-up and, above the Guts tiers, a
// momentum surge. A competitor initiates at most once per race, and
// the benefits are one-time as well.
func (e *Engine) duelStep() []Event {
	d := &e.params.Duel
	if len(e.order) == 0 {
		return nil
	}
	remaining := e.cfg.Distance - e.states[e.order[0]].distance

	if e.duelOn {
		if remaining < d.EndAt || !e.anyDuelists() {
			e.endDuel()
		}
		return nil
	}
	if remaining < d.WindowMin || remaining > d.WindowMax {
		return nil
	}

	active := make([]int, 0, len(e.order))
	for _, id := range e.order {
		if e.states[id].active() {
			active = append(active, id)
		}
	}
	if len(active) < 2 {
		return nil
	}

	for _, group := range e.clusters(active) {
		for _, id := range group {
			st := &e.states[id]
			guts := e.profiles[id].Stats.Guts

			chance := minf(d.GutsChanceCap, float64(guts)/d.GutsScale)
			ratio := float64(e.rank[id]) / float64(len(e.order))
			if ratio >= d.MidPackLo && ratio <= d.MidPackHi {
				chance *= d.MidPackFactor
			}
			chance *= d.BaseFactor

			if st.duelStarted || e.rng.Float64() >= chance {
				continue
			}

			st.duelStarted = true
			e.duelOn = true
			for _, member := range group {
				e.applyDuelBoost(member)
			}
			return []Event{{Time: e.time, Tick: e.tick, ID: id, Kind: EventDuel}}
		}
	}
	return nil
}

// clusters groups rank-adjacent active competitors whose gaps stay
// within the proximity band. Only groups of two or more can duel.
func (e *Engine) clusters(active []int) [][]int {
	var groups [][]int
	current := []int{active[0]}
	for i := 1; i < len(active); i++ {
		prev := e.states[active[i-1]].distance
		curr := e.states[active[i]].distance
		if prev-curr <= e.params.Duel.Proximity {
			current = append(current, active[i])
			continue
		}
		if len(current) >= 2 {
			groups = append(groups, current)
		}
		current = []int{active[i]}
	}
	if len(current) >= 2 {
		groups = append(groups, current)
	}
	return groups
}

func (e *Engine) applyDuelBoost(id int) {
	d := &e.params.Duel
	st := &e.states[id]
	guts := e.profiles[id].Stats.Guts
	st.inDuel = true

	if !st.duelBoosted {
		st.duelBoosted = true
		topUp := minf(d.StaminaBoostCap, float64(guts)/d.StaminaBoostScale)
		st.stamina = minf(100.0, st.stamina+topUp)
		for i, tier := range d.GutsTiers {
			if guts > tier {
				st.momentum += d.TierBoosts[i]
				break
			}
		}
	}
}

func (e *Engine) anyDuelists() bool {
	for id := range e.states {
		if e.states[id].inDuel && e.states[id].active() {
			return true
		}
	}
	return false
}

func (e *Engine) endDuel() {
	e.duelOn = false
	for id := range e.states {
		e.states[id].inDuel = false
	}
}
