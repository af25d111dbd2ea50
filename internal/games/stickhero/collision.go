package stickhero

// Resolve returns the platform the active (last) stick's tip lands on.
// The tip must lie strictly inside the platform: touching either edge is a miss.
func Resolve(sticks []Stick, platforms []Platform) (Platform, bool) {
	if len(sticks) == 0 {
		return Platform{}, false
	}
	tip := sticks[len(sticks)-1].Tip()
	for _, p := range platforms {
		if p.Span().ContainsOpen(tip) {
			return p, true
		}
	}
	return Platform{}, false
}
