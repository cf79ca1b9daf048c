package progression

func (t *Tracker) TrackedUsers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.users)
}
