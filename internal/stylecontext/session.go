package stylecontext

// Session is the two-slot draft/applied model for one buyer. The zero value
// is an empty session. A Session is not safe for concurrent use; Store
// serializes access to the sessions it holds.
type Session struct {
	Draft   StyleContext `json:"draft"`
	Applied StyleContext `json:"applied"`
}

// SetDraft shallow-merges p into the draft. Applied is never touched.
func (s *Session) SetDraft(p Partial) {
	s.Draft = s.Draft.Merge(p)
}

// Apply replaces the applied context with a copy of the draft.
func (s *Session) Apply() {
	s.Applied = s.Draft.Clone()
}

// Reset clears both slots.
func (s *Session) Reset() {
	s.Draft = StyleContext{}
	s.Applied = StyleContext{}
}

// IsDirty reports whether the draft has edits that are not applied yet.
func (s Session) IsDirty() bool {
	return !s.Draft.Equal(s.Applied)
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	return Session{Draft: s.Draft.Clone(), Applied: s.Applied.Clone()}
}

// View is the response shape for a session.
type View struct {
	Draft      StyleContext `json:"draft"`
	Applied    StyleContext `json:"applied"`
	IsDirty    bool         `json:"isDirty"`
	HasApplied bool         `json:"hasApplied"`
}

func (s Session) View() View {
	return View{
		Draft:      s.Draft.Clone(),
		Applied:    s.Applied.Clone(),
		IsDirty:    s.IsDirty(),
		HasApplied: !s.Applied.IsEmpty(),
	}
}
