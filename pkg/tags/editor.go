package tags

// KeyEnter is the key that commits the pending tag.
const KeyEnter = "Enter"

// Target receives committed and removed tags. The form store implements it.
type Target interface {
	AddSeedKeyword(candidate string) bool
	RemoveSeedKeywordAt(index int) bool
}

// Editor owns the pending-input buffer of a tag field and forwards commits to
// its Target.
type Editor struct {
	target  Target
	pending string
}

// NewEditor binds an editor to target.
func NewEditor(target Target) *Editor {
	return &Editor{target: target}
}

// SetPending replaces the pending-input buffer (every keystroke).
func (e *Editor) SetPending(text string) {
	e.pending = text
}

// Pending returns the current pending-input buffer.
func (e *Editor) Pending() string {
	return e.pending
}

// Commit sends the pending buffer to the target and clears the buffer, even
// when the target rejects the value as empty or duplicate.
func (e *Editor) Commit() bool {
	candidate := e.pending
	e.pending = ""
	if e.target == nil {
		return false
	}
	return e.target.AddSeedKeyword(candidate)
}

// Remove drops the tag at index.
func (e *Editor) Remove(index int) bool {
	if e.target == nil {
		return false
	}
	return e.target.RemoveSeedKeywordAt(index)
}

// HandleKey processes a key event from the tag input. It returns true when the
// event was consumed by a commit; callers must then suppress any default action
// such as submitting the enclosing form.
func (e *Editor) HandleKey(key string) bool {
	if key != KeyEnter {
		return false
	}
	e.Commit()
	return true
}
