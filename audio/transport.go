package audio

// Transport holds sustained voices until they are force-stopped.
type Transport struct {
	voices []*Voice

	// Trace receives stop errors that StopAll swallowed.
	Trace func(format string, args ...interface{})
}

// Hold retains a sustained voice. Nil voices are ignored.
func (t *Transport) Hold(v *Voice) {
	if v == nil {
		return
	}
	t.voices = append(t.voices, v)
}

// Len returns the number of held voices.
func (t *Transport) Len() int {
	return len(t.voices)
}

// StopAll stops and forgets every held voice, returning how many were held.
// Voices that already finished on their own are not an error.
func (t *Transport) StopAll() int {
	n := len(t.voices)
	for i, v := range t.voices {
		if err := v.Stop(); err != nil && t.Trace != nil {
			t.Trace("transport: ignoring stop error: %v", err)
		}
		t.voices[i] = nil
	}
	t.voices = t.voices[:0]
	return n
}
