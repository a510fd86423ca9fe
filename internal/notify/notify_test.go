package notify

import (
	"errors"
	"testing"

	"github.com/gen2brain/beeep"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	beeps    int
	freq     float64
	messages []string
	err      error
}

func newTestNotifier(bell bool, r *recorder) *Notifier {
	n := New(bell, nil)
	n.beep = func(freq float64, duration int) error {
		r.beeps++
		r.freq = freq
		return r.err
	}
	n.notify = func(title, message string, icon any) error {
		r.messages = append(r.messages, title+": "+message)
		return r.err
	}
	return n
}

func TestBellEnabled(t *testing.T) {
	r := &recorder{}
	n := newTestNotifier(true, r)

	n.Bell()
	assert.Equal(t, 1, r.beeps)
	assert.Equal(t, beeep.DefaultFreq, r.freq)
}

func TestBellDisabled(t *testing.T) {
	r := &recorder{}
	n := newTestNotifier(false, r)

	n.Bell()
	assert.Zero(t, r.beeps)
}

func TestBellErrorIsSwallowed(t *testing.T) {
	r := &recorder{err: errors.New("no speaker")}
	n := newTestNotifier(true, r)

	assert.NotPanics(t, n.Bell)
	assert.Equal(t, 1, r.beeps)
}

func TestLaunchFailed(t *testing.T) {
	r := &recorder{}
	n := newTestNotifier(false, r)

	n.LaunchFailed("frobnicate", errors.New("exec format error"))
	assert.Equal(t, []string{"launchbox: Failed to run frobnicate: exec format error"}, r.messages)
}
