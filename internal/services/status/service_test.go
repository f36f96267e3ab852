package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	s := NewService()

	assert.True(t, s.Enabled())
	assert.Equal(t, ActivityReady, s.Activity())
	assert.Equal(t, "Quill: ready", s.Text())
}

func TestActivityTransitions(t *testing.T) {
	s := NewService()

	s.SetActivity(ActivityGenerating)
	assert.Equal(t, ActivityGenerating, s.Activity())
	assert.Equal(t, "Quill: generating…", s.Text())

	s.SetActivity(ActivityNoResponse)
	assert.Equal(t, ActivityNoResponse, s.Activity())

	s.SetActivity(ActivityReady)
	assert.Equal(t, ActivityReady, s.Activity())
}

func TestDisabledPreemptsActivity(t *testing.T) {
	s := NewService()

	s.SetActivity(ActivityGenerating)
	s.SetEnabled(false)

	assert.False(t, s.Enabled())
	assert.Equal(t, ActivityDisabled, s.Activity())
	assert.Equal(t, "Quill: disabled", s.Text())

	// pushes while disabled are dropped, never surfacing Generating
	s.SetActivity(ActivityGenerating)
	assert.Equal(t, ActivityDisabled, s.Activity())

	s.SetEnabled(true)
	assert.Equal(t, ActivityReady, s.Activity())
}

func TestSnapshot(t *testing.T) {
	s := NewService()
	s.SetActivity(ActivityError)

	snap := s.Snapshot()
	assert.True(t, snap.Enabled)
	assert.Equal(t, ActivityError, snap.Activity)
	assert.Equal(t, "Quill: error", snap.Text)
}

func TestSubscribersReceiveTransitions(t *testing.T) {
	s := NewService()

	var got []Update
	s.Subscribe(func(u Update) {
		got = append(got, u)
	})

	s.SetActivity(ActivityGenerating)
	s.SetActivity(ActivityReady)
	s.SetEnabled(false)

	if assert.Len(t, got, 3) {
		assert.Equal(t, ActivityGenerating, got[0].Activity)
		assert.Equal(t, ActivityReady, got[1].Activity)
		assert.Equal(t, ActivityDisabled, got[2].Activity)
		assert.Equal(t, "Quill: disabled", got[2].Text)
	}

	// dropped push while disabled notifies nobody
	s.SetActivity(ActivityGenerating)
	assert.Len(t, got, 3)
}
