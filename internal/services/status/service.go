package status

import (
	"sync"
)

// Activity is the assistant's current processing phase, distinct from its
// enabled/disabled mode.
type Activity string

const (
	ActivityReady      Activity = "ready"
	ActivityDisabled   Activity = "disabled"
	ActivityGenerating Activity = "generating"
	ActivityNoResponse Activity = "no_response"
	ActivityError      Activity = "error"
)

// displayText maps each activity to its status-bar presentation.
var displayText = map[Activity]string{
	ActivityReady:      "Quill: ready",
	ActivityDisabled:   "Quill: disabled",
	ActivityGenerating: "Quill: generating…",
	ActivityNoResponse: "Quill: no response",
	ActivityError:      "Quill: error",
}

// Update is a single status transition as pushed to subscribers.
type Update struct {
	Activity Activity `json:"activity"`
	Text     string   `json:"text"`
}

// Snapshot is the full assistant status as read by the editor surface.
type Snapshot struct {
	Enabled  bool     `json:"enabled"`
	Activity Activity `json:"activity"`
	Text     string   `json:"text"`
}

// Service tracks the process-wide enabled flag and the transient activity of
// the in-flight operation. Disabled pre-empts every other activity: while
// enabled is false, Activity reports Disabled no matter what a pipeline stage
// last pushed. Nothing is persisted across restarts.
type Service struct {
	mu          sync.RWMutex
	enabled     bool
	activity    Activity
	subscribers []func(Update)
}

// NewService starts enabled and idle.
func NewService() *Service {
	return &Service{
		enabled:  true,
		activity: ActivityReady,
	}
}

// Subscribe registers a callback invoked on every status transition.
// Callbacks run synchronously under the service lock, so they must not block;
// the WebSocket broadcaster hands frames off with a write deadline.
func (s *Service) Subscribe(fn func(Update)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Enabled reports the process-wide enabled flag.
func (s *Service) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled flips the enabled flag. Disabling forces the Disabled activity;
// enabling returns the assistant to Ready.
func (s *Service) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	if enabled {
		s.activity = ActivityReady
	} else {
		s.activity = ActivityDisabled
	}
	update := s.updateLocked()
	s.notifyLocked(update)
	s.mu.Unlock()
}

// Activity returns the effective activity, with Disabled pre-empting
// whatever was last pushed.
func (s *Service) Activity() Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.effectiveLocked()
}

// SetActivity records a pipeline checkpoint. Pushes while disabled are
// dropped: a disabled assistant refuses work before reaching the network
// stage, so no stage may surface Generating or a terminal state.
func (s *Service) SetActivity(activity Activity) {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return
	}
	s.activity = activity
	update := s.updateLocked()
	s.notifyLocked(update)
	s.mu.Unlock()
}

// Text returns the status-bar text for the effective activity.
func (s *Service) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return displayText[s.effectiveLocked()]
}

// Snapshot returns the full current status.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activity := s.effectiveLocked()
	return Snapshot{
		Enabled:  s.enabled,
		Activity: activity,
		Text:     displayText[activity],
	}
}

func (s *Service) effectiveLocked() Activity {
	if !s.enabled {
		return ActivityDisabled
	}
	return s.activity
}

func (s *Service) updateLocked() Update {
	activity := s.effectiveLocked()
	return Update{Activity: activity, Text: displayText[activity]}
}

func (s *Service) notifyLocked(update Update) {
	for _, fn := range s.subscribers {
		fn(update)
	}
}
