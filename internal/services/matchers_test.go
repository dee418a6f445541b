package services_test

import (
	"fmt"

	"github.com/sbilibin2017/gw-auth-web/internal/models"
)

// eventMatcher matches an AuthEvent by action and outcome.
type eventMatcher struct {
	action  string
	outcome string
}

func event(action, outcome string) eventMatcher {
	return eventMatcher{action: action, outcome: outcome}
}

func (m eventMatcher) Matches(x interface{}) bool {
	ev, ok := x.(models.AuthEvent)
	return ok && ev.Action == m.action && ev.Outcome == m.outcome
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("auth event %s/%s", m.action, m.outcome)
}
