// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Progress labels for which a hazard is waiting on someone.
const (
	StageReview         = "审核"
	StageFeedback       = "反馈"
	StageChangeFeedback = "变更责任人/延期反馈"
)

var subProcessNumberRe = regexp.MustCompile(`单据编号：(.+)`)

// AwaitingAction reports whether progress is one of the stages where the
// un-actioned person is the current handler.
func AwaitingAction(progress string) bool {
	switch progress {
	case StageReview, StageFeedback, StageChangeFeedback:
		return true
	}
	return false
}

// ExtractSubProcessNumber returns the value following "单据编号：", or "".
func ExtractSubProcessNumber(text string) string {
	m := subProcessNumberRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// CurrentHandler is the un-actioned person while the hazard awaits action.
func CurrentHandler(progress, unactioned string) string {
	if AwaitingAction(progress) {
		return unactioned
	}
	return ""
}

// OverdueDays counts whole days (rounded up) between deadline and the
// calendar date of today. It is 0 for hazards not awaiting action, for
// missing or unreadable deadlines and for deadlines not yet passed.
func OverdueDays(progress, deadline string, today time.Time) int {
	if !AwaitingAction(progress) || deadline == "" {
		return 0
	}

	due, ok := ParseDate(deadline)
	if !ok {
		return 0
	}

	days := int(math.Ceil(midnight(today).Sub(due).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
