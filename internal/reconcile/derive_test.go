// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractSubProcessNumber(t *testing.T) {
	assert.Equal(t, "A-100", ExtractSubProcessNumber("单据编号：A-100"))
	assert.Equal(t, "YH2024-7", ExtractSubProcessNumber("隐患整改 单据编号：YH2024-7 "))
	assert.Equal(t, "", ExtractSubProcessNumber("A-100"))
	assert.Equal(t, "", ExtractSubProcessNumber("单据编号："))
	assert.Equal(t, "", ExtractSubProcessNumber(""))
}

func TestCurrentHandler(t *testing.T) {
	for _, stage := range []string{StageReview, StageFeedback, StageChangeFeedback} {
		assert.Equal(t, "李四", CurrentHandler(stage, "李四"), stage)
	}
	assert.Equal(t, "", CurrentHandler("已完成", "李四"))
	assert.Equal(t, "", CurrentHandler("", "李四"))
}

func TestOverdueDays(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 45, 0, 0, time.Local)

	tests := []struct {
		name     string
		progress string
		deadline string
		want     int
	}{
		{name: "three days past", progress: StageReview, deadline: "2024-05-07", want: 3},
		{name: "due today", progress: StageFeedback, deadline: "2024-05-10", want: 0},
		{name: "future deadline", progress: StageReview, deadline: "2024-06-01", want: 0},
		{name: "finished stage", progress: "已完成", deadline: "2024-01-01", want: 0},
		{name: "no deadline", progress: StageReview, deadline: "", want: 0},
		{name: "unreadable deadline", progress: StageReview, deadline: "ASAP", want: 0},
		{name: "deadline with time rounds up", progress: StageChangeFeedback, deadline: "2024-05-07 18:00", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverdueDays(tt.progress, tt.deadline, today))
		})
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence(4)
	assert.EqualValues(t, 5, seq.Next())
	assert.EqualValues(t, 6, seq.Next())

	seq.Observe(3)
	assert.EqualValues(t, 6, seq.Last())
	seq.Observe(10)
	assert.EqualValues(t, 11, seq.Next())

	assert.EqualValues(t, 1, NewSequence(-2).Next())
}

func TestParseEmptyKeyPolicy(t *testing.T) {
	p, err := ParseEmptyKeyPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, EmptyKeyDistinct, p)

	p, err = ParseEmptyKeyPolicy(" Reject ")
	assert.NoError(t, err)
	assert.Equal(t, EmptyKeyReject, p)

	_, err = ParseEmptyKeyPolicy("ignore")
	assert.Error(t, err)
}
