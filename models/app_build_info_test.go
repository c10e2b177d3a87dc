// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{name: "local build", info: NewAppBuildInfo("", "", ""), want: "N/A"},
		{name: "version only", info: NewAppBuildInfo("1.2.3", "", ""), want: "1.2.3"},
		{name: "with commit", info: NewAppBuildInfo("1.2.3", "", "abc123"), want: "1.2.3 (abc123)"},
		{name: "with date", info: NewAppBuildInfo("1.2.3", "2026-10-01", ""), want: "1.2.3 (2026-10-01)"},
		{name: "full", info: NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), want: "1.2.3 (abc123, 2026-10-01)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}
