// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the version stamp injected into both binaries with
// -ldflags "-X main.buildVersion=...". Empty values mean a local build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String formats the stamp as "version (commit, date)", leaving out the parts
// that were not set.
func (a AppBuildInfo) String() string {
	version := a.buildVersion
	if version == "" {
		version = "N/A"
	}

	switch {
	case a.buildCommit != "" && a.buildDate != "":
		return fmt.Sprintf("%s (%s, %s)", version, a.buildCommit, a.buildDate)
	case a.buildCommit != "":
		return fmt.Sprintf("%s (%s)", version, a.buildCommit)
	case a.buildDate != "":
		return fmt.Sprintf("%s (%s)", version, a.buildDate)
	}
	return version
}
