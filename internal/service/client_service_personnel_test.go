// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/models"
)

func rosterWorkbook(t *testing.T, lines [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, line := range lines {
		for c, v := range line {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))
	return buf.Bytes()
}

func TestPersonnelService_ImportOverwrites(t *testing.T) {
	svc, storages := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()

	storages.PersonnelRepository.SavePersonnel(ctx, []models.Personnel{{ID: 1, Name: "Wang", Department: "Safety"}})
	storages.PersonnelRepository.SaveLastPersonnelID(ctx, 1)

	got, err := svc.PersonnelService.Import(ctx, []models.Row{
		{reconcile.ColName: "Wang", reconcile.ColDepartment: "Safety", reconcile.ColEndDate: "2024-12-31"},
	})
	require.NoError(t, err)

	assert.Equal(t, []models.Personnel{{ID: 1, Name: "Wang", Department: "Safety", EndDate: "2024-12-31"}}, got)
}

func TestPersonnelService_ImportFileAndDelete(t *testing.T) {
	svc, storages := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, os.WriteFile(path, rosterWorkbook(t, [][]string{
		{"姓名", "部门", "开始日期", "结束日期"},
		{"张三", "安全部", "2023-01-01", ""},
		{"李四", "生产部", "2023-02-01", "2024-01-31"},
	}), 0o600))

	got, err := svc.PersonnelService.ImportFile(ctx, path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Active())
	assert.False(t, got[1].Active())

	left := svc.PersonnelService.Delete(ctx, got[0].ID)
	assert.Equal(t, []models.Personnel{got[1]}, left)
	assert.Equal(t, left, svc.PersonnelService.List(ctx))

	again, err := svc.PersonnelService.Import(ctx, []models.Row{{reconcile.ColName: "王五", reconcile.ColDepartment: "设备部"}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, again[1].ID, "deleted ids are not reused")
	assert.EqualValues(t, 3, storages.PersonnelRepository.LastPersonnelID(ctx))
}

func TestPersonnelService_ImportReaderRejectsGarbage(t *testing.T) {
	svc, _ := newTestServices(t, reconcile.EmptyKeyDistinct)

	_, err := svc.PersonnelService.ImportReader(context.Background(), bytes.NewReader([]byte("nope")))
	assert.Error(t, err)
}
