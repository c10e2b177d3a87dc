// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/service"
	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/models"
)

var (
	adminSession = models.Session{LoggedIn: true, Role: models.RoleAdmin}
	userSession  = models.Session{LoggedIn: true, Role: models.RoleUser}
)

func newTestModel(t *testing.T, s models.Session) (appModel, *service.ClientServices) {
	t.Helper()
	ctx := context.Background()

	storages := store.NewClientStoragesFromKV(store.NewMemoryStore(), logger.Nop())
	services, err := service.NewClientServices(storages, *config.Defaults(), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, services.Bootstrap(ctx))

	return newAppModel(ctx, services, session.NewGate(), s, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")), services
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(appModel)
	require.True(t, ok, "Update must return appModel, got %T", next)
	return am, cmd
}

// settle runs a service command and feeds its result back into m.
func settle(t *testing.T, m appModel, cmd tea.Cmd) appModel {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	m, _ = update(t, m, cmd())
	return m
}

func press(t *testing.T, m appModel, k string) (appModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		msg = tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return update(t, m, msg)
}

func typeText(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func seedHazards(t *testing.T, services *service.ClientServices) {
	t.Helper()
	_, err := services.HazardService.Import(context.Background(), []models.Row{
		{
			reconcile.ColDocumentNumber:        "单据编号：HZ-001",
			reconcile.ColFactoryArea:           "一厂",
			reconcile.ColHazardType:            "电气",
			reconcile.ColResponsiblePerson:     "张三",
			reconcile.ColDeadline:              "2020-01-01",
			reconcile.ColRectificationDeadline: "2020-01-01",
			reconcile.ColProgress:              "审核",
			reconcile.ColUnactioned:            "李四",
		},
		{
			reconcile.ColDocumentNumber:    "单据编号：HZ-002",
			reconcile.ColResponsiblePerson: "王五",
			reconcile.ColDeadline:          "2099-01-01",
			reconcile.ColProgress:          "归档",
		},
	})
	require.NoError(t, err)
}

func TestNewAppModel_StartScreen(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		want    screen
	}{
		{name: "logged out", session: models.Session{}, want: screenLogin},
		{name: "restored admin", session: adminSession, want: screenDashboard},
		{name: "restored user", session: userSession, want: screenDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.session)
			assert.Equal(t, tt.want, m.currentScreen)
			assert.Nil(t, m.Init())
		})
	}
}

func TestOpen_GateOnEveryNavigation(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		target  screen
		want    screen
	}{
		{name: "logged out hazards", session: models.Session{}, target: screenHazards, want: screenLogin},
		{name: "logged out dashboard", session: models.Session{}, target: screenDashboard, want: screenLogin},
		{name: "user hazards", session: userSession, target: screenHazards, want: screenHazards},
		{name: "user hazard edit", session: userSession, target: screenHazardEdit, want: screenHazardEdit},
		{name: "user personnel", session: userSession, target: screenPersonnel, want: screenDashboard},
		{name: "user users", session: userSession, target: screenUsers, want: screenDashboard},
		{name: "user add user", session: userSession, target: screenUserAdd, want: screenDashboard},
		{name: "admin users", session: adminSession, target: screenUsers, want: screenUsers},
		{name: "admin personnel", session: adminSession, target: screenPersonnel, want: screenPersonnel},
		{name: "admin login", session: adminSession, target: screenLogin, want: screenLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.session)
			m, _ = m.open(tt.target)
			assert.Equal(t, tt.want, m.currentScreen)
		})
	}
}

func TestOpen_PromptUsesPagePermission(t *testing.T) {
	m, _ := newTestModel(t, userSession)

	m.prompt = newPromptModel(promptImportPersonnel)
	m, _ = m.open(screenPrompt)
	assert.Equal(t, screenDashboard, m.currentScreen)

	m.prompt = newPromptModel(promptImportHazards)
	m, _ = m.open(screenPrompt)
	assert.Equal(t, screenPrompt, m.currentScreen)
}

func TestLogin_Success(t *testing.T) {
	m, services := newTestModel(t, models.Session{})

	m = typeText(t, m, "decro")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "123456")
	m, cmd := press(t, m, "enter")
	require.True(t, m.login.submitting)

	m = settle(t, m, cmd)

	assert.Equal(t, screenDashboard, m.currentScreen)
	assert.Equal(t, adminSession, m.session)
	assert.Equal(t, []session.Route{session.RouteHazards, session.RoutePersonnel, session.RouteUsers}, m.dashboard.routes)
	assert.True(t, services.AuthService.RestoreSession(context.Background()).LoggedIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})

	m = typeText(t, m, "decro")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "wrong")
	m, cmd := press(t, m, "enter")
	m = settle(t, m, cmd)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "用户名或密码错误", m.errorOverlay.message)
	assert.False(t, m.login.submitting)

	m, _ = press(t, m, "esc")
	assert.False(t, m.showError)
}

func TestLogin_EmptyFields(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})

	m, cmd := press(t, m, "enter")

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestDashboard_UserMenu(t *testing.T) {
	m, _ := newTestModel(t, userSession)

	assert.Equal(t, []session.Route{session.RouteHazards}, m.dashboard.routes)
	view := m.View()
	assert.Contains(t, view, "隐患管理")
	assert.NotContains(t, view, "用户管理")
	assert.NotContains(t, view, "人员信息库")

	// second entry is logout
	m, _ = press(t, m, "down")
	m, cmd := press(t, m, "enter")
	m = settle(t, m, cmd)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestDashboard_OpenHazards(t *testing.T) {
	m, services := newTestModel(t, adminSession)
	seedHazards(t, services)

	m, cmd := press(t, m, "enter")
	require.Equal(t, screenHazards, m.currentScreen)
	assert.True(t, m.hazards.loading)

	m = settle(t, m, cmd)
	assert.False(t, m.hazards.loading)
	assert.Len(t, m.hazards.items, 2)
}

func TestDashboard_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t, adminSession)

	m, _ = press(t, m, "v")
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = press(t, m, "esc")
	assert.False(t, m.showBuildInfo)
}

func openHazards(t *testing.T, m appModel) appModel {
	t.Helper()
	m, cmd := m.open(screenHazards)
	return settle(t, m, cmd)
}

func TestHazards_LockToggle(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	m, cmd := press(t, m, "l")
	m = settle(t, m, cmd)

	require.Len(t, m.hazards.items, 2)
	assert.True(t, m.hazards.items[0].ManualLock)
	assert.True(t, services.HazardService.List(context.Background())[0].ManualLock)
	assert.Contains(t, m.View(), "[锁]")
}

func TestHazards_OverdueMarker(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	require.True(t, m.hazards.items[0].Overdue())
	assert.Contains(t, hazardRow(m.hazards.items[0]), "天")
	assert.NotContains(t, hazardRow(m.hazards.items[1]), "天")
}

func TestHazards_Edit(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	m, _ = press(t, m, "e")
	require.Equal(t, screenHazardEdit, m.currentScreen)
	assert.Equal(t, "张三", m.hazardEdit.form.value(hazardFieldPerson))
	assert.Equal(t, "2020-01-01", m.hazardEdit.form.value(hazardFieldDeadline))

	m.hazardEdit.form.inputs[hazardFieldDeadline].SetValue("2099-12-31")
	m, cmd := press(t, m, "enter")
	require.True(t, m.hazardEdit.submitting)
	m = settle(t, m, cmd)

	assert.Equal(t, screenHazards, m.currentScreen)
	assert.Equal(t, "2099-12-31", m.hazards.items[0].Deadline)
	assert.Equal(t, "张三", m.hazards.items[0].ResponsiblePerson)
	assert.Equal(t, 0, m.hazards.items[0].OverdueDays)
	assert.Equal(t, "已保存", m.hazards.status)
}

func TestHazards_EditInvalidDeadline(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	m, _ = press(t, m, "e")
	m.hazardEdit.form.inputs[hazardFieldDeadline].SetValue("next week")
	m, cmd := press(t, m, "enter")
	m = settle(t, m, cmd)

	assert.Equal(t, screenHazardEdit, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "2020-01-01", services.HazardService.List(context.Background())[0].Deadline)
}

func TestHazards_EditUnchangedGoesBack(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	m, _ = press(t, m, "e")
	m, _ = press(t, m, "enter")

	assert.Equal(t, screenHazards, m.currentScreen)
}

func TestHazards_CursorStaysInRange(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.hazards.idx)
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.hazards.idx)
}

func TestHazards_ExportAndImport(t *testing.T) {
	m, services := newTestModel(t, userSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	path := filepath.Join(t.TempDir(), "out.xlsx")

	m, _ = press(t, m, "x")
	require.Equal(t, screenPrompt, m.currentScreen)
	m.prompt.form.inputs[0].SetValue(path)
	m, cmd := press(t, m, "enter")
	assert.Equal(t, screenHazards, m.currentScreen)
	m = settle(t, m, cmd)

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Contains(t, m.hazards.status, "已导出")

	// importing the export into a fresh store reproduces the table
	fresh, freshServices := newTestModel(t, userSession)
	fresh = openHazards(t, fresh)
	fresh, _ = press(t, fresh, "i")
	fresh.prompt.form.inputs[0].SetValue(path)
	fresh, cmd = press(t, fresh, "enter")
	fresh = settle(t, fresh, cmd)

	require.False(t, fresh.showError, fresh.errorOverlay.message)
	assert.Len(t, fresh.hazards.items, 2)
	assert.Len(t, freshServices.HazardService.List(context.Background()), 2)
	assert.Equal(t, "HZ-001", fresh.hazards.items[0].SubProcessNumber)
}

func TestHazards_ImportMissingFile(t *testing.T) {
	m, _ := newTestModel(t, userSession)
	m = openHazards(t, m)

	m, _ = press(t, m, "i")
	m.prompt.form.inputs[0].SetValue(filepath.Join(t.TempDir(), "missing.xlsx"))
	m, cmd := press(t, m, "enter")
	m = settle(t, m, cmd)

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "导入失败")
}

func TestPrompt_EmptyPath(t *testing.T) {
	m, _ := newTestModel(t, userSession)
	m = openHazards(t, m)

	m, _ = press(t, m, "i")
	m, cmd := press(t, m, "enter")

	assert.Nil(t, cmd)
	assert.True(t, m.showError)
	assert.Equal(t, screenPrompt, m.currentScreen)
}

func TestPersonnel_DeleteWithConfirm(t *testing.T) {
	m, services := newTestModel(t, adminSession)
	_, err := services.PersonnelService.Import(context.Background(), []models.Row{
		{reconcile.ColName: "张三", reconcile.ColDepartment: "安全部", reconcile.ColStartDate: "2020-01-01"},
		{reconcile.ColName: "李四", reconcile.ColDepartment: "生产部", reconcile.ColStartDate: "2019-01-01", reconcile.ColEndDate: "2024-06-30"},
	})
	require.NoError(t, err)

	m, cmd := m.open(screenPersonnel)
	m = settle(t, m, cmd)
	require.Len(t, m.personnel.items, 2)

	view := m.View()
	assert.Contains(t, view, stillActive)
	assert.Contains(t, view, "2024-06-30")

	m, _ = press(t, m, "d")
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "张三")

	m, cmd = press(t, m, "y")
	m = settle(t, m, cmd)

	assert.False(t, m.showConfirm)
	require.Len(t, m.personnel.items, 1)
	assert.Equal(t, "李四", m.personnel.items[0].Name)
}

func TestPersonnel_DeleteCancelled(t *testing.T) {
	m, services := newTestModel(t, adminSession)
	_, err := services.PersonnelService.Import(context.Background(), []models.Row{
		{reconcile.ColName: "张三", reconcile.ColDepartment: "安全部"},
	})
	require.NoError(t, err)

	m, cmd := m.open(screenPersonnel)
	m = settle(t, m, cmd)

	m, _ = press(t, m, "d")
	m, cmd = press(t, m, "n")

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Len(t, services.PersonnelService.List(context.Background()), 1)
}

func TestUsers_AddToggleRemove(t *testing.T) {
	m, services := newTestModel(t, adminSession)

	m, cmd := m.open(screenUsers)
	m = settle(t, m, cmd)
	require.Len(t, m.users.items, 1)

	m, _ = press(t, m, "n")
	require.Equal(t, screenUserAdd, m.currentScreen)
	m = typeText(t, m, "alice")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "secret")
	m, _ = press(t, m, "ctrl+r")
	assert.Equal(t, models.RoleAdmin, m.userAdd.role)

	m, cmd = press(t, m, "enter")
	m = settle(t, m, cmd)

	assert.Equal(t, screenUsers, m.currentScreen)
	require.Len(t, m.users.items, 2)
	assert.Equal(t, "alice", m.users.items[1].Username)
	assert.Equal(t, models.RoleAdmin, m.users.items[1].Role)

	m, _ = press(t, m, "down")
	m, cmd = press(t, m, "r")
	m = settle(t, m, cmd)
	assert.Equal(t, models.RoleUser, m.users.items[1].Role)

	m, _ = press(t, m, "d")
	m, cmd = press(t, m, "y")
	m = settle(t, m, cmd)

	require.Len(t, m.users.items, 1)
	assert.Equal(t, "decro", m.users.items[0].Username)
	assert.Len(t, services.UserService.List(context.Background()), 1)
}

func TestUsers_AddEmpty(t *testing.T) {
	m, services := newTestModel(t, adminSession)

	m, cmd := m.open(screenUsers)
	m = settle(t, m, cmd)
	m, _ = press(t, m, "n")
	m, cmd = press(t, m, "enter")
	m = settle(t, m, cmd)

	assert.Equal(t, screenUserAdd, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "用户名和密码不能为空", m.errorOverlay.message)
	assert.Len(t, services.UserService.List(context.Background()), 1)
}

func TestLogout(t *testing.T) {
	m, services := newTestModel(t, adminSession)
	seedHazards(t, services)
	m = openHazards(t, m)

	m, cmd := press(t, m, "L")
	m = settle(t, m, cmd)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Equal(t, models.Session{}, m.session)
	assert.Nil(t, m.hazards.items)
	assert.False(t, services.AuthService.RestoreSession(context.Background()).LoggedIn)

	m, _ = m.open(screenHazards)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestEscReturnsToDashboard(t *testing.T) {
	m, _ := newTestModel(t, adminSession)
	m = openHazards(t, m)

	m, _ = press(t, m, "esc")
	assert.Equal(t, screenDashboard, m.currentScreen)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, models.Session{})

	m, cmd := press(t, m, "ctrl+c")

	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWindowSizeSetsRows(t *testing.T) {
	m, _ := newTestModel(t, adminSession)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 40-listChrome, m.hazards.rows)
	assert.Equal(t, 40-listChrome, m.users.rows)
}
