// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/hazard-keeper/internal/service"
	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/models"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenHazards
	screenHazardEdit
	screenPersonnel
	screenUsers
	screenUserAdd
	screenPrompt
)

// screenRoutes maps every screen to the route whose permission it needs.
var screenRoutes = map[screen]session.Route{
	screenLogin:      session.RouteLogin,
	screenDashboard:  session.RouteDashboard,
	screenHazards:    session.RouteHazards,
	screenHazardEdit: session.RouteHazards,
	screenPersonnel:  session.RoutePersonnel,
	screenUsers:      session.RouteUsers,
	screenUserAdd:    session.RouteUsers,
}

var routeScreens = map[session.Route]screen{
	session.RouteLogin:     screenLogin,
	session.RouteDashboard: screenDashboard,
	session.RouteHazards:   screenHazards,
	session.RoutePersonnel: screenPersonnel,
	session.RouteUsers:     screenUsers,
}

// listChrome is the number of lines a list page spends outside its rows.
const listChrome = 18

type pendingDelete struct {
	screen screen
	id     int64
	label  string
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	gate      *session.Gate
	buildInfo models.AppBuildInfo

	session       models.Session
	currentScreen screen

	login      loginModel
	dashboard  dashboardModel
	hazards    hazardsModel
	hazardEdit hazardFormModel
	personnel  personnelModel
	users      usersModel
	userAdd    userFormModel
	prompt     promptModel

	rows          int
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pending       *pendingDelete
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, gate *session.Gate, s models.Session, info models.AppBuildInfo) appModel {
	m := appModel{
		ctx:       ctx,
		services:  services,
		gate:      gate,
		buildInfo: info,
		session:   s,
		login:     newLoginModel(),
	}
	m, _ = m.open(screenDashboard)
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.load(m.currentScreen)
}

// open shows target if the gate lets the session see it, or the screen the
// gate redirects to otherwise.
func (m appModel) open(target screen) (appModel, tea.Cmd) {
	route, ok := screenRoutes[target]
	if !ok {
		// a prompt needs the permission of the page it returns to
		route = screenRoutes[m.prompt.back()]
	}
	if granted := m.gate.Check(m.session, route); granted != route {
		target = routeScreens[granted]
	}

	switch target {
	case screenLogin:
		m.login = newLoginModel()
	case screenDashboard:
		m.dashboard = newDashboardModel(m.gate, m.session)
	case screenHazards:
		m.hazards.loading = m.hazards.items == nil
	case screenPersonnel:
		m.personnel.loading = m.personnel.items == nil
	case screenUsers:
		m.users.loading = m.users.items == nil
	}

	m.currentScreen = target
	return m, m.load(target)
}

// load returns the command that fetches the data shown on s.
func (m appModel) load(s screen) tea.Cmd {
	switch s {
	case screenHazards:
		return m.cmdLoadHazards()
	case screenPersonnel:
		return m.cmdLoadPersonnel()
	case screenUsers:
		return m.cmdLoadUsers()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.rows = msg.Height - listChrome
		m.hazards.rows = m.rows
		m.personnel.rows = m.rows
		m.users.rows = m.rows
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(loginErrorText(msg.err))
			return m, nil
		}
		m.session = msg.session
		return m.open(screenDashboard)
	case loggedOutMsg:
		m.session = models.Session{}
		m.hazards = hazardsModel{rows: m.rows}
		m.personnel = personnelModel{rows: m.rows}
		m.users = usersModel{rows: m.rows}
		return m.open(screenLogin)
	case hazardsLoadedMsg:
		m.hazards.loading = false
		m.hazardEdit.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.hazards.items = msg.items
		m.hazards.idx = moveCursor(m.hazards.idx, 0, len(msg.items))
		if m.currentScreen == screenHazardEdit {
			m, _ = m.open(screenHazards)
		}
		m.hazards.status = msg.status
		return m, statusCmd(m.hazards.status)
	case personnelLoadedMsg:
		m.personnel.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.personnel.items = msg.items
		m.personnel.idx = moveCursor(m.personnel.idx, 0, len(msg.items))
		m.personnel.status = msg.status
		return m, statusCmd(m.personnel.status)
	case usersLoadedMsg:
		m.users.loading = false
		m.userAdd.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.users.items = msg.items
		m.users.idx = moveCursor(m.users.idx, 0, len(msg.items))
		if m.currentScreen == screenUserAdd {
			m, _ = m.open(screenUsers)
		}
		m.users.status = msg.status
		return m, statusCmd(m.users.status)
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.hazards.status = "已复制"
		return m, statusCmd(m.hazards.status)
	case clearStatusMsg:
		m.hazards.status = ""
		m.personnel.status = ""
		m.users.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenHazards:
		return m.updateHazards(msg)
	case screenHazardEdit:
		return m.updateHazardEdit(msg)
	case screenPersonnel:
		return m.updatePersonnel(msg)
	case screenUsers:
		return m.updateUsers(msg)
	case screenUserAdd:
		return m.updateUserAdd(msg)
	case screenPrompt:
		return m.updatePrompt(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenHazards:
		body = m.hazards.View()
	case screenHazardEdit:
		body = m.hazardEdit.View()
	case screenPersonnel:
		body = m.personnel.View()
	case screenUsers:
		body = m.users.View()
	case screenUserAdd:
		body = m.userAdd.View()
	case screenPrompt:
		body = m.prompt.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// statusCmd schedules clearing a non-empty status line.
func statusCmd(status string) tea.Cmd {
	if status == "" {
		return nil
	}
	return cmdClearStatus()
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		target := m.pending
		m.pending = nil
		if target == nil {
			return m, nil
		}
		switch target.screen {
		case screenPersonnel:
			return m, m.cmdDeletePersonnel(target.id)
		case screenUsers:
			return m, m.cmdRemoveUser(target.id)
		}
	case key.Matches(msg, keys.no) || key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pending = nil
	}
	return m, nil
}

func (m *appModel) askDelete(s screen, id int64, label string) {
	m.pending = &pendingDelete{screen: s, id: id, label: label}
	m.confirm.message = label
	m.showConfirm = true
}

func cursorDelta(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, keys.up):
		return -1
	case key.Matches(msg, keys.down):
		return 1
	}
	return 0
}

// pageKeys handles the keys shared by every list page.
func (m appModel) pageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.esc):
		model, cmd := m.open(screenDashboard)
		return model, cmd, true
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout(), true
	case key.Matches(msg, keys.quit):
		return m, tea.Quit, true
	}
	return m, nil, false
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login.form = m.login.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.form = m.login.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			username := m.login.form.value(loginUsername)
			password := m.login.form.value(loginPassword)
			if username == "" || password == "" {
				m.showErrorf("请输入用户名和密码")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.form, cmd = m.login.form.update(msg)
	return m, cmd
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.dashboard.idx = moveCursor(m.dashboard.idx, -1, m.dashboard.size())
	case key.Matches(keyMsg, keys.down):
		m.dashboard.idx = moveCursor(m.dashboard.idx, 1, m.dashboard.size())
	case key.Matches(keyMsg, keys.enter):
		route, ok := m.dashboard.selected()
		if !ok {
			return m, m.cmdLogout()
		}
		return m.open(routeScreens[route])
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateHazards(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if d := cursorDelta(keyMsg); d != 0 {
		m.hazards.idx = moveCursor(m.hazards.idx, d, len(m.hazards.items))
		return m, nil
	}
	if model, cmd, ok := m.pageKeys(keyMsg); ok {
		return model, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.edit):
		h, ok := m.hazards.current()
		if !ok {
			return m, nil
		}
		m.hazardEdit = newHazardFormModel(h)
		return m.open(screenHazardEdit)
	case key.Matches(keyMsg, keys.lock):
		h, ok := m.hazards.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleLock(h.ID)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefreshOverdue()
	case key.Matches(keyMsg, keys.importFile):
		m.prompt = newPromptModel(promptImportHazards)
		return m.open(screenPrompt)
	case key.Matches(keyMsg, keys.export):
		m.prompt = newPromptModel(promptExportHazards)
		return m.open(screenPrompt)
	case key.Matches(keyMsg, keys.copy):
		h, ok := m.hazards.current()
		if !ok || h.SubProcessNumber == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(h.SubProcessNumber)
	}
	return m, nil
}

func (m appModel) updateHazardEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.open(screenHazards)
		case key.Matches(keyMsg, keys.tab):
			m.hazardEdit.form = m.hazardEdit.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.hazardEdit.form = m.hazardEdit.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			patch := m.hazardEdit.patch()
			if patch.Empty() {
				return m.open(screenHazards)
			}
			m.hazardEdit.submitting = true
			return m, m.cmdEditHazard(m.hazardEdit.original.ID, patch)
		}
	}

	var cmd tea.Cmd
	m.hazardEdit.form, cmd = m.hazardEdit.form.update(msg)
	return m, cmd
}

func (m appModel) updatePersonnel(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if d := cursorDelta(keyMsg); d != 0 {
		m.personnel.idx = moveCursor(m.personnel.idx, d, len(m.personnel.items))
		return m, nil
	}
	if model, cmd, ok := m.pageKeys(keyMsg); ok {
		return model, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.importFile):
		m.prompt = newPromptModel(promptImportPersonnel)
		return m.open(screenPrompt)
	case key.Matches(keyMsg, keys.delete):
		p, ok := m.personnel.current()
		if !ok {
			return m, nil
		}
		m.askDelete(screenPersonnel, p.ID, p.Name)
	}
	return m, nil
}

func (m appModel) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if d := cursorDelta(keyMsg); d != 0 {
		m.users.idx = moveCursor(m.users.idx, d, len(m.users.items))
		return m, nil
	}
	if model, cmd, ok := m.pageKeys(keyMsg); ok {
		return model, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.newItem):
		m.userAdd = newUserFormModel()
		return m.open(screenUserAdd)
	case key.Matches(keyMsg, keys.role):
		u, ok := m.users.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdToggleRole(u.ID)
	case key.Matches(keyMsg, keys.delete):
		u, ok := m.users.current()
		if !ok {
			return m, nil
		}
		m.askDelete(screenUsers, u.ID, u.Username)
	}
	return m, nil
}

func (m appModel) updateUserAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.open(screenUsers)
		case key.Matches(keyMsg, keys.tab):
			m.userAdd.form = m.userAdd.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.userAdd.form = m.userAdd.form.prev()
			return m, nil
		case keyMsg.String() == "ctrl+r":
			m.userAdd.role = m.userAdd.role.Toggled()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.userAdd.submitting {
				return m, nil
			}
			m.userAdd.submitting = true
			return m, m.cmdAddUser(
				strings.TrimSpace(m.userAdd.form.value(userFieldUsername)),
				m.userAdd.form.value(userFieldPassword),
				m.userAdd.role,
			)
		}
	}

	var cmd tea.Cmd
	m.userAdd.form, cmd = m.userAdd.form.update(msg)
	return m, cmd
}

func (m appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m.open(m.prompt.back())
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.prompt.form.value(0))
			if path == "" {
				m.showErrorf("请输入文件路径")
				return m, nil
			}

			var run tea.Cmd
			switch m.prompt.purpose {
			case promptImportHazards:
				run = m.cmdImportHazards(path)
			case promptExportHazards:
				run = m.cmdExportHazards(path)
			case promptImportPersonnel:
				run = m.cmdImportPersonnel(path)
			}

			back := m.prompt.back()
			m, _ = m.open(back)
			return m, run
		}
	}

	var cmd tea.Cmd
	m.prompt.form, cmd = m.prompt.form.update(msg)
	return m, cmd
}

type loggedOutMsg struct{}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		s, err := auth.Login(ctx, username, password)
		return loginDoneMsg{session: s, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		auth.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (m appModel) cmdLoadHazards() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HazardService
	return func() tea.Msg {
		return hazardsLoadedMsg{items: svc.List(ctx)}
	}
}

func (m appModel) cmdImportHazards(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HazardService
	return func() tea.Msg {
		items, err := svc.ImportFile(ctx, path)
		if err != nil {
			return hazardsLoadedMsg{err: fmt.Errorf("导入失败: %w", err)}
		}
		return hazardsLoadedMsg{items: items, status: fmt.Sprintf("导入完成，共 %d 条", len(items))}
	}
}

func (m appModel) cmdExportHazards(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HazardService
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return hazardsLoadedMsg{err: fmt.Errorf("导出失败: %w", err)}
		}
		err = svc.Export(ctx, f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return hazardsLoadedMsg{err: fmt.Errorf("导出失败: %w", err)}
		}
		return hazardsLoadedMsg{items: svc.List(ctx), status: "已导出到 " + path}
	}
}

func (m appModel) cmdEditHazard(id int64, patch models.HazardPatch) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HazardService
	return func() tea.Msg {
		items, err := svc.Edit(ctx, id, patch)
		if err != nil {
			return hazardsLoadedMsg{err: fmt.Errorf("保存失败: %w", err)}
		}
		return hazardsLoadedMsg{items: items, status: "已保存"}
	}
}

func (m appModel) cmdToggleLock(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.HazardService
	return func() tea.Msg {
		return hazardsLoadedMsg{items: svc.ToggleLock(ctx, id)}
	}
}

func (m appModel) cmdRefreshOverdue() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HazardService
	return func() tea.Msg {
		return hazardsLoadedMsg{items: svc.RefreshOverdue(ctx), status: "超期天数已更新"}
	}
}

func (m appModel) cmdLoadPersonnel() tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonnelService
	return func() tea.Msg {
		return personnelLoadedMsg{items: svc.List(ctx)}
	}
}

func (m appModel) cmdImportPersonnel(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonnelService
	return func() tea.Msg {
		items, err := svc.ImportFile(ctx, path)
		if err != nil {
			return personnelLoadedMsg{err: fmt.Errorf("导入失败: %w", err)}
		}
		return personnelLoadedMsg{items: items, status: fmt.Sprintf("导入完成，共 %d 人", len(items))}
	}
}

func (m appModel) cmdDeletePersonnel(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.PersonnelService
	return func() tea.Msg {
		return personnelLoadedMsg{items: svc.Delete(ctx, id), status: "已删除"}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		return usersLoadedMsg{items: svc.List(ctx)}
	}
}

func (m appModel) cmdAddUser(username, password string, role models.Role) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		if _, err := svc.Add(ctx, username, password, role); err != nil {
			if errors.Is(err, service.ErrEmptyCredentials) {
				return usersLoadedMsg{err: errors.New("用户名和密码不能为空")}
			}
			return usersLoadedMsg{err: err}
		}
		return usersLoadedMsg{items: svc.List(ctx), status: "已添加 " + username}
	}
}

func (m appModel) cmdRemoveUser(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		return usersLoadedMsg{items: svc.Remove(ctx, id), status: "已删除"}
	}
}

func (m appModel) cmdToggleRole(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.UserService
	return func() tea.Msg {
		return usersLoadedMsg{items: svc.ToggleRole(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
