package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikitosruban007/treebuddy/internal/dates"
	"github.com/nikitosruban007/treebuddy/internal/engine"
	"github.com/nikitosruban007/treebuddy/internal/storage"
	"github.com/nikitosruban007/treebuddy/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	seed string
	lang engine.Language

	width  int
	height int

	user    *storage.User
	plan    []engine.DailyTaskInstance
	log     []storage.Completion
	dateKey string

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	user    *storage.User
	plan    []engine.DailyTaskInstance
	log     []storage.Completion
	dateKey string
	err     error
}

type completedMsg struct {
	taskID string
	res    *engine.CompleteResult
	err    error
}

func newBoardModel(ctx context.Context, svc *engine.Service, seed string, lang engine.Language) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		seed:    seed,
		lang:    lang,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		dateKey := dates.TodayKey(time.Now())
		u, err := m.svc.UserRepo().GetOrCreateMain(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		plan, err := m.svc.DailyPlan(m.ctx, dateKey, m.seed, m.lang)
		if err != nil {
			return loadedMsg{err: err}
		}
		log, err := m.svc.CompletionRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{user: u, plan: plan, log: log, dateKey: dateKey}
	}
}

func (m boardModel) completeCmd(taskID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Complete(m.ctx, taskID, m.seed, m.lang)
		return completedMsg{taskID: taskID, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.plan = msg.plan
		m.log = msg.log
		m.dateKey = msg.dateKey
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %s: +%d XP, streak %d", msg.taskID, msg.res.XPAwarded, msg.res.StreakCount)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.plan)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.plan) {
				return m, nil
			}
			inst := m.plan[m.selected]
			m.lastLog = fmt.Sprintf("Completing %s…", inst.TaskID)
			return m, m.completeCmd(inst.TaskID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "Loading…\n"
	}

	var b strings.Builder

	stage := engine.StageByXP(m.user.XP)
	b.WriteString(ui.Heading(stage.Image, "TreeBuddy — "+m.dateKey) + "\n")
	b.WriteString(ui.LabelValue("Stage", fmt.Sprintf("%s (lvl %d)", stage.DisplayName(m.lang), stage.Level)) + "\n")
	b.WriteString(ui.LabelValue("XP", m.user.XP) + "  " + ui.ProgressBar(engine.ProgressToNextLevel(m.user.XP), 20) + "\n")
	b.WriteString(ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, m.user.StreakCount)) + "\n\n")

	summary := engine.SummarizeDay(m.plan, m.log, m.dateKey)
	b.WriteString(ui.H2.Render(fmt.Sprintf("Today %d/%d", summary.DoneTasks, summary.TotalTasks)) + "\n")

	for i, inst := range m.plan {
		progress := engine.DailyProgress(m.log, m.dateKey, inst.TaskID)
		cursor := "  "
		if i == m.selected {
			cursor = ui.SelectedRow.Render("➜ ")
		}
		check := ui.Muted.Render("○")
		if progress >= inst.RequiredCount {
			check = ui.Good.Render("●")
		}
		line := fmt.Sprintf("%s%s %s %s (%d/%d, +%d XP)",
			cursor, check, ui.DifficultyText(string(inst.DifficultyLabel)), inst.ConditionText,
			progress, inst.RequiredCount, inst.XPPerCompletion)
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render("↑/↓ select · c complete · r refresh · q quit") + "\n")
	b.WriteString(ui.Muted.Render(m.lastLog) + "\n")

	return ui.Panel.Render(b.String()) + "\n"
}
