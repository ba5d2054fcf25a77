package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"taskboard/pkg/client"
)

const columnWidth = 32

var (
	columnStyle = lipgloss.NewStyle().
			Width(columnWidth).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(columnWidth - 2).
			Align(lipgloss.Center)

	taskStyle = lipgloss.NewStyle().
			Width(columnWidth - 2)

	emptyStyle = lipgloss.NewStyle().
			Faint(true).
			Width(columnWidth - 2).
			Align(lipgloss.Center)

	toDoColor       = lipgloss.Color("9")
	inProgressColor = lipgloss.Color("11")
	doneColor       = lipgloss.Color("10")
)

func renderBoard(cols client.Columns) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderColumn(client.StatusToDo, toDoColor, cols.ToDo),
		renderColumn(client.StatusInProgress, inProgressColor, cols.InProgress),
		renderColumn(client.StatusDone, doneColor, cols.Done),
	)
}

func renderColumn(title string, color lipgloss.Color, tasks []client.Task) string {
	lines := []string{
		headerStyle.Foreground(color).Render(fmt.Sprintf("%s (%d)", title, len(tasks))),
	}
	if len(tasks) == 0 {
		lines = append(lines, emptyStyle.Render("no tasks"))
	}
	for _, task := range tasks {
		lines = append(lines, taskStyle.Render(fmt.Sprintf("#%d %s", task.ID, task.Title)))
	}
	return columnStyle.BorderForeground(color).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}
