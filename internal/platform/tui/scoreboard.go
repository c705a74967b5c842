package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/storage"
)

// Scoreboard column widths.
const (
	rankWidth   = 4
	playerWidth = 18
	levelWidth  = 6
	scoreWidth  = 8
)

const crown = "♛"

// scoreTable builds the high-score table. Styles stay unstyled so the
// rows can be drawn into the cell buffer.
func scoreTable(records []storage.Record) table.Model {
	columns := []table.Column{
		{Title: "#", Width: rankWidth},
		{Title: "Player", Width: playerWidth},
		{Title: "Level", Width: levelWidth},
		{Title: "Score", Width: scoreWidth},
	}

	rows := make([]table.Row, 0, len(records))
	for i, r := range records {
		rank := fmt.Sprint(i + 1)
		if i < 3 {
			rank = crown + rank
		}
		rows = append(rows, table.Row{rank, r.PlayerName, fmt.Sprint(r.Level), fmt.Sprint(r.Score)})
	}

	plain := lipgloss.NewStyle().Padding(0, 1)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(table.Styles{
			Header:   plain,
			Cell:     plain,
			Selected: lipgloss.NewStyle(),
		}),
	)
	t.Blur()
	return t
}

// crownColors tints the first three rows.
var crownColors = [3]core.Color{core.ColorBrightYellow, core.ColorWhite, core.ColorOrange}

// drawScores draws the table centered below top. An empty table shows
// a hint instead.
func drawScores(dst *core.Screen, records []storage.Record, top int) {
	if len(records) == 0 {
		dst.DrawTextCenteredColored(top+1, "No scores yet", core.ColorGray)
		return
	}

	lines := strings.Split(scoreTable(records).View(), "\n")
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	x := (dst.Width() - width) / 2

	for i, l := range lines {
		color := core.ColorBrightWhite
		if rank := i - 1; rank >= 0 && rank < len(crownColors) {
			color = crownColors[rank]
		}
		if i == 0 {
			color = core.ColorGray
		}
		dst.DrawTextColored(x, top+i, strings.TrimRight(l, " "), color)
	}
}
