package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridtactics/internal/battle"
	"github.com/samdwyer/gridtactics/internal/entity"
	"github.com/samdwyer/gridtactics/internal/gamedata"
	"github.com/samdwyer/gridtactics/internal/grid"
)

// Board layout in terminal cells.
const (
	boardX    = 2 // Left edge of column 0
	boardY    = 2 // Top edge of row 0
	cellWidth = 2 // Each board cell is a symbol plus a spacer
	panelGap  = 3 // Columns between the board and the side panel
)

const helpLine = "arrows/hjkl move  tab cycle  enter confirm  esc cancel  m move  a attack  q quit"

// HUD is the front-end text drawn around the board.
type HUD struct {
	Message string
	Victory bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	colors map[string]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, colors: make(map[string]tcell.Color)}
}

// Render draws the board, the side panel and the message line.
func (r *Renderer) Render(g grid.Grid, s battle.State, hud HUD) {
	r.screen.Clear()

	r.renderHeader(s)
	r.renderBoard(g, s)

	panelX := boardX + g.Width*cellWidth + panelGap
	y := r.renderRosters(panelX, boardY, s)
	if s.Mode == battle.ModeActionMenu {
		r.renderMenu(panelX, y+1, s)
	}

	bottom := boardY + g.Height + 1
	r.screen.DrawText(boardX, bottom, hud.Message, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawText(boardX, bottom+1, helpLine, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	if hud.Victory && s.Winner >= 0 {
		r.renderVictory(bottom+3, s)
	}

	r.screen.Show()
}

func (r *Renderer) renderHeader(s battle.State) {
	team := s.CurrentTeam()
	header := fmt.Sprintf("Turn %d - %s to act [%s]", s.TurnCount+1, team.Name, s.Mode)
	r.screen.DrawText(boardX, 0, header, tcell.StyleDefault.Foreground(r.teamColor(team)).Bold(true))
}

func (r *Renderer) renderBoard(g grid.Grid, s battle.State) {
	highlight := s.Highlight()
	for _, c := range g.Cells() {
		style := r.cellStyle(c, s, highlight)
		ch := '.'
		if u := unitAt(s.Teams, c); u != nil {
			ch = u.Symbol
			style = style.Foreground(r.teamColor(s.Teams[u.Team])).Bold(true)
		}
		r.screen.SetContent(boardX+c.Col*cellWidth, boardY+c.Row, ch, style)
	}
}

// cellStyle returns the background for a cell: cursor first, then highlight.
func (r *Renderer) cellStyle(c grid.Cell, s battle.State, highlight grid.CellSet) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	switch {
	case s.Mode == battle.ModeMoveTarget && highlight.Has(c):
		style = style.Background(tcell.ColorNavy)
	case s.Mode == battle.ModeAttackTarget && highlight.Has(c):
		style = style.Background(tcell.ColorMaroon)
	}
	if c == s.Selected && s.Mode != battle.ModeMatchOver {
		style = style.Reverse(true)
	}
	return style
}

// renderRosters lists every team and its units and returns the next free row.
func (r *Renderer) renderRosters(x, y int, s battle.State) int {
	for i, team := range s.Teams {
		marker := "  "
		if i == s.CurrentTurn && s.Mode != battle.ModeMatchOver {
			marker = "> "
		}
		style := tcell.StyleDefault.Foreground(r.teamColor(team))
		r.screen.DrawText(x, y, marker+team.Name, style.Bold(true))
		y++
		if team.IsDefeated() {
			r.screen.DrawText(x+2, y, "(defeated)", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
			y++
		}
		for _, u := range team.Units {
			line := fmt.Sprintf("%c %-16s %2d/%-2d", u.Symbol, u.Name, u.HP, u.MaxHP)
			unitStyle := style
			if u == s.SelectedUnit {
				unitStyle = unitStyle.Reverse(true)
			}
			r.screen.DrawText(x+2, y, line, unitStyle)
			y++
		}
		y++
	}
	return y
}

func (r *Renderer) renderMenu(x, y int, s battle.State) {
	r.screen.DrawText(x, y, "Actions", tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	for i, item := range battle.MenuItems {
		prefix := "  "
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i == s.MenuCursor {
			prefix = "> "
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		r.screen.DrawText(x, y+1+i, prefix+item.String(), style)
	}
}

func (r *Renderer) renderVictory(y int, s battle.State) {
	winner := s.Teams[s.Winner]
	banner := fmt.Sprintf("*** %s wins in %d turns! ***", winner.Name, s.TurnCount)
	r.screen.DrawText(boardX, y, banner, tcell.StyleDefault.Foreground(r.teamColor(winner)).Bold(true))
	r.screen.DrawText(boardX, y+1, "enter: new match  q: quit", tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// teamColor parses and caches the team's hex color.
func (r *Renderer) teamColor(team *entity.Team) tcell.Color {
	if c, ok := r.colors[team.Color]; ok {
		return c
	}
	c := gamedata.ColorOrWhite(team.Color)
	r.colors[team.Color] = c
	return c
}

func unitAt(teams []*entity.Team, c grid.Cell) *entity.Unit {
	for _, team := range teams {
		if u := team.UnitAt(c); u != nil {
			return u
		}
	}
	return nil
}
