package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/parameter"
	"github.com/lixenwraith/resonance-arena/summary"
)

// choiceKeys label legendary options with their bound keys
var choiceKeys = []rune{'z', 'x', 'c'}

// drawText writes s starting at x, clipped to the screen; returns the next column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// drawGauge draws a fixed-width bar filled to frac
func (r *TerminalRenderer) drawGauge(x, y int, frac float64, fill tcell.Color, defaultStyle tcell.Style) int {
	filled := int(frac*parameter.HealthBarWidth + 0.5)
	filled = max(0, min(filled, parameter.HealthBarWidth))
	for i := 0; i < parameter.HealthBarWidth && x < r.width; i++ {
		if i < filled {
			r.screen.SetContent(x, y, parameter.GlyphBarFull, nil, defaultStyle.Foreground(fill))
		} else {
			r.screen.SetContent(x, y, parameter.GlyphBarEmpty, nil, defaultStyle.Foreground(RgbRim))
		}
		x++
	}
	return x
}

// drawVitals draws HP, shield and XP gauges on the top margin
func (r *TerminalRenderer) drawVitals(snap *engine.Snapshot, defaultStyle tcell.Style) {
	if r.height < 1 {
		return
	}
	p := snap.Player
	label := defaultStyle.Foreground(RgbStatusBar)

	hpFrac := 0.0
	if p.MaxHP > 0 {
		hpFrac = p.HP / p.MaxHP
	}
	x := r.drawText(0, 0, "HP ", label)
	x = r.drawGauge(x, 0, hpFrac, GetHealthColor(hpFrac), defaultStyle)
	x = r.drawText(x, 0, fmt.Sprintf(" %.0f/%.0f", p.HP, p.MaxHP), label)
	if p.Shield > 0 {
		x = r.drawText(x, 0, fmt.Sprintf(" +%.0f", p.Shield), defaultStyle.Foreground(RgbShieldBar))
	}

	xpFrac := 0.0
	if p.XPNeeded > 0 {
		xpFrac = p.XP / p.XPNeeded
	}
	x = r.drawText(x+2, 0, fmt.Sprintf("LV %d ", p.Level), label)
	r.drawGauge(x, 0, xpFrac, GetMeterColor(xpFrac), defaultStyle)
}

// drawStatusBar draws phase, time, score, event and skills on the bottom margin
func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot, defaultStyle tcell.Style) {
	y := r.height - 1
	if y < parameter.TopMargin {
		return
	}

	var phaseText string
	var phaseBg tcell.Color
	switch {
	case r.paused:
		phaseText, phaseBg = " PAUSED ", RgbPausedBg
	case snap.Phase == "legendary":
		phaseText, phaseBg = " CHOOSE ", RgbPhaseChooseBg
	case snap.Phase == "ended":
		phaseText, phaseBg = " ENDED ", RgbPhaseEndBg
	default:
		phaseText, phaseBg = " FIGHT ", RgbPhasePlayBg
	}
	x := r.drawText(0, y, phaseText, defaultStyle.Foreground(RgbStatusText).Background(phaseBg))

	text := defaultStyle.Foreground(RgbStatusBar)
	x = r.drawText(x+1, y, fmt.Sprintf("%s  K %d  S %.0f", summary.FormatSurvived(snap.Elapsed), snap.Player.Kills, snap.Player.Score), text)

	if snap.Event != "" && snap.Event != "none" {
		x = r.drawText(x+2, y, " "+strings.ToUpper(strings.ReplaceAll(snap.Event, "_", " "))+" ",
			defaultStyle.Foreground(RgbStatusText).Background(RgbEventBg))
	}

	for _, sk := range snap.Skills {
		style := text
		switch {
		case sk.InUse:
			style = style.Bold(true)
		case sk.Cooldown > 0:
			style = style.Dim(true)
		}
		s := fmt.Sprintf("%d:%s", sk.Bind+1, sk.Name)
		if sk.Cooldown > 0 {
			s += fmt.Sprintf(" %d%%", int(sk.Cooldown*100+0.5))
		}
		x = r.drawText(x+2, y, s, style)
	}

	if !r.muted {
		r.drawText(r.width-len([]rune(parameter.AudioStr)), y, parameter.AudioStr, text)
	}
}

// drawPanel draws a bordered box centered on the playfield and returns its inner origin
func (r *TerminalRenderer) drawPanel(lines int, defaultStyle tcell.Style) (x, y int) {
	w := min(parameter.OverlayWidth, r.width)
	h := lines + 2
	x0 := (r.width - w) / 2
	y0 := max(0, (r.height-h)/2)
	border := defaultStyle.Foreground(RgbOverlayBorder)
	for row := y0; row < y0+h && row < r.height; row++ {
		for col := x0; col < x0+w; col++ {
			ch := ' '
			switch {
			case row == y0 || row == y0+h-1:
				ch = '─'
			case col == x0 || col == x0+w-1:
				ch = '│'
			}
			r.screen.SetContent(col, row, ch, nil, border)
		}
	}
	return x0 + 2, y0 + 1
}

func (r *TerminalRenderer) drawLegendaryOverlay(snap *engine.Snapshot, defaultStyle tcell.Style) {
	x, y := r.drawPanel(len(snap.Options)+2, defaultStyle)
	r.drawText(x, y, "LEGENDARY RESONANCE", defaultStyle.Foreground(RgbPickupShard).Bold(true))
	for i, opt := range snap.Options {
		key := '?'
		if i < len(choiceKeys) {
			key = choiceKeys[i]
		}
		r.drawText(x, y+2+i, fmt.Sprintf("%c) %s", key, opt), defaultStyle.Foreground(RgbStatusBar))
	}
}

func (r *TerminalRenderer) drawRunEndedOverlay(snap *engine.Snapshot, defaultStyle tcell.Style) {
	cause, err := summary.CauseText(snap.Cause, snap.Elapsed)
	if err != nil {
		cause = snap.Cause
	}
	x, y := r.drawPanel(5, defaultStyle)
	r.drawText(x, y, "RUN ENDED", defaultStyle.Foreground(RgbPhaseEndBg).Bold(true))
	r.drawText(x, y+2, cause, defaultStyle.Foreground(RgbStatusBar))
	r.drawText(x, y+3, fmt.Sprintf("Level %d  Kills %d  Score %.0f", snap.Player.Level, snap.Player.Kills, snap.Player.Score),
		defaultStyle.Foreground(RgbStatusBar))
	r.drawText(x, y+4, "ctrl-q to quit", defaultStyle.Foreground(RgbOverlayBorder))
}
