package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-testutil"

	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/geometry"
	"github.com/lixenwraith/resonance-arena/vmath"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(cellAt(s, x, y))
	}
	return b.String()
}

func baseSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Phase: "playing",
		Event: "none",
		Player: engine.PlayerView{
			HP: 80, MaxHP: 100, Level: 1, XPNeeded: 10,
		},
	}
}

func TestCamera_ToCell(t *testing.T) {
	cam := Camera{Focus: vmath.V(100, 100), X: 0, Y: 1, Width: 80, Height: 22}

	tests := []struct {
		name    string
		p       vmath.Vec2
		col     int
		row     int
		visible bool
	}{
		{"focus at center", vmath.V(100, 100), 40, 12, true},
		{"ten columns right", vmath.V(260, 100), 50, 12, true},
		{"two rows down", vmath.V(100, 164), 40, 14, true},
		{"left of field", vmath.V(100-41*16, 100), -1, 12, false},
		{"above field", vmath.V(100, 100-12*32), 40, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := cam.ToCell(tt.p)
			testutil.AssertEqual(t, "visible", ok, tt.visible)
			testutil.AssertEqual(t, "row", row, tt.row)
			testutil.AssertEqual(t, "col", col, tt.col)
		})
	}
}

func TestCamera_ToWorldInvertsToCell(t *testing.T) {
	cam := Camera{Focus: vmath.V(-50, 30), X: 0, Y: 1, Width: 80, Height: 22}
	for _, cell := range [][2]int{{0, 1}, {40, 12}, {79, 22}, {13, 7}} {
		col, row, ok := cam.ToCell(cam.ToWorld(cell[0], cell[1]))
		testutil.AssertEqual(t, "visible", ok, true)
		testutil.AssertEqual(t, "col", col, cell[0])
		testutil.AssertEqual(t, "row", row, cell[1])
	}
}

func TestCamera_Visible(t *testing.T) {
	cam := Camera{Width: 80, Height: 22}
	testutil.AssertEqual(t, "inside", cam.Visible(vmath.V(0, 0), 1), true)
	testutil.AssertEqual(t, "edge overlap", cam.Visible(vmath.V(700, 0), 100), true)
	testutil.AssertEqual(t, "far away", cam.Visible(vmath.V(5000, 0), 100), false)
}

func TestRenderFrame_Entities(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil)

	snap := baseSnapshot()
	enemy := engine.EnemyView{ID: 1, Shape: "circle", Tier: "normal", X: 160, Y: 64, Size: 10, Palette: "circle"}
	snap.Enemies = []engine.EnemyView{enemy}
	snap.Bullets = []engine.BulletView{{X: -160, Y: 0, Enemy: true}, {X: 0, Y: -64}}
	snap.Pickups = []engine.PointView{{X: 320, Y: 0}}
	r.RenderFrame(snap)

	testutil.AssertEqual(t, "player", cellAt(screen, 40, 12), '@')
	testutil.AssertEqual(t, "enemy", cellAt(screen, 50, 14), 'o')
	testutil.AssertEqual(t, "enemy shot", cellAt(screen, 30, 12), '•')
	testutil.AssertEqual(t, "player shot", cellAt(screen, 40, 10), '·')
	testutil.AssertEqual(t, "pickup", cellAt(screen, 60, 12), '+')

	_, _, style, _ := screen.GetContent(50, 14)
	if style != GetEnemyStyle(enemy) {
		t.Errorf("enemy style = %v, want %v", style, GetEnemyStyle(enemy))
	}
	fg, _, attrs := style.Decompose()
	testutil.AssertEqual(t, "enemy color", fg, PaletteColor("circle"))
	testutil.AssertEqual(t, "enemy attrs", attrs, tcell.AttrNone)
}

func TestRenderFrame_CameraFollowsPlayer(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil)

	snap := baseSnapshot()
	snap.Player.X, snap.Player.Y = 1000, -500
	snap.Enemies = []engine.EnemyView{{Shape: "square", Tier: "normal", X: 1000 + 16*5, Y: -500, Size: 10}}
	r.RenderFrame(snap)

	testutil.AssertEqual(t, "player", cellAt(screen, 40, 12), '@')
	testutil.AssertEqual(t, "enemy", cellAt(screen, 45, 12), '#')
	testutil.AssertEqual(t, "focus", r.Camera().Focus, vmath.V(1000, -500))
}

func TestRenderFrame_ArenaRim(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, geometry.NewArenas(1, 400, 100))

	snap := baseSnapshot()
	snap.Player.X = 240
	r.RenderFrame(snap)

	// Rim at (400, 0) is ten columns right of the player
	testutil.AssertEqual(t, "rim", cellAt(screen, 50, 12), '░')
}

func TestRenderFrame_HUD(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil)

	snap := baseSnapshot()
	snap.Elapsed = 65 * time.Second
	snap.Player.Kills = 7
	snap.Event = "blood_moon"
	snap.Skills = []engine.SkillView{{Name: "nova", Bind: 0}, {Name: "blink", Bind: 1, Cooldown: 0.5}}
	r.RenderFrame(snap)

	top := rowText(screen, 0)
	if !strings.HasPrefix(top, "HP ") || !strings.Contains(top, "80/100") || !strings.Contains(top, "LV 1") {
		t.Errorf("vitals line = %q", top)
	}

	bottom := rowText(screen, 23)
	for _, want := range []string{" FIGHT ", "1:05", "K 7", "BLOOD MOON", "1:nova", "2:blink 50%", "♫"} {
		if !strings.Contains(bottom, want) {
			t.Errorf("status line %q missing %q", bottom, want)
		}
	}
}

func TestRenderFrame_PausedAndMuted(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil)
	r.SetPaused(true)
	r.SetMuted(true)
	r.RenderFrame(baseSnapshot())

	bottom := rowText(screen, 23)
	if !strings.HasPrefix(bottom, " PAUSED ") {
		t.Errorf("status line = %q, want pause banner", bottom)
	}
	if strings.Contains(bottom, "♫") {
		t.Errorf("muted status line shows audio glyph: %q", bottom)
	}
}

func TestRenderFrame_Overlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*engine.Snapshot)
		row   int
		want  string
	}{
		{
			name: "legendary options",
			setup: func(s *engine.Snapshot) {
				s.Phase = "legendary"
				s.Options = []string{"Overload", "Phoenix", "Split"}
			},
			row:  12,
			want: "x) Phoenix",
		},
		{
			name: "run ended cause",
			setup: func(s *engine.Snapshot) {
				s.Phase = "ended"
				s.Cause = "circle"
				s.Elapsed = 65 * time.Second
			},
			row:  11,
			want: "Killed by a Circle after 1:05",
		},
		{
			name: "run ended title",
			setup: func(s *engine.Snapshot) {
				s.Phase = "ended"
				s.Cause = "unknown"
			},
			row:  9,
			want: "RUN ENDED",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewTerminalRenderer(screen, nil)
			snap := baseSnapshot()
			tt.setup(snap)
			r.RenderFrame(snap)

			if got := rowText(screen, tt.row); !strings.Contains(got, tt.want) {
				t.Errorf("row %d = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestRenderFrame_NilSnapshot(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil)
	r.RenderFrame(nil)
	testutil.AssertEqual(t, "blank", cellAt(screen, 40, 12), ' ')
}

func TestResizeTracksScreen(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil)
	screen.SetSize(100, 30)
	r.Resize()
	cam := r.Camera()
	testutil.AssertEqual(t, "width", cam.Width, 100)
	testutil.AssertEqual(t, "height", cam.Height, 28)
}

func TestColors(t *testing.T) {
	testutil.AssertEqual(t, "unfilled meter", GetMeterColor(0), tcell.NewRGBColor(0, 0, 0))
	testutil.AssertEqual(t, "meter clamps", GetMeterColor(1.5), GetMeterColor(1))
	testutil.AssertEqual(t, "unknown palette", PaletteColor("nope"), RgbTrailGray)
	testutil.AssertEqual(t, "empty health", GetHealthColor(-1), tcell.NewRGBColor(220, 40, 40))
	testutil.AssertEqual(t, "full health", GetHealthColor(2), tcell.NewRGBColor(40, 200, 40))

	hostile := GetAreaStyle(engine.AreaView{Kind: "damage_zone", Hostile: true})
	friendly := GetAreaStyle(engine.AreaView{Kind: "damage_zone"})
	if hostile == friendly {
		t.Error("hostile and friendly zones share a style")
	}
}

func TestEnemyStyleAttributes(t *testing.T) {
	tests := []struct {
		name string
		view engine.EnemyView
		want tcell.AttrMask
	}{
		{"normal", engine.EnemyView{Tier: "normal"}, tcell.AttrNone},
		{"elite", engine.EnemyView{Tier: "elite"}, tcell.AttrBold},
		{"boss", engine.EnemyView{Tier: "boss"}, tcell.AttrBold | tcell.AttrReverse},
		{"telegraph", engine.EnemyView{Tier: "normal", Telegraph: true}, tcell.AttrBlink},
		{"friendly", engine.EnemyView{Tier: "normal", Friendly: true}, tcell.AttrUnderline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, attrs := GetEnemyStyle(tt.view).Decompose()
			testutil.AssertEqual(t, "attrs", attrs, tt.want)
		})
	}
}
