package main

import (
	"testing"
	"time"

	"github.com/decker502/stardodge/pkg/assets"
	"github.com/decker502/stardodge/pkg/components"
	"github.com/decker502/stardodge/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

func TestKeyStateHoldWindow(t *testing.T) {
	var k keyState
	start := time.Unix(100, 0)

	k.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), start)
	k.handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), start)

	in := k.snapshot(start.Add(50 * time.Millisecond))
	if !in.MoveRight || !in.MoveUp {
		t.Errorf("keys should be held within the window, got %+v", in)
	}

	in = k.snapshot(start.Add(holdWindow))
	if in.MoveRight || in.MoveUp {
		t.Errorf("keys should be released after the window, got %+v", in)
	}
}

func TestKeyStateCommandsAreOneShot(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want utils.InputSnapshot
	}{
		{"回车确认", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), utils.InputSnapshot{Confirm: true}},
		{"G 确认", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), utils.InputSnapshot{Confirm: true}},
		{"M 返回菜单", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), utils.InputSnapshot{Cancel: true}},
		{"空格暂停", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), utils.InputSnapshot{Pause: true}},
		{"Esc 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), utils.InputSnapshot{Exit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k keyState
			now := time.Unix(100, 0)
			if !k.handle(tt.ev, now) {
				t.Fatal("key should be recognized")
			}
			if got := k.snapshot(now); got != tt.want {
				t.Errorf("snapshot = %+v, want %+v", got, tt.want)
			}
			if got := k.snapshot(now); got.HasCommand() {
				t.Errorf("command should fire once, got %+v", got)
			}
		})
	}
}

func TestKeyStateIgnoresUnknownKeys(t *testing.T) {
	var k keyState
	if k.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), time.Now()) {
		t.Error("'x' should not be recognized")
	}
}

func TestArenaFromCells(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantW      float64
		wantH      float64
		wantOK     bool
	}{
		{"普通终端", 80, 25, 640, 384, true},
		{"只有状态行", 80, 1, 0, 0, false},
		{"零宽", 0, 25, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, ok := arenaFromCells(tt.cols, tt.rows)
			if ok != tt.wantOK || w != tt.wantW || h != tt.wantH {
				t.Errorf("arenaFromCells(%d, %d) = (%v, %v, %v), want (%v, %v, %v)",
					tt.cols, tt.rows, w, h, ok, tt.wantW, tt.wantH, tt.wantOK)
			}
		})
	}
}

func TestToCell(t *testing.T) {
	col, row := toCell(17, 40)
	if col != 2 || row != 3 {
		t.Errorf("toCell(17, 40) = (%d, %d), want (2, 3)", col, row)
	}
}

func TestBuildGlyphs(t *testing.T) {
	res := &assets.ResourceConfig{
		Sprites: []assets.SpriteResource{
			{ID: "SPRITE_PLAYER", Color: "#3c8cff", Glyph: "@"},
			{ID: "SPRITE_HAZARD", Color: "#e0403c"},
			{ID: "SPRITE_PICKUP", Color: "#ffd23c", Glyph: "*"},
		},
	}

	glyphs, err := buildGlyphs(res)
	if err != nil {
		t.Fatalf("buildGlyphs() error: %v", err)
	}
	if glyphs[components.KindPlayer].r != '@' {
		t.Errorf("player glyph = %q, want '@'", glyphs[components.KindPlayer].r)
	}
	if glyphs[components.KindHazard].r != '#' {
		t.Errorf("hazard glyph without config = %q, want '#'", glyphs[components.KindHazard].r)
	}

	res.Sprites = res.Sprites[:2]
	if _, err := buildGlyphs(res); err == nil {
		t.Error("missing pickup sprite should fail")
	}
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	// 缓冲区已满且主循环已退出时，投递协程不能一直阻塞
	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	done := make(chan struct{})
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	}

	finished := make(chan struct{})
	go func() {
		pumpEvents(poll, events, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("pumpEvents should return after done is closed")
	}
}

func TestPumpEventsStopsOnNilEvent(t *testing.T) {
	events := make(chan tcell.Event, 4)
	queue := []tcell.Event{
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone),
	}
	poll := func() tcell.Event {
		if len(queue) == 0 {
			return nil
		}
		ev := queue[0]
		queue = queue[1:]
		return ev
	}

	pumpEvents(poll, events, make(chan struct{}))

	if len(events) != 2 {
		t.Errorf("expected 2 delivered events, got %d", len(events))
	}
}

func TestSoundFlag(t *testing.T) {
	tests := []struct {
		name  string
		sound string
		mute  bool
		want  string
	}{
		{name: "未指定", sound: "", mute: false, want: ""},
		{name: "只用 -sound", sound: "on", mute: false, want: "on"},
		{name: "-mute 覆盖 -sound", sound: "on", mute: true, want: "off"},
		{name: "只用 -mute", sound: "", mute: true, want: "off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := soundFlag(tt.sound, tt.mute); got != tt.want {
				t.Errorf("soundFlag(%q, %v) = %q, want %q", tt.sound, tt.mute, got, tt.want)
			}
		})
	}
}
