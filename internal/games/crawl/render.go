package crawl

import (
	"fmt"

	"github.com/mkraev/tui-crawler/internal/core"
)

const hudHeight = 2

var kindGlyphs = map[Kind]rune{
	KindWalker:  'w',
	KindLurker:  'l',
	KindCreep:   'c',
	KindSpitter: 's',
}

func biomeWallColor(b Biome) core.Color {
	switch b {
	case BiomeCaverns:
		return core.ColorBlue
	case BiomeForge:
		return core.ColorOrange
	default:
		return core.ColorGray
	}
}

// Render draws the world with a camera that follows the hero. Tiles the
// hero has never seen stay blank; loot and enemies only show on revealed
// tiles so the fog hides what is coming.
func (g *Game) Render(s *core.Screen) {
	w := g.world
	if w == nil {
		return
	}

	viewW := s.Width()
	viewH := s.Height() - hudHeight
	if viewW < 20 || viewH < 10 {
		s.DrawTextCentered(s.Height()/2, "Terminal too small")
		return
	}

	// Camera top-left in tile coordinates, clamped to the map.
	camX := int(w.player.Pos.X) - viewW/2
	camY := int(w.player.Pos.Y) - viewH/2
	camX = core.Clamp(camX, 0, core.Max(0, w.dungeon.Width-viewW))
	camY = core.Clamp(camY, 0, core.Max(0, w.dungeon.Height-viewH))

	toScreen := func(pos core.Vec2) (int, int, bool) {
		sx := int(pos.X) - camX
		sy := int(pos.Y) - camY + hudHeight
		visible := sx >= 0 && sx < viewW && sy >= hudHeight && sy < s.Height()
		return sx, sy, visible
	}

	wallColor := biomeWallColor(w.dungeon.Biome)
	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			tx, ty := camX+sx, camY+sy
			if !w.dungeon.Seen(tx, ty) {
				continue
			}
			switch w.dungeon.TileAt(tx, ty) {
			case TileWall:
				s.SetCell(sx, sy+hudHeight, '#', wallColor)
			default:
				s.SetCell(sx, sy+hudHeight, '.', core.ColorDarkGray)
			}
		}
	}
	for _, sc := range w.dungeon.Scenery {
		if !w.dungeon.Seen(sc.TX, sc.TY) {
			continue
		}
		sx, sy := sc.TX-camX, sc.TY-camY+hudHeight
		if sx < 0 || sx >= viewW || sy < hudHeight || sy >= s.Height() {
			continue
		}
		solid := w.dungeon.TileAt(sc.TX, sc.TY) == TileWall
		switch sc.Kind {
		case SceneryPillar:
			// A tunnel carved later may have punched through the feature;
			// only draw solid scenery that is still solid.
			if solid {
				s.SetCell(sx, sy, 'O', wallColor)
			}
		case SceneryCrate:
			if solid {
				s.SetCell(sx, sy, '%', core.ColorYellow)
			}
		case SceneryTorch:
			s.SetCell(sx, sy, '!', core.ColorBrightYellow)
		}
	}
	if w.dungeon.Seen(w.dungeon.StairsTX, w.dungeon.StairsTY) {
		if sx, sy, ok := toScreen(w.dungeon.StairsPos()); ok {
			locked := w.mode == ModeCampaign && w.depth == w.cfg.Boss.Depth && !w.bossDefeated
			c := core.ColorBrightGreen
			if locked {
				c = core.ColorRed
			}
			s.SetCell(sx, sy, '>', c)
		}
	}

	for _, l := range w.loot {
		if !w.dungeon.Seen(int(l.Pos.X), int(l.Pos.Y)) {
			continue
		}
		if sx, sy, ok := toScreen(l.Pos); ok {
			glyph, c := lootGlyph(l)
			s.SetCell(sx, sy, glyph, c)
		}
	}

	for _, e := range w.enemies {
		sx, sy, ok := toScreen(e.Pos)
		if !ok || !w.dungeon.Seen(int(e.Pos.X), int(e.Pos.Y)) {
			continue
		}
		if !e.Alive {
			s.SetCell(sx, sy, 'x', core.ColorDarkGray)
			continue
		}
		switch e.Rank {
		case RankBoss:
			s.SetCell(sx, sy, 'B', core.ColorBrightMagenta)
		case RankElite:
			s.SetCell(sx, sy, 'E', core.ColorBrightRed)
		default:
			c := core.ColorRed
			if e.Buffed() {
				c = core.ColorBrightRed
			}
			s.SetCell(sx, sy, kindGlyphs[e.Kind], c)
		}
	}

	for _, pr := range w.projectiles {
		if sx, sy, ok := toScreen(pr.Pos); ok {
			if pr.Hostile {
				s.SetCell(sx, sy, 'o', core.ColorBrightMagenta)
			} else {
				s.SetCell(sx, sy, '*', core.ColorBrightCyan)
			}
		}
	}
	for _, pt := range w.particles.particles {
		if sx, sy, ok := toScreen(pt.Pos); ok {
			s.SetCell(sx, sy, pt.Glyph, pt.Color)
		}
	}

	if sx, sy, ok := toScreen(w.player.Pos); ok {
		c := core.ColorBrightWhite
		if w.player.IFrames > 0 {
			c = core.ColorBrightCyan
		}
		s.SetCell(sx, sy, '@', c)
	}

	g.renderHUD(s)

	if g.paused {
		s.DrawTextCentered(s.Height()/2, "== PAUSED ==")
	}
	if w.gameOver {
		mid := s.Height() / 2
		s.DrawTextCentered(mid-1, "YOU DIED")
		s.DrawTextCentered(mid, fmt.Sprintf("%s - depth %d, wave %d, %d kills", w.deathCause, w.depth, w.wave, w.kills))
		s.DrawTextCentered(mid+1, "[R] restart  [Q] quit")
	}
}

func lootGlyph(l *Loot) (rune, core.Color) {
	switch {
	case l.Weapon != nil:
		return '/', core.ColorBrightCyan
	case l.PotionHP:
		return '+', core.ColorBrightRed
	case l.PotionMana:
		return '+', core.ColorBrightBlue
	case l.DamageBoost:
		return '^', core.ColorBrightYellow
	case l.ShieldBoost:
		return '0', core.ColorBrightGreen
	default:
		return '$', core.ColorYellow
	}
}

func (g *Game) renderHUD(s *core.Screen) {
	w := g.world
	p := w.player

	line1 := fmt.Sprintf("HP %d/%d  MP %d/%d", p.HP, p.MaxHP, p.Mana, p.MaxMana)
	if p.Shield > 0 {
		line1 += fmt.Sprintf("  SH %d", p.Shield)
	}
	line1 += fmt.Sprintf("  Lv%d  XP %d/%d  $%d", p.Level, p.XP, p.XPToNext, p.Gold)
	s.DrawTextColor(0, 0, line1, core.ColorBrightWhite)

	line2 := fmt.Sprintf("%s depth %d  wave %d  kills %d  [%d!hp %d!mp]",
		w.dungeon.Biome, w.depth, w.wave, w.kills, p.PotionsHP, p.PotionsMana)
	if p.DamageMult > 1.0 {
		line2 += fmt.Sprintf("  DMG x%.1f", p.DamageMult)
	}
	s.DrawTextColor(0, 1, line2, core.ColorGray)
}
