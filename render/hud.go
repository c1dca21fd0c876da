package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/survivor/game"
	"github.com/lixenwraith/survivor/progression"
)

// Overlay returns the modal panel for snap; game over beats level-up beats pause
func Overlay(snap game.Snapshot) (lines []string, accent RGB, ok bool) {
	switch {
	case snap.GameOver:
		return []string{
			"GAME OVER",
			"",
			fmt.Sprintf("kills %d  level %d  time %s", snap.Kills, snap.Level, formatElapsed(snap.Elapsed)),
			"",
			"r restart  q quit",
		}, RgbGameOver, true
	case len(snap.Choices) > 0:
		lines = []string{fmt.Sprintf("LEVEL UP  (%d pending)", snap.UpgradePending), ""}
		for i, kind := range snap.Choices {
			lines = append(lines, fmt.Sprintf("%d) %s", i+1, snap.ChoiceLabel(kind)))
		}
		lines = append(lines, "", fmt.Sprintf("press 1-%d", len(snap.Choices)))
		return lines, RgbLevelUp, true
	case snap.Paused:
		return []string{"PAUSED", "", "p to resume"}, RgbOverlayBorder, true
	}
	return nil, RGB{}, false
}

// ShieldLabel describes the invincibility ability; highlight marks ready or active
func ShieldLabel(snap game.Snapshot) (label string, highlight bool) {
	switch {
	case !snap.InvincibleUnlocked:
		return "SHIELD locked", false
	case snap.Invincible:
		return fmt.Sprintf("SHIELD active %.1fs", snap.InvincibleRemaining.Seconds()), true
	case snap.InvincibleCooldown > 0:
		return fmt.Sprintf("SHIELD cooling %.1fs", snap.InvincibleCooldown.Seconds()), false
	default:
		return "SHIELD ready", true
	}
}

// AmmoLabel describes the magazine or reload state
func AmmoLabel(snap game.Snapshot) string {
	switch {
	case snap.InfiniteAmmo:
		return "AMMO ∞"
	case snap.Reloading:
		return fmt.Sprintf("RELOAD %3d%%", int(snap.ReloadProgress*100))
	default:
		return fmt.Sprintf("AMMO %d/%d", snap.Ammo, snap.AmmoCapacity)
	}
}

// TierLabel lists the displayed upgrade tiers
func TierLabel(snap game.Snapshot) string {
	return fmt.Sprintf("DMG %d  CNT %d  HP %d  AMMO %d  SPD %d",
		snap.Tier(progression.UpgradeBulletDamage), snap.Tier(progression.UpgradeBulletCount),
		snap.Tier(progression.UpgradeMaxHealth), snap.Tier(progression.UpgradeAmmoCapacity),
		snap.Tier(progression.UpgradeMoveSpeed))
}

// StatusLines is the plain-text HUD for frontends without a cell grid
func StatusLines(snap game.Snapshot) []string {
	shield, _ := ShieldLabel(snap)
	return []string{
		fmt.Sprintf("HP %d/%d  %s  LV %d  XP %d/%d  KILLS %d  %s  %s",
			snap.Health, snap.MaxHealth, AmmoLabel(snap), snap.Level, snap.XP, snap.XPToNext,
			snap.Kills, formatElapsed(snap.Elapsed), snap.FireMode),
		fmt.Sprintf("%s  %s  MONSTERS %d", TierLabel(snap), shield, snap.Monsters),
	}
}

func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
