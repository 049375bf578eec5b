package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const fullVolume = 65536

type styles struct {
	Logo    lipgloss.Style
	Header  lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Logo:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Header:  lipgloss.NewStyle().Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTrack())
	b.WriteString("\n")
	b.WriteString(m.renderVolume())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	parts := []string{m.styles.Logo.Render("golibrespot")}

	if m.snapshot.Connected {
		parts = append(parts, m.styles.Success.Render("● connected"))
	} else {
		parts = append(parts, m.styles.Muted.Render("○ disconnected"))
	}

	switch m.snapshot.PlayerStatus {
	case "playing":
		parts = append(parts, m.styles.Success.Render("▶ playing"))
	case "paused":
		parts = append(parts, m.styles.Warning.Render("⏸ paused"))
	case "stopped":
		parts = append(parts, m.styles.Muted.Render("■ stopped"))
	case "inactive":
		parts = append(parts, m.styles.Muted.Render("session inactive"))
	default:
		parts = append(parts, m.spin.View()+m.styles.Muted.Render("waiting for player"))
	}

	if m.snapshot.LastError != nil {
		parts = append(parts, m.styles.Danger.Render("listener stopped"))
	} else if m.snapshot.LastEvent != "" {
		parts = append(parts, m.styles.Muted.Render(
			fmt.Sprintf("last event %s at %s",
				m.snapshot.LastEvent, m.snapshot.LastUpdated.Format("15:04:05"))))
	}

	return strings.Join(parts, m.styles.Muted.Render("  ·  "))
}

func (m Model) renderTrack() string {
	if !m.snapshot.HasTrack {
		return m.styles.Muted.Render("Nothing loaded")
	}

	track := m.snapshot.Track
	name := track.Name
	if name == "" {
		name = track.URI
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(name))
	if track.Artist != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Text.Render(track.Artist))
		if track.Album != "" {
			b.WriteString(m.styles.Muted.Render(" — " + track.Album))
		}
	}
	if track.URI != "" && track.Name != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(track.URI))
	}
	return b.String()
}

func (m Model) renderVolume() string {
	if !m.snapshot.HasVolume {
		return m.styles.Muted.Render("volume unknown")
	}
	gauge := renderVolumeGauge(m.snapshot.Volume, 20)
	percent := m.snapshot.Volume * 100 / fullVolume
	return m.styles.Accent.Render(gauge) + m.styles.Muted.Render(fmt.Sprintf(" %d%%", percent))
}

func (m Model) renderStatusLine() string {
	if m.prompt != promptNone {
		label := "search"
		if m.prompt == promptLoad {
			label = "load"
		}
		return m.styles.Accent.Render(label+": ") + m.input.View()
	}
	if m.snapshot.LastError != nil {
		return m.styles.Danger.Render(m.snapshot.LastError.Error())
	}
	if m.lastAction != "" {
		return m.styles.Text.Render(m.lastAction)
	}
	return ""
}

func (m Model) renderFooter() string {
	return m.styles.Muted.Render(
		"space play/pause · n next · p prev · +/- volume · m mute · / search · o load · r refresh · q quit")
}

// renderVolumeGauge draws a fixed-width bar for a 0-65536 volume. Values
// outside the range clamp for display only.
func renderVolumeGauge(volume, width int) string {
	if width <= 0 {
		return ""
	}
	filled := volume * width / fullVolume
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
