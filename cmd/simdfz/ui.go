package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/sumika-fz/simdfz/src/migemo"
	"github.com/sumika-fz/simdfz/src/simdscore"
)

// runInteractive drives the tcell UI: a query line at the bottom, a ranked
// candidate list above it, re-ranked on every keystroke. It returns the
// selected candidate, or "" if the user cancelled.
func runInteractive(candidates []string, expander *migemo.Expander, wantTypos bool, batchOpts simdscore.BatchOptions) (string, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return "", err
	}
	if err := screen.Init(); err != nil {
		return "", err
	}
	defer screen.Fini()

	query := []rune{}
	cursor := 0
	ranked := rankCandidates(needlesFor("", expander), candidates, wantTypos, batchOpts)
	gradient := highlightGradient(12)

	for {
		draw(screen, query, ranked, gradient)
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", nil
			case tcell.KeyEnter:
				if cursor < len(ranked) {
					return ranked[cursor].Text, nil
				}
				return "", nil
			case tcell.KeyUp, tcell.KeyCtrlP:
				if cursor > 0 {
					cursor--
				}
			case tcell.KeyDown, tcell.KeyCtrlN:
				if cursor < len(ranked)-1 {
					cursor++
				}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(query) > 0 {
					query = query[:len(query)-1]
					ranked = rankCandidates(needlesFor(string(query), expander), candidates, wantTypos, batchOpts)
					cursor = 0
				}
			case tcell.KeyRune:
				query = append(query, ev.Rune())
				ranked = rankCandidates(needlesFor(string(query), expander), candidates, wantTypos, batchOpts)
				cursor = 0
			}
		}
	}
}

func needlesFor(query string, expander *migemo.Expander) []string {
	if query == "" {
		return []string{""}
	}
	if expander == nil {
		return []string{query}
	}
	return expander.Expand(query)
}

func draw(screen tcell.Screen, query []rune, ranked []Ranked, gradient []tcell.Color) {
	screen.Clear()
	w, h := screen.Size()

	prompt := "> " + string(query)
	emitStr(screen, 0, h-1, tcell.StyleDefault.Bold(true), prompt)

	var maxScore uint16
	for _, r := range ranked {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}

	rows := h - 1
	for i := 0; i < rows && i < len(ranked); i++ {
		r := ranked[i]
		style := tcell.StyleDefault
		if r.Score > 0 {
			style = style.Foreground(gradientForScore(gradient, r.Score, maxScore))
		}
		line := r.Text
		if runewidth.StringWidth(line) > w {
			line = runewidth.Truncate(line, w, "…")
		}
		emitStr(screen, 0, rows-1-i, style, line)
	}
}

func emitStr(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
