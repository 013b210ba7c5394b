package app

import (
	"fmt"
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"moaburke/glosor/session"
	"moaburke/glosor/vocab"
)

// Card colors, front and back face.
var (
	colorDarkBlue   = color.NRGBA{R: 0x14, G: 0x26, B: 0x38, A: 0xff}
	colorWhite      = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	colorYellow     = color.NRGBA{R: 0xfe, G: 0xcb, B: 0x00, A: 0xff}
	colorDarkYellow = color.NRGBA{R: 0xe3, G: 0xaa, B: 0x0e, A: 0xff}
)

type uiState struct {
	ctrl  *session.Controller
	store *vocab.Store
	cfg   Config

	w          fyne.Window
	cardBG     *canvas.Rectangle
	title      *canvas.Text
	word       *canvas.Text
	scoreBind  binding.String
	statusBind binding.String

	knownBtn   *widget.Button
	skipBtn    *widget.Button
	restartBtn *widget.Button

	remaining []vocab.Entry
	wordList  *widget.List
	collator  *collate.Collator
}

func buildUI(a fyne.App, ctrl *session.Controller, store *vocab.Store, cfg Config) *uiState {
	u := &uiState{ctrl: ctrl, store: store, cfg: cfg}
	u.w = a.NewWindow("Glosor - Learn Swedish")
	u.collator = collate.New(language.Swedish)

	u.scoreBind = binding.NewString()
	u.statusBind = binding.NewString()

	u.cardBG = canvas.NewRectangle(colorWhite)
	u.cardBG.CornerRadius = 12
	u.cardBG.SetMinSize(fyne.NewSize(520, 320))

	u.title = canvas.NewText("", colorDarkYellow)
	u.title.TextSize = 24
	u.title.Alignment = fyne.TextAlignCenter

	u.word = canvas.NewText("", colorDarkBlue)
	u.word.TextSize = 48
	u.word.TextStyle = fyne.TextStyle{Bold: true}
	u.word.Alignment = fyne.TextAlignCenter

	card := container.NewStack(
		u.cardBG,
		container.NewCenter(container.NewVBox(u.title, u.word)),
	)

	u.skipBtn = widget.NewButtonWithIcon("Still learning", theme.MediaSkipNextIcon(), ctrl.Skip)
	u.knownBtn = widget.NewButtonWithIcon("I knew it", theme.ConfirmIcon(), ctrl.MarkKnown)
	u.restartBtn = widget.NewButtonWithIcon("Restart learning", theme.ViewRefreshIcon(), ctrl.Restart)
	u.restartBtn.Hide()

	score := widget.NewLabelWithData(u.scoreBind)
	score.Alignment = fyne.TextAlignCenter
	status := widget.NewLabelWithData(u.statusBind)
	status.Alignment = fyne.TextAlignCenter

	left := container.NewVBox(
		widget.NewLabelWithStyle("Swedish Words for Everyday Life", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		card,
		score,
		container.NewGridWithColumns(2, u.skipBtn, u.knownBtn),
		u.restartBtn,
		status,
	)

	u.wordList = widget.NewList(
		func() int { return len(u.remaining) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(u.remaining) {
				return
			}
			e := u.remaining[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s - %s", e.Term, e.Translation))
		},
	)
	right := container.NewBorder(
		widget.NewLabelWithStyle("Words left", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		u.wordList,
	)

	split := container.NewHSplit(left, right)
	split.Offset = 0.68
	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(960, 620))
	u.refreshRemaining()
	return u
}

// apply receives controller snapshots; the flip timer delivers them off the
// main thread, so rendering is funneled through fyne.Do.
func (u *uiState) apply(snap session.Snapshot) {
	fyne.Do(func() { u.render(snap) })
}

func (u *uiState) render(snap session.Snapshot) {
	switch snap.State {
	case session.StateFront:
		u.cardBG.FillColor = colorWhite
		u.title.Text = u.cfg.FrontLanguage
		u.title.Color = colorDarkYellow
		u.word.Text = snap.Current.Term
		u.word.Color = colorDarkBlue
		u.restartBtn.Hide()
		u.setActionsEnabled(true)
	case session.StateBack:
		u.cardBG.FillColor = colorDarkBlue
		u.title.Text = u.cfg.BackLanguage
		u.title.Color = colorYellow
		u.word.Text = snap.Current.Translation
		u.word.Color = colorWhite
		u.restartBtn.Hide()
		u.setActionsEnabled(true)
	case session.StateExhausted:
		u.cardBG.FillColor = colorWhite
		u.title.Text = "Congratulations!"
		u.title.Color = colorDarkYellow
		u.word.Text = "You have learned all words."
		u.word.Color = colorDarkBlue
		u.restartBtn.Show()
		u.setActionsEnabled(false)
	}
	u.cardBG.Refresh()
	u.title.Refresh()
	u.word.Refresh()
	_ = u.scoreBind.Set(fmt.Sprintf("%d/%d correct words", snap.Stats.Correct, snap.Stats.Total))
	_ = u.statusBind.Set(snap.Notice)
	u.refreshRemaining()
}

func (u *uiState) setActionsEnabled(enabled bool) {
	if enabled {
		u.skipBtn.Enable()
		u.knownBtn.Enable()
	} else {
		u.skipBtn.Disable()
		u.knownBtn.Disable()
	}
}

func (u *uiState) refreshRemaining() {
	entries := u.store.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return u.collator.CompareString(entries[i].Term, entries[j].Term) < 0
	})
	u.remaining = entries
	u.wordList.Refresh()
}
