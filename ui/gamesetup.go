package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"chromadrop/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()

	player string
	seed   int64
}

// NewGameSetup creates a new game setup form prefilled with player and seed.
func NewGameSetup(player string, seed int64, onStart func(engine.GameConfig), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		player:   player,
		seed:     seed,
	}

	seedText := ""
	if seed != 0 {
		seedText = strconv.FormatInt(seed, 10)
	}

	form := tview.NewForm()

	form.AddInputField("Player", player, 16, func(text string, lastChar rune) bool {
		return len([]rune(text)) <= 16
	}, func(text string) {
		setup.player = text
	})

	form.AddInputField("Seed", seedText, 20, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9'
	}, func(text string) {
		setup.seed, _ = strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Enter: confirm  |  blank seed: random").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the rules for a game with the form's current values.
func (s *GameSetupUI) Config() engine.GameConfig {
	cfg := engine.DefaultConfig()
	if name := strings.TrimSpace(s.player); name != "" {
		cfg.Player = name
	}
	cfg.Seed = s.seed
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
